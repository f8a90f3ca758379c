package gatari

import "github.com/kionell/osu-api/utils"

// Raw Gatari payloads. Beatmap covers both the full and the compact shape,
// Score covers user, leaderboard and user-on-beatmap scores.

type Beatmap struct {
	BeatmapId    utils.FlexInt `json:"beatmap_id"`
	BeatmapsetId utils.FlexInt `json:"beatmapset_id"`
	BeatmapMD5   string        `json:"beatmap_md5"`
	Artist       string        `json:"artist"`
	Title        string        `json:"title"`
	Version      string        `json:"version"`
	Creator      string        `json:"creator"`
	Mode         *int          `json:"mode"`
	Ranked       *int          `json:"ranked"`

	Passcount  *int     `json:"passcount"`
	Playcount  *int     `json:"playcount"`
	HitLength  float64  `json:"hit_length"`
	BPM        *float64 `json:"bpm"`
	AR         *float64 `json:"ar"`
	OD         *float64 `json:"od"`
	CS         *float64 `json:"cs"`
	HP         *float64 `json:"hp"`
	MaxCombo   *int     `json:"max_combo"`
	FullCombo  *int     `json:"fc"`
	Difficulty *float64 `json:"difficulty"`

	DifficultyStd   float64 `json:"difficulty_std"`
	DifficultyTaiko float64 `json:"difficulty_taiko"`
	DifficultyCtb   float64 `json:"difficulty_ctb"`
	DifficultyMania float64 `json:"difficulty_mania"`
}

type Score struct {
	Id        utils.FlexInt   `json:"id"`
	Score     int64           `json:"score"`
	PP        utils.FlexFloat `json:"pp"`
	Accuracy  utils.FlexFloat `json:"accuracy"`
	Rank      string          `json:"rank"`
	Ranking   string          `json:"ranking"`
	MaxCombo  int             `json:"max_combo"`
	FullCombo *bool           `json:"full_combo"`
	FC        *int            `json:"fc"`
	Mods      int             `json:"mods"`
	PlayMode  int             `json:"play_mode"`
	Time      int64           `json:"time"`

	UserId   utils.FlexInt `json:"userid"`
	Username string        `json:"username"`

	Count300   int  `json:"count_300"`
	Count100   int  `json:"count_100"`
	Count50    int  `json:"count_50"`
	CountMiss  int  `json:"count_miss"`
	CountGekis *int `json:"count_gekis"`
	GekisCount *int `json:"gekis_count"`
	CountKatu  *int `json:"count_katu"`
	KatusCount *int `json:"katus_count"`

	Beatmap *Beatmap `json:"beatmap"`
}

type UserInfo struct {
	Id             utils.FlexInt  `json:"id"`
	Username       string         `json:"username"`
	UsernameAka    string         `json:"username_aka"`
	Abbr           *string        `json:"abbr"`
	Country        string         `json:"country"`
	FavouriteMode  int            `json:"favourite_mode"`
	FollowersCount int            `json:"followers_count"`
	IsOnline       utils.FlexBool `json:"is_online"`
	LatestActivity int64          `json:"latest_activity"`
	RegisteredOn   int64          `json:"registered_on"`
}

type UserStats struct {
	ACount  int `json:"a_count"`
	SCount  int `json:"s_count"`
	SHCount int `json:"sh_count"`
	XCount  int `json:"x_count"`
	XHCount int `json:"xh_count"`

	Rank           int             `json:"rank"`
	CountryRank    int             `json:"country_rank"`
	Level          int             `json:"level"`
	LevelProgress  int             `json:"level_progress"`
	AvgAccuracy    utils.FlexFloat `json:"avg_accuracy"`
	MaxCombo       int             `json:"max_combo"`
	Playcount      int             `json:"playcount"`
	Playtime       int             `json:"playtime"`
	PP             utils.FlexFloat `json:"pp"`
	RankedScore    int64           `json:"ranked_score"`
	ReplaysWatched int             `json:"replays_watched"`
	TotalHits      int64           `json:"total_hits"`
	TotalScore     int64           `json:"total_score"`
}
