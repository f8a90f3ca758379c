package bancho

import (
	"bytes"
	"encoding/json"

	"github.com/kionell/osu-api/utils"
)

// Raw osu! API v2 payloads. Fields the canonical model defaults to
// non-zero values are pointers so that absence can be told apart.

type Beatmapset struct {
	Id             utils.FlexInt `json:"id"`
	Artist         string        `json:"artist"`
	Title          string        `json:"title"`
	Creator        string        `json:"creator"`
	Tags           string        `json:"tags"`
	UserId         utils.FlexInt `json:"user_id"`
	FavouriteCount int           `json:"favourite_count"`
	Beatmaps       []Beatmap     `json:"beatmaps"`
}

type Beatmap struct {
	Id           utils.FlexInt `json:"id"`
	BeatmapsetId utils.FlexInt `json:"beatmapset_id"`
	Checksum     string        `json:"checksum"`
	UserId       utils.FlexInt `json:"user_id"`
	Version      string        `json:"version"`
	Mode         string        `json:"mode"`
	ModeInt      *int          `json:"mode_int"`
	Ranked       *int          `json:"ranked"`
	Convert      bool          `json:"convert"`

	Passcount     int `json:"passcount"`
	Playcount     int `json:"playcount"`
	CountCircles  int `json:"count_circles"`
	CountSliders  int `json:"count_sliders"`
	CountSpinners int `json:"count_spinners"`
	MaxCombo      int `json:"max_combo"`

	TotalLength      float64  `json:"total_length"`
	BPM              *float64 `json:"bpm"`
	CS               *float64 `json:"cs"`
	AR               *float64 `json:"ar"`
	Accuracy         *float64 `json:"accuracy"`
	Drain            *float64 `json:"drain"`
	DifficultyRating float64  `json:"difficulty_rating"`

	DeletedAt   *string `json:"deleted_at"`
	LastUpdated *string `json:"last_updated"`

	Beatmapset *Beatmapset `json:"beatmapset"`
}

type UserCompact struct {
	Id       utils.FlexInt `json:"id"`
	Username string        `json:"username"`
}

type ScoreStatistics struct {
	CountGeki int `json:"count_geki"`
	CountKatu int `json:"count_katu"`
	Count300  int `json:"count_300"`
	Count100  int `json:"count_100"`
	Count50   int `json:"count_50"`
	CountMiss int `json:"count_miss"`
}

type Score struct {
	Id         utils.FlexInt `json:"id"`
	Score      *int64        `json:"score"`
	TotalScore *int64        `json:"total_score"`
	PP         float64       `json:"pp"`
	Accuracy   float64       `json:"accuracy"`
	Rank       string        `json:"rank"`
	MaxCombo   int           `json:"max_combo"`
	Passed     *bool         `json:"passed"`
	Perfect    bool          `json:"perfect"`
	Mods       Mods          `json:"mods"`

	UserId    utils.FlexInt `json:"user_id"`
	User      *UserCompact  `json:"user"`
	Mode      string        `json:"mode"`
	ModeInt   *int          `json:"mode_int"`
	RulesetId *int          `json:"ruleset_id"`

	CreatedAt *string `json:"created_at"`
	EndedAt   *string `json:"ended_at"`

	Statistics ScoreStatistics `json:"statistics"`
	Beatmap    *Beatmap        `json:"beatmap"`
	Beatmapset *Beatmapset     `json:"beatmapset"`
}

// Mods accepts both ["HD","DT"] and [{"acronym":"HD"}] shapes.
type Mods []string

func (m *Mods) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = nil
		return nil
	}
	var acronyms []string
	if err := json.Unmarshal(data, &acronyms); err == nil {
		*m = acronyms
		return nil
	}
	var objects []struct {
		Acronym string `json:"acronym"`
	}
	if err := json.Unmarshal(data, &objects); err != nil {
		return err
	}
	result := make([]string, 0, len(objects))
	for _, o := range objects {
		result = append(result, o.Acronym)
	}
	*m = result
	return nil
}

type GradeCounts struct {
	A   int `json:"a"`
	S   int `json:"s"`
	SH  int `json:"sh"`
	SS  int `json:"ss"`
	SSH int `json:"ssh"`
}

type UserStatistics struct {
	GradeCounts GradeCounts `json:"grade_counts"`
	HitAccuracy float64     `json:"hit_accuracy"`
	Level       struct {
		Current  int `json:"current"`
		Progress int `json:"progress"`
	} `json:"level"`
	MaximumCombo           int     `json:"maximum_combo"`
	PlayCount              int     `json:"play_count"`
	PlayTime               int     `json:"play_time"`
	PP                     float64 `json:"pp"`
	GlobalRank             *int    `json:"global_rank"`
	CountryRank            *int    `json:"country_rank"`
	RankedScore            int64   `json:"ranked_score"`
	ReplaysWatchedByOthers int     `json:"replays_watched_by_others"`
	TotalHits              int64   `json:"total_hits"`
	TotalScore             int64   `json:"total_score"`
}

type User struct {
	Id                utils.FlexInt `json:"id"`
	Username          string        `json:"username"`
	CountryCode       string        `json:"country_code"`
	IsActive          bool          `json:"is_active"`
	IsBot             bool          `json:"is_bot"`
	IsDeleted         bool          `json:"is_deleted"`
	IsOnline          bool          `json:"is_online"`
	IsSupporter       bool          `json:"is_supporter"`
	Playmode          string        `json:"playmode"`
	FollowerCount     int           `json:"follower_count"`
	JoinDate          *string       `json:"join_date"`
	LastVisit         *string       `json:"last_visit"`
	PreviousUsernames []string      `json:"previous_usernames"`

	RankHighest *struct {
		Rank      int    `json:"rank"`
		UpdatedAt string `json:"updated_at"`
	} `json:"rank_highest"`
	RankHistory *struct {
		Mode string `json:"mode"`
		Data []int  `json:"data"`
	} `json:"rank_history"`

	Statistics *UserStatistics `json:"statistics"`
}

// DifficultyAttributes carries the keys of every ruleset.
// Each ruleset mapper reads only its own.
type DifficultyAttributes struct {
	StarRating float64 `json:"star_rating"`
	MaxCombo   int     `json:"max_combo"`

	AimDifficulty        float64 `json:"aim_difficulty"`
	SpeedDifficulty      float64 `json:"speed_difficulty"`
	SpeedNoteCount       float64 `json:"speed_note_count"`
	FlashlightDifficulty float64 `json:"flashlight_difficulty"`
	SliderFactor         float64 `json:"slider_factor"`

	StaminaDifficulty float64 `json:"stamina_difficulty"`
	RhythmDifficulty  float64 `json:"rhythm_difficulty"`
	ColourDifficulty  float64 `json:"colour_difficulty"`
	PeakDifficulty    float64 `json:"peak_difficulty"`

	ApproachRate      float64 `json:"approach_rate"`
	OverallDifficulty float64 `json:"overall_difficulty"`
	GreatHitWindow    float64 `json:"great_hit_window"`
	ScoreMultiplier   float64 `json:"score_multiplier"`
}
