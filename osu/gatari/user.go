package gatari

import (
	"time"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

// inactiveAfter is roughly three months.
const inactiveAfter = 8035200 * time.Second

var timeNow = time.Now

func NewUserInfo(info *UserInfo, stats *UserStats) *model.UserInfo {
	u := model.NewUserInfo()
	u.Id = info.Id.Int()
	u.Username = displayName(info)
	if info.Country != "" {
		u.CountryCode = info.Country
	}
	if info.UsernameAka != "" {
		u.PreviousUsernames = []string{info.UsernameAka}
	}

	lastVisit := utils.UnixTime(info.LatestActivity)
	u.LastVisitAt = &lastVisit
	u.IsActive = timeNow().Sub(lastVisit) < inactiveAfter
	u.IsOnline = bool(info.IsOnline)
	u.Playmode = model.GameMode(info.FavouriteMode)
	u.FollowersCount = info.FollowersCount
	u.JoinedAt = utils.UnixTime(info.RegisteredOn)

	u.Grades = model.Grades{
		model.RankA:  stats.ACount,
		model.RankS:  stats.SCount,
		model.RankSH: stats.SHCount,
		model.RankX:  stats.XCount,
		model.RankXH: stats.XHCount,
	}
	u.GlobalRank = stats.Rank
	u.CountryRank = stats.CountryRank
	u.Level = model.LevelInfo{Current: stats.Level, Progress: stats.LevelProgress}
	u.Accuracy = utils.NormalizeAccuracy(float64(stats.AvgAccuracy))
	u.MaxCombo = stats.MaxCombo
	u.Playcount = stats.Playcount
	u.Playtime = stats.Playtime
	u.TotalPerformance = float64(stats.PP)
	u.RankedScore = stats.RankedScore
	u.ReplaysWatched = stats.ReplaysWatched
	u.TotalHits = stats.TotalHits
	u.TotalScore = stats.TotalScore
	return u
}

// displayName prefixes the clan tag, e.g. "[TAG] name".
func displayName(info *UserInfo) string {
	if info.Abbr != nil && *info.Abbr != "" {
		return "[" + *info.Abbr + "] " + info.Username
	}
	return info.Username
}
