package bancho

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

func NewUserInfo(raw *User) *model.UserInfo {
	u := model.NewUserInfo()
	u.Id = raw.Id.Int()
	u.Username = raw.Username
	if raw.CountryCode != "" {
		u.CountryCode = raw.CountryCode
	}
	u.IsActive = raw.IsActive
	u.IsBot = raw.IsBot
	u.IsDeleted = raw.IsDeleted
	u.IsOnline = raw.IsOnline
	u.IsSupporter = raw.IsSupporter
	u.Playmode = rulesetOf(nil, raw.Playmode)
	u.FollowersCount = raw.FollowerCount
	if joined := utils.ParseTimePtr(raw.JoinDate); joined != nil {
		u.JoinedAt = *joined
	}
	u.LastVisitAt = utils.ParseTimePtr(raw.LastVisit)
	u.PreviousUsernames = raw.PreviousUsernames

	if raw.RankHighest != nil {
		highest := &model.HighestRank{Rank: raw.RankHighest.Rank}
		highest.UpdatedAt, _ = utils.ParseTime(raw.RankHighest.UpdatedAt)
		u.HighestRank = highest
	}
	if raw.RankHistory != nil {
		u.RankHistory = &model.RankHistory{
			Mode: rulesetOf(nil, raw.RankHistory.Mode),
			Data: raw.RankHistory.Data,
		}
	}

	stats := raw.Statistics
	if stats == nil {
		return u
	}
	u.Grades = model.Grades{
		model.RankA:  stats.GradeCounts.A,
		model.RankS:  stats.GradeCounts.S,
		model.RankSH: stats.GradeCounts.SH,
		model.RankX:  stats.GradeCounts.SS,
		model.RankXH: stats.GradeCounts.SSH,
	}
	u.Accuracy = utils.NormalizeAccuracy(stats.HitAccuracy)
	u.Level = model.LevelInfo{Current: stats.Level.Current, Progress: stats.Level.Progress}
	u.MaxCombo = stats.MaximumCombo
	u.Playcount = stats.PlayCount
	u.Playtime = stats.PlayTime
	u.TotalPerformance = stats.PP
	u.GlobalRank = utils.Or(stats.GlobalRank, 0)
	u.CountryRank = utils.Or(stats.CountryRank, 0)
	u.RankedScore = stats.RankedScore
	u.ReplaysWatched = stats.ReplaysWatchedByOthers
	u.TotalHits = stats.TotalHits
	u.TotalScore = stats.TotalScore
	return u
}
