package bancho

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

func NewScoreInfo(raw *Score) *model.ScoreInfo {
	s := model.NewScoreInfo()
	s.Id = int64(raw.Id)
	switch {
	case raw.Score != nil:
		s.TotalScore = *raw.Score
	case raw.TotalScore != nil:
		s.TotalScore = *raw.TotalScore
	}
	s.PP = raw.PP
	s.Accuracy = utils.NormalizeAccuracy(raw.Accuracy)
	if raw.Rank != "" {
		s.Rank = model.ScoreRank(raw.Rank)
	}
	s.MaxCombo = raw.MaxCombo
	if raw.Passed != nil {
		s.Passed = *raw.Passed
	} else {
		s.Passed = s.Rank != model.RankF
	}
	s.Perfect = raw.Perfect

	s.UserId = raw.UserId.Int()
	if raw.User != nil {
		s.Username = raw.User.Username
		if s.UserId == 0 {
			s.UserId = raw.User.Id.Int()
		}
	}

	modeInt := raw.ModeInt
	if modeInt == nil {
		modeInt = raw.RulesetId
	}
	s.RulesetId = rulesetOf(modeInt, raw.Mode)
	s.Mods = model.ModsFromAcronyms(raw.Mods)

	if raw.Beatmap != nil {
		beatmap := *raw.Beatmap
		if beatmap.Beatmapset == nil {
			beatmap.Beatmapset = raw.Beatmapset
		}
		s.Beatmap = NewBeatmapInfo(&beatmap)
		s.BeatmapId = s.Beatmap.Id
		s.BeatmapHashMD5 = s.Beatmap.HashMD5
	}

	date := raw.CreatedAt
	if date == nil {
		date = raw.EndedAt
	}
	if t := utils.ParseTimePtr(date); t != nil {
		s.Date = *t
	}

	s.Statistics = model.HitStatistics{
		CountGeki: raw.Statistics.CountGeki,
		CountKatu: raw.Statistics.CountKatu,
		Count300:  raw.Statistics.Count300,
		Count100:  raw.Statistics.Count100,
		Count50:   raw.Statistics.Count50,
		CountMiss: raw.Statistics.CountMiss,
	}
	return s
}
