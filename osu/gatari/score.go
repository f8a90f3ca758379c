package gatari

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

func NewScoreInfo(raw *Score) *model.ScoreInfo {
	s := model.NewScoreInfo()
	s.Id = int64(raw.Id)
	s.TotalScore = raw.Score
	s.PP = float64(raw.PP)
	s.Accuracy = utils.NormalizeAccuracy(float64(raw.Accuracy))
	if rank := utils.FirstNonEmpty(raw.Rank, raw.Ranking); rank != "" {
		s.Rank = model.ScoreRank(rank)
	}
	s.MaxCombo = raw.MaxCombo
	s.Passed = s.Rank != model.RankF
	switch {
	case raw.FullCombo != nil:
		s.Perfect = *raw.FullCombo
	case raw.FC != nil:
		s.Perfect = raw.MaxCombo >= *raw.FC
	}

	s.UserId = raw.UserId.Int()
	s.Username = raw.Username
	s.RulesetId = model.GameMode(raw.PlayMode)
	s.Mods = model.ModCombination{Bitwise: model.Mod(raw.Mods)}

	if raw.Beatmap != nil {
		s.Beatmap = NewBeatmapInfo(raw.Beatmap)
		s.BeatmapId = s.Beatmap.Id
		s.BeatmapHashMD5 = s.Beatmap.HashMD5
	}
	if raw.Time != 0 {
		s.Date = utils.UnixTime(raw.Time)
	}

	s.Statistics = model.HitStatistics{
		CountGeki: firstCount(raw.CountGekis, raw.GekisCount),
		CountKatu: firstCount(raw.CountKatu, raw.KatusCount),
		Count300:  raw.Count300,
		Count100:  raw.Count100,
		Count50:   raw.Count50,
		CountMiss: raw.CountMiss,
	}
	return s
}

// firstCount picks whichever spelling of a counter the endpoint used.
func firstCount(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
