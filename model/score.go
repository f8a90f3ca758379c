package model

import "time"

// HitStatistics holds the legacy judgement counters every server returns.
// Their meaning depends on the ruleset, see TotalHits and Accuracy.
type HitStatistics struct {
	CountGeki int
	CountKatu int
	Count300  int
	Count100  int
	Count50   int
	CountMiss int
}

func (s HitStatistics) TotalHits(mode GameMode) int {
	switch mode {
	case GameModeTaiko:
		return s.Count300 + s.Count100 + s.CountMiss
	case GameModeCtb:
		return s.Count300 + s.Count100 + s.Count50 + s.CountKatu + s.CountMiss
	case GameModeMania:
		return s.CountGeki + s.Count300 + s.CountKatu + s.Count100 + s.Count50 + s.CountMiss
	}
	return s.Count300 + s.Count100 + s.Count50 + s.CountMiss
}

// Accuracy computes the 0-1 accuracy from judgements.
func (s HitStatistics) Accuracy(mode GameMode) float64 {
	total := s.TotalHits(mode)
	if total == 0 {
		return 1
	}
	switch mode {
	case GameModeTaiko:
		return (float64(s.Count300) + float64(s.Count100)*0.5) / float64(total)
	case GameModeCtb:
		return float64(s.Count300+s.Count100+s.Count50) / float64(total)
	case GameModeMania:
		weighted := 300*(s.CountGeki+s.Count300) + 200*s.CountKatu + 100*s.Count100 + 50*s.Count50
		return float64(weighted) / float64(300*total)
	}
	weighted := 300*s.Count300 + 100*s.Count100 + 50*s.Count50
	return float64(weighted) / float64(300*total)
}

type ScoreInfo struct {
	Id         int64
	TotalScore int64
	PP         float64
	// Accuracy is always a 0-1 fraction.
	Accuracy float64
	Rank     ScoreRank
	MaxCombo int
	Passed   bool
	Perfect  bool

	UserId    int
	Username  string
	RulesetId GameMode
	Mods      ModCombination

	Beatmap        *BeatmapInfo
	BeatmapId      int
	BeatmapHashMD5 string

	Date       time.Time
	Statistics HitStatistics
}

func NewScoreInfo() *ScoreInfo {
	return &ScoreInfo{Rank: RankF}
}
