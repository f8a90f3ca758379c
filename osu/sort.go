package osu

import (
	"cmp"
	"slices"

	"github.com/kionell/osu-api/model"
)

// SortUserBest sorts scores in place by order and returns them.
// Scores without a beatmap sort as if its value were 0.
func SortUserBest(scores []*model.ScoreInfo, order model.SortingType) []*model.ScoreInfo {
	var key func(s *model.ScoreInfo) float64
	switch order {
	case model.SortDifficulty, model.SortDifficultyReverse:
		key = func(s *model.ScoreInfo) float64 {
			if s.Beatmap == nil {
				return 0
			}
			return s.Beatmap.StarRating
		}
	case model.SortDate, model.SortDateReverse:
		key = func(s *model.ScoreInfo) float64 { return float64(s.Date.Unix()) }
	case model.SortAccuracy, model.SortAccuracyReverse:
		key = func(s *model.ScoreInfo) float64 { return s.Accuracy }
	case model.SortBPM, model.SortBPMReverse:
		key = func(s *model.ScoreInfo) float64 {
			if s.Beatmap == nil {
				return 0
			}
			return s.Beatmap.BPMMode
		}
	case model.SortScore, model.SortScoreReverse:
		key = func(s *model.ScoreInfo) float64 { return float64(s.TotalScore) }
	default:
		key = func(s *model.ScoreInfo) float64 { return s.PP }
	}

	reverse := isReverse(order)
	slices.SortStableFunc(scores, func(a, b *model.ScoreInfo) int {
		if reverse {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return scores
}

func isReverse(order model.SortingType) bool {
	switch order {
	case model.SortPerformanceReverse, model.SortDifficultyReverse, model.SortDateReverse,
		model.SortAccuracyReverse, model.SortBPMReverse, model.SortScoreReverse:
		return true
	}
	return false
}
