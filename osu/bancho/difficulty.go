package bancho

import "github.com/kionell/osu-api/model"

// NewDifficultyAttributes maps raw attributes into the shape of mode.
func NewDifficultyAttributes(mode model.GameMode, raw *DifficultyAttributes, mods model.ModCombination) model.DifficultyAttributes {
	base := model.BaseDifficultyAttributes{
		StarRating: raw.StarRating,
		MaxCombo:   raw.MaxCombo,
		Mods:       mods,
	}
	switch mode {
	case model.GameModeTaiko:
		return &model.TaikoDifficultyAttributes{
			BaseDifficultyAttributes: base,
			StaminaDifficulty:        raw.StaminaDifficulty,
			RhythmDifficulty:         raw.RhythmDifficulty,
			ColourDifficulty:         raw.ColourDifficulty,
			PeakDifficulty:           raw.PeakDifficulty,
			GreatHitWindow:           raw.GreatHitWindow,
		}
	case model.GameModeCtb:
		return &model.CatchDifficultyAttributes{
			BaseDifficultyAttributes: base,
			ApproachRate:             raw.ApproachRate,
		}
	case model.GameModeMania:
		return &model.ManiaDifficultyAttributes{
			BaseDifficultyAttributes: base,
			GreatHitWindow:           raw.GreatHitWindow,
			ScoreMultiplier:          raw.ScoreMultiplier,
		}
	}
	return &model.StandardDifficultyAttributes{
		BaseDifficultyAttributes: base,
		AimDifficulty:            raw.AimDifficulty,
		SpeedDifficulty:          raw.SpeedDifficulty,
		SpeedNoteCount:           raw.SpeedNoteCount,
		FlashlightDifficulty:     raw.FlashlightDifficulty,
		SliderFactor:             raw.SliderFactor,
		ApproachRate:             raw.ApproachRate,
		OverallDifficulty:        raw.OverallDifficulty,
	}
}
