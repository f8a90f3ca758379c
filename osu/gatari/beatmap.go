package gatari

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

// NewBeatmapStatus translates Gatari's ranked column.
func NewBeatmapStatus(ranked int) model.BeatmapStatus {
	switch {
	case ranked < 0:
		return model.StatusGraveyard
	case ranked == 2:
		return model.StatusRanked
	case ranked == 3:
		return model.StatusApproved
	case ranked == 4:
		return model.StatusQualified
	case ranked == 5:
		return model.StatusLoved
	}
	return model.StatusPending
}

func NewBeatmapInfo(raw *Beatmap) *model.BeatmapInfo {
	b := model.NewBeatmapInfo()
	b.Id = raw.BeatmapId.Int()
	b.BeatmapsetId = raw.BeatmapsetId.Int()
	b.HashMD5 = raw.BeatmapMD5
	b.Creator = raw.Creator
	b.Title = raw.Title
	b.Artist = raw.Artist
	b.Version = raw.Version
	b.Passcount = utils.Or(raw.Passcount, b.Passcount)
	b.Playcount = utils.Or(raw.Playcount, b.Playcount)
	if raw.Ranked != nil {
		b.Status = NewBeatmapStatus(*raw.Ranked)
	}

	b.Length = raw.HitLength
	if raw.BPM != nil {
		b.BPMMin, b.BPMMax, b.BPMMode = *raw.BPM, *raw.BPM, *raw.BPM
	}
	b.CircleSize = utils.Or(raw.CS, b.CircleSize)
	b.ApproachRate = utils.Or(raw.AR, b.ApproachRate)
	b.OverallDifficulty = utils.Or(raw.OD, b.OverallDifficulty)
	b.DrainRate = utils.Or(raw.HP, b.DrainRate)

	if raw.Mode != nil {
		b.RulesetId = model.GameMode(*raw.Mode)
	}
	b.StarRating = starRating(raw, b.RulesetId)
	switch {
	case raw.FullCombo != nil:
		b.MaxCombo = *raw.FullCombo
	case raw.MaxCombo != nil:
		b.MaxCombo = *raw.MaxCombo
	}
	return b
}

// starRating prefers the compact shape's single value over the per-ruleset columns.
func starRating(raw *Beatmap, mode model.GameMode) float64 {
	if raw.Difficulty != nil {
		return *raw.Difficulty
	}
	switch mode {
	case model.GameModeTaiko:
		return raw.DifficultyTaiko
	case model.GameModeCtb:
		return raw.DifficultyCtb
	case model.GameModeMania:
		return raw.DifficultyMania
	}
	return raw.DifficultyStd
}
