package bancho

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

func rulesetOf(modeInt *int, mode string) model.GameMode {
	if modeInt != nil {
		return model.GameMode(*modeInt)
	}
	if parsed, err := model.ParseGameMode(mode); err == nil {
		return parsed
	}
	return model.GameModeOsu
}

// NewBeatmapInfo maps a beatmap payload. Set metadata is taken from the nested beatmapset.
func NewBeatmapInfo(raw *Beatmap) *model.BeatmapInfo {
	b := model.NewBeatmapInfo()
	b.Id = raw.Id.Int()
	b.BeatmapsetId = raw.BeatmapsetId.Int()
	b.HashMD5 = raw.Checksum
	b.CreatorId = raw.UserId.Int()
	b.Version = raw.Version

	if set := raw.Beatmapset; set != nil {
		if b.CreatorId == 0 {
			b.CreatorId = set.UserId.Int()
		}
		if b.BeatmapsetId == 0 {
			b.BeatmapsetId = set.Id.Int()
		}
		b.Creator = set.Creator
		b.Title = set.Title
		b.Artist = set.Artist
		b.Favourites = set.FavouriteCount
	}

	b.Passcount = raw.Passcount
	b.Playcount = raw.Playcount
	b.Status = model.BeatmapStatus(utils.Or(raw.Ranked, int(b.Status)))

	b.RulesetId = rulesetOf(raw.ModeInt, raw.Mode)
	b.IsConvert = raw.Convert
	b.Hittable = raw.CountCircles
	if b.RulesetId == model.GameModeMania {
		b.Holdable = raw.CountSliders
	} else {
		b.Slidable = raw.CountSliders
		b.Spinnable = raw.CountSpinners
	}

	b.Length = raw.TotalLength
	if raw.BPM != nil {
		b.BPMMin, b.BPMMax, b.BPMMode = *raw.BPM, *raw.BPM, *raw.BPM
	}
	b.CircleSize = utils.Or(raw.CS, b.CircleSize)
	b.ApproachRate = utils.Or(raw.AR, b.ApproachRate)
	b.OverallDifficulty = utils.Or(raw.Accuracy, b.OverallDifficulty)
	b.DrainRate = utils.Or(raw.Drain, b.DrainRate)
	b.StarRating = raw.DifficultyRating
	b.MaxCombo = raw.MaxCombo

	b.DeletedAt = utils.ParseTimePtr(raw.DeletedAt)
	b.UpdatedAt = utils.ParseTimePtr(raw.LastUpdated)
	return b
}
