package bancho

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
)

const rulesets = `(osu|taiko|fruits|mania)`

// Dialect describes osu.ppy.sh links, including the old, dev and lazer hosts.
var Dialect = osu.Dialect{
	Server:         model.ServerBancho,
	Base:           `(https?://)?(old|osu|dev|lazer)\.ppy\.sh`,
	User:           `/(u|users)/[\w\-\[\]%]+(#` + rulesets + `|/` + rulesets + `)?`,
	Beatmap:        `/(b|beatmaps)/[0-9]+((\?mode=` + rulesets + `)|(\?m=[0-3]))?`,
	Beatmapset:     `/(s|beatmapsets)/[0-9]+(#` + rulesets + `)?`,
	BeatmapWithSet: `/(s|beatmapsets)/[0-9]+(#` + rulesets + `)?/[0-9]+`,
	Score:          `/scores(/` + rulesets + `)?/[0-9]+`,

	BeatmapIdPosition:    osu.LastId,
	BeatmapsetIdPosition: osu.FirstId,
	ScoreIdPosition:      osu.LastId,
}

func NewURLScanner() *osu.URLScanner {
	return osu.NewURLScanner(Dialect)
}
