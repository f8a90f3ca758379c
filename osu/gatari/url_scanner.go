package gatari

import (
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
)

// Dialect describes osu.gatari.pw links. Gatari has no score pages.
var Dialect = osu.Dialect{
	Server:     model.ServerGatari,
	Base:       `(https?://)?osu\.gatari\.pw`,
	User:       `/u/[\w\-\[\]%]+((/ap|/rx)?(\?m=[0-3]))?`,
	Beatmap:    `/b/[0-9]+(\?m=[0-3])?`,
	Beatmapset: `/s/[0-9]+`,

	BeatmapIdPosition:    osu.FirstId,
	BeatmapsetIdPosition: osu.FirstId,
}

func NewURLScanner() *osu.URLScanner {
	return osu.NewURLScanner(Dialect)
}
