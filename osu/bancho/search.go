package bancho

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kionell/osu-api/utils"
)

// SearchBeatmap picks the beatmap a free-text query most likely refers to.
//
// Sets are visited in the given order and the difficulties of each set from last to first.
// For every difficulty the rules are tried in order: exact id, exact checksum
// (both only for single-keyword queries), then all keywords contained in the
// difficulty name, creator, title, artist and finally the full
// "artist - title (creator) [version] tags" string.
// Without any match the last difficulty of the first set is returned.
func SearchBeatmap(beatmapsets []Beatmapset, query string) *Beatmap {
	keywords := utils.Keywords(query)
	if len(beatmapsets) == 0 || len(keywords) == 0 {
		return nil
	}

	for i := range beatmapsets {
		set := &beatmapsets[i]
		title := strings.ToLower(set.Title)
		artist := strings.ToLower(set.Artist)
		creator := strings.ToLower(set.Creator)
		tags := strings.ToLower(set.Tags)

		for _, beatmap := range utils.Reversed(set.Beatmaps) {
			beatmap.Beatmapset = set
			if len(keywords) == 1 {
				if id, err := strconv.Atoi(keywords[0]); err == nil && id == beatmap.Id.Int() {
					return &beatmap
				}
				if beatmap.Checksum != "" && keywords[0] == strings.ToLower(beatmap.Checksum) {
					return &beatmap
				}
			}

			version := strings.ToLower(beatmap.Version)
			fullName := fmt.Sprintf("%s - %s (%s) [%s] %s", artist, title, creator, version, tags)
			for _, text := range []string{version, creator, title, artist, fullName} {
				if utils.HasAllKeywords(text, keywords) {
					return &beatmap
				}
			}
		}
	}

	first := &beatmapsets[0]
	if len(first.Beatmaps) == 0 {
		return nil
	}
	fallback := first.Beatmaps[len(first.Beatmaps)-1]
	fallback.Beatmapset = first
	return &fallback
}
