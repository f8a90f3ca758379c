package bancho

import (
	"testing"

	"github.com/kionell/osu-api/model"
	"github.com/stretchr/testify/assert"
)

func TestURLScanner_Beatmaps(t *testing.T) {
	scanner := NewURLScanner()

	assert.True(t, scanner.IsBeatmapURL("https://osu.ppy.sh/b/123"))
	assert.True(t, scanner.IsBeatmapURL("osu.ppy.sh/beatmaps/123?mode=taiko"))
	assert.True(t, scanner.IsBeatmapURL("https://osu.ppy.sh/beatmapsets/100#osu/200"))
	assert.False(t, scanner.IsBeatmapURL("https://osu.ppy.sh/beatmapsets/100"))
	assert.False(t, scanner.IsBeatmapURL("some text"))
	assert.False(t, scanner.IsBeatmapURL("https://osu.gatari.pw/b/123"))

	assert.Equal(t, 123, scanner.GetBeatmapIdFromURL("https://osu.ppy.sh/b/123"))
	assert.Equal(t, 200, scanner.GetBeatmapIdFromURL("https://osu.ppy.sh/beatmapsets/100#osu/200"))
	assert.Equal(t, 100, scanner.GetBeatmapsetIdFromURL("https://osu.ppy.sh/beatmapsets/100#osu/200"))
	assert.Equal(t, 55, scanner.GetBeatmapIdFromURL("55"))
	assert.Equal(t, 0, scanner.GetBeatmapIdFromURL("some text"))

	assert.True(t, scanner.HasBeatmapURL("check https://osu.ppy.sh/b/1 out"))
	assert.True(t, scanner.IsBeatmapsetURL("https://osu.ppy.sh/s/7"))
}

func TestURLScanner_Rulesets(t *testing.T) {
	scanner := NewURLScanner()
	tests := []struct {
		link     string
		expected model.GameMode
		explicit bool
	}{
		{"https://osu.ppy.sh/beatmapsets/100#taiko/200", model.GameModeTaiko, true},
		{"https://osu.ppy.sh/beatmapsets/100#fruits/200", model.GameModeCtb, true},
		{"https://osu.ppy.sh/b/1?m=3", model.GameModeMania, true},
		{"https://osu.ppy.sh/beatmaps/1?mode=mania", model.GameModeMania, true},
		{"https://osu.ppy.sh/b/1", model.GameModeOsu, false},
	}
	for _, tt := range tests {
		mode, ok := scanner.GetRulesetIdFromURL(tt.link)
		assert.True(t, ok, tt.link)
		assert.Equal(t, tt.expected, mode, tt.link)
		assert.Equal(t, tt.explicit, scanner.IsBeatmapURLWithRuleset(tt.link), tt.link)
	}

	_, ok := scanner.GetRulesetIdFromURL("https://example.com/b/1?m=3")
	assert.False(t, ok)
}

func TestURLScanner_UsersAndScores(t *testing.T) {
	scanner := NewURLScanner()

	assert.True(t, scanner.IsUserURL("https://osu.ppy.sh/users/2#mania"))
	assert.True(t, scanner.IsUserURL("old.ppy.sh/u/peppy"))
	assert.Equal(t, "2", scanner.GetUserFromURL("https://osu.ppy.sh/users/2/mania"))
	assert.Equal(t, "peppy", scanner.GetUserFromURL("old.ppy.sh/u/peppy"))

	mode, ok := scanner.GetRulesetIdFromURL("https://osu.ppy.sh/users/2/mania")
	assert.True(t, ok)
	assert.Equal(t, model.GameModeMania, mode)

	for _, link := range []string{"https://osu.ppy.sh/users/maniac", "https://osu.ppy.sh/users/mania", "https://osu.ppy.sh/u/taiko_player"} {
		mode, ok = scanner.GetRulesetIdFromURL(link)
		assert.True(t, ok, link)
		assert.Equal(t, model.GameModeOsu, mode, link)
	}

	mode, _ = scanner.GetRulesetIdFromURL("https://osu.ppy.sh/scores/taiko/4000")
	assert.Equal(t, model.GameModeTaiko, mode)

	assert.True(t, scanner.IsScoreURL("https://osu.ppy.sh/scores/osu/4000"))
	assert.True(t, scanner.IsScoreURL("https://lazer.ppy.sh/scores/4000"))
	assert.Equal(t, 4000, scanner.GetScoreIdFromURL("https://osu.ppy.sh/scores/osu/4000"))
	assert.False(t, scanner.HasScoreURL("https://osu.ppy.sh/users/2"))
}
