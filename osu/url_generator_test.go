package osu

import (
	"testing"

	"github.com/kionell/osu-api/model"
	"github.com/stretchr/testify/assert"
)

func TestBaseURLGenerator(t *testing.T) {
	generator := BaseURLGenerator{
		ServerName:  model.ServerRipple,
		ServerRoot:  "https://example.com",
		AssetsRoot:  "https://assets.example.com",
		AvatarsRoot: "https://a.example.com",
	}

	assert.Equal(t, model.ServerRipple, generator.Server())
	assert.Equal(t, "https://example.com/u/some%20one", generator.UserURL("some one"))
	assert.Equal(t, "https://example.com/b/10", generator.BeatmapURL(10, nil))
	assert.Equal(t, "https://example.com/b/10?m=3", generator.BeatmapURL(10, model.GameModeMania.Ptr()))
	assert.Equal(t, "https://example.com/s/5", generator.BeatmapsetURL(5))
	assert.Equal(t, "https://a.example.com/2", generator.AvatarURL(2))
	assert.Equal(t, "https://assets.example.com/beatmaps/5/covers/cover.jpg", generator.BeatmapCoverURL(5))
	assert.Equal(t, "https://assets.example.com/beatmaps/5/covers/list.jpg", generator.BeatmapThumbnailURL(5))
}

func TestQuery(t *testing.T) {
	query := &Query{}
	query.Add("mods[]", "HD").
		Add("mods[]", "DT").
		AddInt("limit", 5).
		AddIf("type", "").
		AddPositive("offset", 0).
		AddPositive("page", 2).
		AddIf("q", "a b&c")

	assert.Equal(t, "mods%5B%5D=HD&mods%5B%5D=DT&limit=5&page=2&q=a+b%26c", query.Encode())
	assert.Equal(t, "https://example.com/x?"+query.Encode(), query.With("https://example.com/x"))
	assert.Equal(t, "https://example.com/x", (&Query{}).With("https://example.com/x"))
}
