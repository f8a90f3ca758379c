package bancho

import (
	"testing"

	"github.com/kionell/osu-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() []Beatmapset {
	return []Beatmapset{
		{
			Id: 39804, Title: "Freedom Dive", Artist: "xi", Creator: "Nakagawa-Kanon", Tags: "bms",
			Beatmaps: []Beatmap{
				{Id: 1, Version: "Easy", Checksum: "AAAA"},
				{Id: 2, Version: "FOUR DIMENSIONS"},
			},
		},
		{
			Id: 292301, Title: "Blue Zenith", Artist: "xi", Creator: "Asphyxia",
			Beatmaps: []Beatmap{
				{Id: 3, Version: "Normal"},
				{Id: 4, Version: "FOUR DIMENSIONS"},
			},
		},
	}
}

func TestSearchBeatmap(t *testing.T) {
	tests := []struct {
		query    string
		expected utils.FlexInt
	}{
		{"3", 3},
		{"aaaa", 1},
		{"xi", 2},
		{"easy", 1},
		{"asphyxia", 4},
		{"blue zenith normal", 3},
		{"xi - freedom dive bms", 2},
		{"nothing matches this", 2},
	}
	for _, tt := range tests {
		result := SearchBeatmap(searchFixture(), tt.query)
		require.NotNil(t, result, tt.query)
		assert.Equal(t, tt.expected, result.Id, tt.query)
		require.NotNil(t, result.Beatmapset, tt.query)
	}
}

func TestSearchBeatmap_KeepsSetMetadata(t *testing.T) {
	result := SearchBeatmap(searchFixture(), "blue zenith")

	require.NotNil(t, result)
	assert.Equal(t, utils.FlexInt(4), result.Id)
	assert.Equal(t, "Asphyxia", NewBeatmapInfo(result).Creator)
}

func TestSearchBeatmap_Empty(t *testing.T) {
	assert.Nil(t, SearchBeatmap(nil, "xi"))
	assert.Nil(t, SearchBeatmap(searchFixture(), "   "))
	assert.Nil(t, SearchBeatmap([]Beatmapset{{Id: 1}}, "xi"))
}
