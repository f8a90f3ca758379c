package model

import (
	"fmt"
	"strings"
)

// BeatmapRequestOptions looks a beatmap up by id, checksum or free-text search.
type BeatmapRequestOptions struct {
	BeatmapId int
	Hash      string
	Search    string
	// Mode narrows free-text search to one ruleset.
	Mode *GameMode
}

type LeaderboardRequestOptions struct {
	BeatmapId int
	// User narrows the leaderboard to one player (name or id).
	User  string
	Mode  *GameMode
	Mods  string
	Limit int
}

type DifficultyRequestOptions struct {
	BeatmapId int
	// Mode defaults to osu!standard attributes when nil.
	Mode *GameMode
	Mods string
}

type ScoreListRequestOptions struct {
	User         string
	Mode         *GameMode
	Limit        int
	Offset       int
	IncludeFails bool
}

type ScoreRequestOptions struct {
	ScoreId int64
	Mode    *GameMode
}

type UserRequestOptions struct {
	User string
	Mode *GameMode
}

type SortingType int

//goland:noinspection ALL
const (
	SortPerformance SortingType = iota
	SortPerformanceReverse
	SortDifficulty
	SortDifficultyReverse
	SortDate
	SortDateReverse
	SortAccuracy
	SortAccuracyReverse
	SortBPM
	SortBPMReverse
	SortScore
	SortScoreReverse
)

var sortingNames = map[string]SortingType{
	"pp":          SortPerformance,
	"performance": SortPerformance,
	"difficulty":  SortDifficulty,
	"stars":       SortDifficulty,
	"date":        SortDate,
	"accuracy":    SortAccuracy,
	"acc":         SortAccuracy,
	"bpm":         SortBPM,
	"score":       SortScore,
}

// ParseSortingType accepts names like "pp", "date" or "-acc".
// A leading "-" selects the reverse order.
func ParseSortingType(input string) (SortingType, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return SortPerformance, nil
	}
	reverse := strings.HasPrefix(input, "-")
	sorting, ok := sortingNames[strings.TrimPrefix(input, "-")]
	if !ok {
		return SortPerformance, fmt.Errorf("unknown sorting type: %q", input)
	}
	if reverse {
		sorting++
	}
	return sorting, nil
}
