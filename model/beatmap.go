package model

import "time"

// BeatmapInfo is a single difficulty as seen by any server.
type BeatmapInfo struct {
	Id           int
	BeatmapsetId int
	HashMD5      string

	CreatorId int
	Creator   string
	Title     string
	Artist    string
	Version   string

	Favourites int
	Passcount  int
	Playcount  int
	Status     BeatmapStatus

	// Object counts. For mania, sliders are hold notes.
	Hittable  int
	Slidable  int
	Spinnable int
	Holdable  int

	// Length in seconds.
	Length  float64
	BPMMin  float64
	BPMMax  float64
	BPMMode float64

	CircleSize        float64
	ApproachRate      float64
	OverallDifficulty float64
	DrainRate         float64
	StarRating        float64
	MaxCombo          int

	RulesetId GameMode
	IsConvert bool

	DeletedAt *time.Time
	UpdatedAt *time.Time
}

// NewBeatmapInfo returns a beatmap with osu!'s default difficulty values.
func NewBeatmapInfo() *BeatmapInfo {
	return &BeatmapInfo{
		Status:            StatusPending,
		BPMMin:            60,
		BPMMax:            60,
		BPMMode:           60,
		CircleSize:        5,
		ApproachRate:      5,
		OverallDifficulty: 5,
		DrainRate:         5,
	}
}

// TotalHits is the number of hit objects of the beatmap.
func (b *BeatmapInfo) TotalHits() int {
	if b.RulesetId == GameModeMania {
		return b.Hittable + b.Holdable
	}
	return b.Hittable + b.Slidable + b.Spinnable
}
