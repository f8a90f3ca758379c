package model

import "time"

type Grades map[ScoreRank]int

type LevelInfo struct {
	Current  int
	Progress int
}

type HighestRank struct {
	Rank      int
	UpdatedAt time.Time
}

type RankHistory struct {
	Mode GameMode
	Data []int
}

type UserInfo struct {
	Id                int
	Username          string
	CountryCode       string
	PreviousUsernames []string

	IsActive    bool
	IsBot       bool
	IsDeleted   bool
	IsOnline    bool
	IsSupporter bool

	Playmode       GameMode
	FollowersCount int
	JoinedAt       time.Time
	LastVisitAt    *time.Time

	HighestRank *HighestRank
	RankHistory *RankHistory

	Grades Grades
	// Accuracy is always a 0-1 fraction.
	Accuracy         float64
	Level            LevelInfo
	MaxCombo         int
	Playcount        int
	Playtime         int
	TotalPerformance float64
	GlobalRank       int
	CountryRank      int
	RankedScore      int64
	ReplaysWatched   int
	TotalHits        int64
	TotalScore       int64
}

func NewUserInfo() *UserInfo {
	return &UserInfo{
		CountryCode: "XX",
		Level:       LevelInfo{Current: 1},
		Grades:      Grades{},
	}
}
