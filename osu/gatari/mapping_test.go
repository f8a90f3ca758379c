package gatari

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/kionell/osu-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, data string) *T {
	var result T
	require.NoError(t, json.Unmarshal([]byte(data), &result))
	return &result
}

func TestNewBeatmapStatus(t *testing.T) {
	tests := map[int]model.BeatmapStatus{
		-2: model.StatusGraveyard,
		-1: model.StatusGraveyard,
		0:  model.StatusPending,
		1:  model.StatusPending,
		2:  model.StatusRanked,
		3:  model.StatusApproved,
		4:  model.StatusQualified,
		5:  model.StatusLoved,
		7:  model.StatusPending,
	}
	for ranked, expected := range tests {
		assert.Equal(t, expected, NewBeatmapStatus(ranked), "ranked %d", ranked)
	}
}

func TestNewBeatmapInfo(t *testing.T) {
	expected := model.NewBeatmapInfo()
	expected.Id = 75
	expected.BeatmapsetId = 1
	expected.HashMD5 = "a5b99395a42bd55bc5eb1d2411cbdf8b"
	expected.Creator = "peppy"
	expected.Title = "DISCOPRINCE"
	expected.Artist = "Kenji Ninuma"
	expected.Version = "Normal"
	expected.Passcount = 10
	expected.Playcount = 100
	expected.Status = model.StatusRanked
	expected.Length = 142
	expected.BPMMin, expected.BPMMax, expected.BPMMode = 160, 160, 160
	expected.CircleSize = 4
	expected.ApproachRate = 6
	expected.OverallDifficulty = 6
	expected.DrainRate = 6
	expected.StarRating = 2.55
	expected.MaxCombo = 314

	actual := NewBeatmapInfo(decode[Beatmap](t, beatmapJSON))
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("NewBeatmapInfo() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBeatmapInfo_RulesetStarRating(t *testing.T) {
	raw := decode[Beatmap](t, beatmapJSON)
	taiko := 1
	raw.Mode = &taiko

	assert.Equal(t, 3.1, NewBeatmapInfo(raw).StarRating)
}

func TestNewScoreInfo(t *testing.T) {
	actual := NewScoreInfo(decode[Score](t, scoreJSON))

	assert.Equal(t, int64(300), actual.Id)
	assert.Equal(t, int64(1000000), actual.TotalScore)
	assert.Equal(t, 250.5, actual.PP)
	assert.InDelta(t, 0.985, actual.Accuracy, 1e-9)
	assert.Equal(t, model.RankS, actual.Rank)
	assert.True(t, actual.Passed)
	assert.True(t, actual.Perfect)
	assert.Equal(t, "HDDT", actual.Mods.Acronyms())
	assert.Equal(t, 1000, actual.UserId)
	assert.Equal(t, "mrekk", actual.Username)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), actual.Date)
	assert.Equal(t, model.HitStatistics{CountGeki: 40, CountKatu: 2, Count300: 190, Count100: 3}, actual.Statistics)

	require.NotNil(t, actual.Beatmap)
	assert.Equal(t, 75, actual.BeatmapId)
	assert.Equal(t, 2.7, actual.Beatmap.StarRating)
	assert.Equal(t, 314, actual.Beatmap.MaxCombo)
}

func TestNewScoreInfo_Failed(t *testing.T) {
	actual := NewScoreInfo(decode[Score](t, `{"id": 1, "rank": "F", "ranking": "A", "full_combo": false, "fc": 1, "max_combo": 5}`))

	assert.Equal(t, model.RankF, actual.Rank)
	assert.False(t, actual.Passed)
	assert.False(t, actual.Perfect)
	assert.True(t, actual.Date.IsZero())
	assert.Nil(t, actual.Beatmap)
}

func TestFirstCount(t *testing.T) {
	one, two := 1, 2

	assert.Equal(t, 1, firstCount(&one, &two))
	assert.Equal(t, 2, firstCount(nil, &two))
	assert.Equal(t, 0, firstCount(nil, nil))
}

func TestNewUserInfo(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })

	info := decode[struct {
		Users []UserInfo `json:"users"`
	}](t, userInfoJSON)
	stats := decode[struct {
		Stats UserStats `json:"stats"`
	}](t, userStatsJSON)

	actual := NewUserInfo(&info.Users[0], &stats.Stats)

	assert.Equal(t, 1000, actual.Id)
	assert.Equal(t, "[GT] mrekk", actual.Username)
	assert.Equal(t, []string{"mrek"}, actual.PreviousUsernames)
	assert.Equal(t, "AU", actual.CountryCode)
	assert.True(t, actual.IsOnline)
	assert.True(t, actual.IsActive)
	assert.Equal(t, 500, actual.FollowersCount)
	assert.Equal(t, time.Unix(1500000000, 0).UTC(), actual.JoinedAt)
	require.NotNil(t, actual.LastVisitAt)
	assert.Equal(t, time.Unix(1704067200, 0).UTC(), *actual.LastVisitAt)

	assert.Equal(t, model.Grades{model.RankA: 1, model.RankS: 2, model.RankSH: 3, model.RankX: 4, model.RankXH: 5}, actual.Grades)
	assert.Equal(t, 12, actual.GlobalRank)
	assert.Equal(t, 3, actual.CountryRank)
	assert.Equal(t, model.LevelInfo{Current: 100, Progress: 40}, actual.Level)
	assert.InDelta(t, 0.991, actual.Accuracy, 1e-9)
	assert.Equal(t, 15000.0, actual.TotalPerformance)
	assert.Equal(t, int64(900000000), actual.TotalScore)

	now = now.AddDate(1, 0, 0)
	assert.False(t, NewUserInfo(&info.Users[0], &stats.Stats).IsActive)
}

func TestDisplayName(t *testing.T) {
	empty := ""

	assert.Equal(t, "mrekk", displayName(&UserInfo{Username: "mrekk"}))
	assert.Equal(t, "mrekk", displayName(&UserInfo{Username: "mrekk", Abbr: &empty}))
}
