package bancho

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const beatmapJSON = `{
	"id": 75,
	"beatmapset_id": 1,
	"checksum": "a5b99395a42bd55bc5eb1d2411cbdf8b",
	"user_id": 2,
	"version": "Normal",
	"mode": "osu",
	"mode_int": 0,
	"ranked": 1,
	"convert": false,
	"passcount": 100,
	"playcount": 1000,
	"count_circles": 160,
	"count_sliders": 30,
	"count_spinners": 3,
	"max_combo": 314,
	"total_length": 142,
	"bpm": 160,
	"cs": 4,
	"ar": 6,
	"accuracy": 6,
	"drain": 6,
	"difficulty_rating": 2.55,
	"deleted_at": null,
	"last_updated": "2014-05-18T17:16:47Z",
	"beatmapset": {
		"id": 1,
		"artist": "Kenji Ninuma",
		"title": "DISCOPRINCE",
		"creator": "peppy",
		"user_id": 2,
		"favourite_count": 600
	}
}`

const scoreJSON = `{
	"id": 4000,
	"score": 1000000,
	"pp": 727.5,
	"accuracy": 0.9876,
	"rank": "SH",
	"max_combo": 2000,
	"passed": true,
	"perfect": false,
	"mods": ["HD", "DT"],
	"user_id": 124493,
	"user": {"id": 124493, "username": "chocomint"},
	"mode": "osu",
	"mode_int": 0,
	"created_at": "2020-01-01T00:00:00Z",
	"statistics": {"count_300": 1000, "count_100": 20, "count_50": 1, "count_miss": 0},
	"beatmap": {"id": 129891, "checksum": "da8aae79c8f3306b5d65ec951874a7fb", "version": "FOUR DIMENSIONS", "mode_int": 0},
	"beatmapset": {"id": 39804, "title": "Freedom Dive", "artist": "xi", "creator": "Nakagawa-Kanon", "user_id": 8}
}`

const lazerScoreJSON = `{
	"id": "5000",
	"total_score": 900000,
	"pp": null,
	"accuracy": 0.5,
	"rank": "F",
	"max_combo": 12,
	"mods": [{"acronym": "HR"}, {"acronym": "HD"}],
	"ruleset_id": 1,
	"user_id": 2,
	"ended_at": "2024-03-01T12:00:00Z",
	"statistics": {}
}`

const userJSON = `{
	"id": 2,
	"username": "peppy",
	"country_code": "AU",
	"is_active": true,
	"is_supporter": true,
	"playmode": "osu",
	"follower_count": 40000,
	"join_date": "2007-08-28T03:09:12+00:00",
	"last_visit": null,
	"previous_usernames": ["peppy2"],
	"rank_highest": {"rank": 100, "updated_at": "2020-01-01T00:00:00Z"},
	"rank_history": {"mode": "osu", "data": [3, 2, 1]},
	"statistics": {
		"grade_counts": {"a": 1, "s": 2, "sh": 3, "ss": 4, "ssh": 5},
		"hit_accuracy": 97.5,
		"level": {"current": 100, "progress": 50},
		"maximum_combo": 1500,
		"play_count": 1000,
		"play_time": 36000,
		"pp": 1234.5,
		"global_rank": null,
		"country_rank": 10,
		"ranked_score": 1000000000,
		"replays_watched_by_others": 7,
		"total_hits": 500000,
		"total_score": 2000000000
	}
}`

func decode[T any](t *testing.T, data string) *T {
	var result T
	require.NoError(t, json.Unmarshal([]byte(data), &result))
	return &result
}
