package gatari

const beatmapJSON = `{
	"beatmap_id": 75,
	"beatmapset_id": 1,
	"beatmap_md5": "a5b99395a42bd55bc5eb1d2411cbdf8b",
	"artist": "Kenji Ninuma",
	"title": "DISCOPRINCE",
	"version": "Normal",
	"creator": "peppy",
	"mode": 0,
	"ranked": 2,
	"passcount": 10,
	"playcount": 100,
	"hit_length": 142,
	"bpm": 160,
	"ar": 6,
	"od": 6,
	"cs": 4,
	"hp": 6,
	"max_combo": 314,
	"difficulty_std": 2.55,
	"difficulty_taiko": 3.1
}`

const scoreJSON = `{
	"id": 300,
	"score": 1000000,
	"pp": "250.5",
	"accuracy": 98.5,
	"ranking": "S",
	"max_combo": 314,
	"fc": 314,
	"mods": 72,
	"play_mode": 0,
	"time": 1577836800,
	"userid": "1000",
	"username": "mrekk",
	"count_300": 190,
	"count_100": 3,
	"count_50": 0,
	"count_miss": 0,
	"count_gekis": 40,
	"katus_count": 2,
	"beatmap": {"beatmap_id": 75, "beatmapset_id": 1, "beatmap_md5": "a5b99395a42bd55bc5eb1d2411cbdf8b", "difficulty": 2.7, "ranked": 2, "fc": 314}
}`

const userInfoJSON = `{
	"users": [{
		"id": 1000,
		"username": "mrekk",
		"username_aka": "mrek",
		"abbr": "GT",
		"country": "AU",
		"favourite_mode": 0,
		"followers_count": 500,
		"is_online": 1,
		"latest_activity": 1704067200,
		"registered_on": 1500000000
	}]
}`

const userStatsJSON = `{
	"stats": {
		"a_count": 1, "s_count": 2, "sh_count": 3, "x_count": 4, "xh_count": 5,
		"rank": 12, "country_rank": 3, "level": 100, "level_progress": 40,
		"avg_accuracy": "99.1", "max_combo": 3000, "playcount": 10000, "playtime": 360000,
		"pp": 15000, "ranked_score": 100000000, "replays_watched": 50,
		"total_hits": 2000000, "total_score": 900000000
	}
}`
