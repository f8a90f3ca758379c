package gatari

import (
	"testing"

	"github.com/kionell/osu-api/model"
	"github.com/stretchr/testify/assert"
)

func TestURLGenerator_Links(t *testing.T) {
	generator := NewURLGenerator()

	assert.Equal(t, model.ServerGatari, generator.Server())
	assert.Equal(t, "https://osu.gatari.pw/u/1000", generator.UserURL("1000"))
	assert.Equal(t, "https://osu.gatari.pw/b/75?m=2", generator.BeatmapURL(75, model.GameModeCtb.Ptr()))
	assert.Equal(t, "https://a.gatari.pw/1000", generator.AvatarURL(1000))
	assert.Equal(t, "https://assets.ppy.sh/beatmaps/1/covers/list.jpg", generator.BeatmapThumbnailURL(1))
}

func TestURLGenerator_Endpoints(t *testing.T) {
	generator := NewURLGenerator()

	assert.Equal(t, "https://api.gatari.pw/beatmaps/get?bb=75", generator.BeatmapInfoURL(75))
	assert.Equal(t, "https://api.gatari.pw/users/get?u=some+one", generator.UserInfoURL("some one"))
	assert.Equal(t, "https://api.gatari.pw/user/stats?u=1000&mode=1",
		generator.UserStatsURL(&model.UserRequestOptions{User: "1000", Mode: model.GameModeTaiko.Ptr()}))

	options := &model.ScoreListRequestOptions{Mode: model.GameModeOsu.Ptr(), Limit: 10, Offset: 20, IncludeFails: true}
	assert.Equal(t, "https://api.gatari.pw/user/scores/best?id=5&mode=0&p=3&l=10&f=1", generator.UserBestURL(5, options))
	assert.Equal(t, "https://api.gatari.pw/user/scores/first?id=5", generator.UserFirstsURL(5, &model.ScoreListRequestOptions{}))
	assert.Equal(t, "https://api.gatari.pw/user/scores/recent?id=5&l=1", generator.UserRecentURL(5, &model.ScoreListRequestOptions{Limit: 1}))

	leaderboard := &model.LeaderboardRequestOptions{BeatmapId: 75, Mode: model.GameModeMania.Ptr()}
	assert.Equal(t, "https://api.gatari.pw/beatmap/75/scores?mode=3", generator.BeatmapScoresURL(leaderboard, 0))
	leaderboard.Limit = 50
	assert.Equal(t, "https://api.gatari.pw/beatmap/75/scores?mode=3&l=50", generator.BeatmapScoresURL(leaderboard, 0))
	assert.Equal(t, "https://api.gatari.pw/beatmap/user/score?mode=3&b=75&u=5", generator.BeatmapScoresURL(leaderboard, 5))
}

func TestPage(t *testing.T) {
	tests := []struct {
		offset, limit, expected int
	}{
		{0, 10, 0},
		{-5, 10, 0},
		{5, 10, 1},
		{10, 10, 2},
		{25, 10, 3},
		{3, 0, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, page(tt.offset, tt.limit), "offset %d limit %d", tt.offset, tt.limit)
	}
}
