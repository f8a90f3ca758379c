package gatari

import (
	"fmt"
	"strconv"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
)

const (
	ServerRoot  = "https://osu.gatari.pw"
	AvatarsRoot = "https://a.gatari.pw"
	APIRoot     = "https://api.gatari.pw"

	// Gatari mirrors beatmap covers from the official server.
	assetsRoot = "https://assets.ppy.sh"
)

type URLGenerator struct {
	osu.BaseURLGenerator
	APIRoot string
}

func NewURLGenerator() *URLGenerator {
	return NewURLGeneratorWithRoot(APIRoot)
}

func NewURLGeneratorWithRoot(apiRoot string) *URLGenerator {
	return &URLGenerator{
		BaseURLGenerator: osu.BaseURLGenerator{
			ServerName:  model.ServerGatari,
			ServerRoot:  ServerRoot,
			AssetsRoot:  assetsRoot,
			AvatarsRoot: AvatarsRoot,
		},
		APIRoot: apiRoot,
	}
}

func (g *URLGenerator) BeatmapInfoURL(beatmapId int) string {
	query := &osu.Query{}
	query.AddInt("bb", beatmapId)
	return query.With(g.APIRoot + "/beatmaps/get")
}

func (g *URLGenerator) UserInfoURL(user string) string {
	query := &osu.Query{}
	query.Add("u", user)
	return query.With(g.APIRoot + "/users/get")
}

func (g *URLGenerator) UserStatsURL(options *model.UserRequestOptions) string {
	query := &osu.Query{}
	query.Add("u", options.User)
	if options.Mode != nil {
		query.AddInt("mode", int(*options.Mode))
	}
	return query.With(g.APIRoot + "/user/stats")
}

func (g *URLGenerator) UserBestURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("best", userId, options)
}

// UserFirstsURL differs from Bancho in the path: "first", not "firsts".
func (g *URLGenerator) UserFirstsURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("first", userId, options)
}

func (g *URLGenerator) UserRecentURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("recent", userId, options)
}

func (g *URLGenerator) userScoresURL(kind string, userId int, options *model.ScoreListRequestOptions) string {
	query := &osu.Query{}
	query.AddInt("id", userId)
	if options.Mode != nil {
		query.AddInt("mode", int(*options.Mode))
	}
	query.AddPositive("p", page(options.Offset, options.Limit))
	query.AddPositive("l", options.Limit)
	if options.IncludeFails {
		query.Add("f", "1")
	}
	return query.With(fmt.Sprintf("%s/user/scores/%s", g.APIRoot, kind))
}

// page converts an offset into Gatari's 1-based page number. Zero means the first page.
func page(offset, limit int) int {
	if offset <= 0 {
		return 0
	}
	if limit <= 0 {
		return offset + 1
	}
	return offset/limit + 1
}

// BeatmapScoresURL lists the top scores of a beatmap, or the best score of one user on it.
func (g *URLGenerator) BeatmapScoresURL(options *model.LeaderboardRequestOptions, userId int) string {
	query := &osu.Query{}
	if options.Mode != nil {
		query.AddInt("mode", int(*options.Mode))
	}
	if userId != 0 {
		query.AddInt("b", options.BeatmapId)
		query.AddInt("u", userId)
		return query.With(g.APIRoot + "/beatmap/user/score")
	}
	query.AddPositive("l", options.Limit)
	return query.With(g.APIRoot + "/beatmap/" + strconv.Itoa(options.BeatmapId) + "/scores")
}
