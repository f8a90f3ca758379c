package bancho

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"golang.org/x/oauth2"
)

const (
	ServerRoot  = "https://osu.ppy.sh"
	AssetsRoot  = "https://assets.ppy.sh"
	AvatarsRoot = "https://a.ppy.sh"

	apiPath       = "/api/v2"
	tokenPath     = "/oauth/token"
	authorizePath = "/oauth/authorize"
	guestAvatar   = "/images/layout/avatar-guest.png"
)

type URLGenerator struct {
	osu.BaseURLGenerator
	APIRoot string
}

func NewURLGenerator() *URLGenerator {
	return NewURLGeneratorWithRoot(ServerRoot)
}

// NewURLGeneratorWithRoot serves every API endpoint from root.
// Asset and avatar links keep pointing at the official hosts.
func NewURLGeneratorWithRoot(root string) *URLGenerator {
	return &URLGenerator{
		BaseURLGenerator: osu.BaseURLGenerator{
			ServerName:  model.ServerBancho,
			ServerRoot:  root,
			AssetsRoot:  AssetsRoot,
			AvatarsRoot: AvatarsRoot,
		},
		APIRoot: root + apiPath,
	}
}

func (g *URLGenerator) AvatarURL(userId int) string {
	if userId == 0 {
		return g.ServerRoot + guestAvatar
	}
	return g.BaseURLGenerator.AvatarURL(userId)
}

func (g *URLGenerator) TokenURL() string {
	return g.ServerRoot + tokenPath
}

func (g *URLGenerator) oauthConfig(clientId, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientId,
		RedirectURL: redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  g.ServerRoot + authorizePath,
			TokenURL: g.TokenURL(),
		},
		Scopes: []string{"public"},
	}
}

// AuthURL is the authorization code link a user opens to grant access.
func (g *URLGenerator) AuthURL(clientId, redirectURI, state string) string {
	return g.oauthConfig(clientId, redirectURI).AuthCodeURL(state)
}

func (g *URLGenerator) BeatmapLookupURL(options *model.BeatmapRequestOptions) string {
	query := &osu.Query{}
	query.AddIf("checksum", options.Hash)
	query.AddPositive("id", options.BeatmapId)
	return query.With(g.APIRoot + "/beatmaps/lookup")
}

func (g *URLGenerator) BeatmapsetSearchURL(search string, mode *model.GameMode) string {
	query := &osu.Query{}
	query.Add("q", search).Add("s", "any")
	if mode != nil {
		query.AddInt("m", int(*mode))
	}
	return query.With(g.APIRoot + "/beatmapsets/search")
}

func (g *URLGenerator) ScoreInfoURL(options *model.ScoreRequestOptions) string {
	if options.Mode == nil {
		return fmt.Sprintf("%s/scores/%d", g.APIRoot, options.ScoreId)
	}
	return fmt.Sprintf("%s/scores/%s/%d", g.APIRoot, options.Mode.ShortName(), options.ScoreId)
}

func (g *URLGenerator) UserInfoURL(options *model.UserRequestOptions) string {
	link := fmt.Sprintf("%s/users/%s", g.APIRoot, url.PathEscape(options.User))
	if options.Mode != nil {
		link += "/" + options.Mode.ShortName()
	}
	return link
}

func (g *URLGenerator) UserBestURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("best", userId, options)
}

func (g *URLGenerator) UserFirstsURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("firsts", userId, options)
}

func (g *URLGenerator) UserRecentURL(userId int, options *model.ScoreListRequestOptions) string {
	return g.userScoresURL("recent", userId, options)
}

func (g *URLGenerator) userScoresURL(kind string, userId int, options *model.ScoreListRequestOptions) string {
	query := &osu.Query{}
	if options.Mode != nil {
		query.Add("mode", options.Mode.ShortName())
	}
	query.AddPositive("limit", options.Limit)
	query.AddPositive("offset", options.Offset)
	if options.IncludeFails {
		query.Add("include_fails", "1")
	}
	return query.With(fmt.Sprintf("%s/users/%d/scores/%s", g.APIRoot, userId, kind))
}

// LeaderboardURL lists the top scores of a beatmap, or every score of one user on it.
func (g *URLGenerator) LeaderboardURL(options *model.LeaderboardRequestOptions, userId int) string {
	link := fmt.Sprintf("%s/beatmaps/%d/scores", g.APIRoot, options.BeatmapId)
	if userId != 0 {
		link += "/users/" + strconv.Itoa(userId) + "/all"
	}
	query := &osu.Query{}
	if options.Mode != nil {
		query.Add("mode", options.Mode.ShortName())
	}
	for _, acronym := range model.NewModCombination(options.Mods).List() {
		query.Add("mods[]", acronym)
	}
	if userId == 0 {
		query.AddPositive("limit", options.Limit)
	}
	return query.With(link)
}

func (g *URLGenerator) DifficultyURL(beatmapId int) string {
	return fmt.Sprintf("%s/beatmaps/%d/attributes", g.APIRoot, beatmapId)
}
