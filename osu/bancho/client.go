package bancho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var capabilities = osu.NewCapabilitySet(
	osu.CapabilityAttributes,
	osu.CapabilityBeatmaps,
	osu.CapabilityLeaderboard,
	osu.CapabilityRecent,
	osu.CapabilityScores,
	osu.CapabilityTop,
	osu.CapabilityFirsts,
	osu.CapabilityUsers,
)

var (
	_ osu.HasAttributes  = (*Client)(nil)
	_ osu.HasBeatmaps    = (*Client)(nil)
	_ osu.HasLeaderboard = (*Client)(nil)
	_ osu.HasRecent      = (*Client)(nil)
	_ osu.HasScores      = (*Client)(nil)
	_ osu.HasTop         = (*Client)(nil)
	_ osu.HasFirsts      = (*Client)(nil)
	_ osu.HasUsers       = (*Client)(nil)
)

// Client wraps osu! API v2. Requests are authorized with the client credentials grant.
type Client struct {
	*osu.OAuthRequestClient
	generator *URLGenerator
	users     *osu.UserIdCache
}

func NewClient(opts ...osu.Option) *Client {
	return NewClientWithGenerator(NewURLGenerator(), opts...)
}

func NewClientWithGenerator(generator *URLGenerator, opts ...osu.Option) *Client {
	c := &Client{
		generator: generator,
		users:     osu.NewUserIdCache(),
	}
	base := osu.NewRequestClient("osu.bancho", opts...)
	c.OAuthRequestClient = osu.NewOAuthRequestClient(base, c.exchangeToken)
	return c
}

func (c *Client) Server() model.Server {
	return model.ServerBancho
}

func (c *Client) Capabilities() osu.CapabilitySet {
	return capabilities
}

func (c *Client) URLGenerator() *URLGenerator {
	return c.generator
}

func (c *Client) exchangeToken(ctx context.Context, clientId, clientSecret string) (*osu.AuthTokens, error) {
	config := &clientcredentials.Config{
		ClientID:     clientId,
		ClientSecret: clientSecret,
		TokenURL:     c.generator.TokenURL(),
		Scopes:       []string{"public"},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient())
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("[bancho] failed to get access token: %w", err)
	}
	return osu.NewAuthTokens(token), nil
}

func (c *Client) GetBeatmap(ctx context.Context, options *model.BeatmapRequestOptions) (*model.BeatmapInfo, error) {
	if options == nil {
		return nil, nil
	}
	if options.BeatmapId != 0 || options.Hash != "" {
		raw, err := osu.Fetch[Beatmap](ctx, c, osu.RequestConfig{URL: c.generator.BeatmapLookupURL(options)})
		if raw == nil || err != nil {
			return nil, err
		}
		return NewBeatmapInfo(raw), nil
	}
	if options.Search != "" {
		result, err := osu.Fetch[struct {
			Beatmapsets []Beatmapset `json:"beatmapsets"`
		}](ctx, c, osu.RequestConfig{URL: c.generator.BeatmapsetSearchURL(options.Search, options.Mode)})
		if result == nil || err != nil {
			return nil, err
		}
		target := SearchBeatmap(result.Beatmapsets, options.Search)
		if target == nil {
			return nil, nil
		}
		return NewBeatmapInfo(target), nil
	}
	return nil, nil
}

func (c *Client) GetScore(ctx context.Context, options *model.ScoreRequestOptions) (*model.ScoreInfo, error) {
	if options == nil || options.ScoreId == 0 {
		return nil, nil
	}
	raw, err := osu.Fetch[Score](ctx, c, osu.RequestConfig{URL: c.generator.ScoreInfoURL(options)})
	if raw == nil || err != nil {
		return nil, err
	}
	return NewScoreInfo(raw), nil
}

func (c *Client) GetLeaderboard(ctx context.Context, options *model.LeaderboardRequestOptions) ([]*model.ScoreInfo, error) {
	if options == nil || options.BeatmapId == 0 {
		return nil, nil
	}
	userId := 0
	if options.User != "" {
		var err error
		userId, err = c.getUserId(ctx, options.User)
		if userId == 0 || err != nil {
			return nil, err
		}
	}
	return c.getScores(ctx, c.generator.LeaderboardURL(options, userId))
}

func (c *Client) GetUserBest(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error) {
	return c.getUserScores(ctx, options, c.generator.UserBestURL)
}

func (c *Client) GetUserFirsts(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error) {
	return c.getUserScores(ctx, options, c.generator.UserFirstsURL)
}

func (c *Client) GetUserRecent(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error) {
	return c.getUserScores(ctx, options, c.generator.UserRecentURL)
}

func (c *Client) GetUser(ctx context.Context, options *model.UserRequestOptions) (*model.UserInfo, error) {
	if options == nil || options.User == "" {
		return nil, nil
	}
	raw, err := osu.Fetch[User](ctx, c, osu.RequestConfig{URL: c.generator.UserInfoURL(options)})
	if raw == nil || err != nil {
		return nil, err
	}
	return NewUserInfo(raw), nil
}

func (c *Client) GetDifficulty(ctx context.Context, options *model.DifficultyRequestOptions) (model.DifficultyAttributes, error) {
	if options == nil || options.BeatmapId == 0 {
		return nil, nil
	}
	mods := model.NewModCombination(options.Mods)
	body := map[string]any{}
	if !mods.IsEmpty() {
		body["mods"] = int(mods.Bitwise)
	}
	if options.Mode != nil {
		body["ruleset_id"] = int(*options.Mode)
	}
	result, err := osu.Fetch[struct {
		Attributes *DifficultyAttributes `json:"attributes"`
	}](ctx, c, osu.RequestConfig{
		URL:    c.generator.DifficultyURL(options.BeatmapId),
		Method: http.MethodPost,
		Data:   body,
	})
	if result == nil || result.Attributes == nil || err != nil {
		return nil, err
	}
	mode := model.GameModeOsu
	if options.Mode != nil {
		mode = *options.Mode
	}
	return NewDifficultyAttributes(mode, result.Attributes, mods), nil
}

func (c *Client) getUserScores(
	ctx context.Context,
	options *model.ScoreListRequestOptions,
	link func(userId int, options *model.ScoreListRequestOptions) string,
) ([]*model.ScoreInfo, error) {
	if options == nil || options.User == "" {
		return nil, nil
	}
	userId, err := c.getUserId(ctx, options.User)
	if userId == 0 || err != nil {
		return nil, err
	}
	return c.getScores(ctx, link(userId, options))
}

// getScores accepts both a bare score array and an object with a scores field.
func (c *Client) getScores(ctx context.Context, link string) ([]*model.ScoreInfo, error) {
	response, err := c.Request(ctx, osu.RequestConfig{URL: link})
	if err != nil || !response.HasData() {
		return nil, err
	}
	var raw []Score
	if bytes.HasPrefix(response.Data, []byte("[")) {
		err = json.Unmarshal(response.Data, &raw)
	} else {
		var wrapped struct {
			Scores []Score `json:"scores"`
		}
		err = json.Unmarshal(response.Data, &wrapped)
		raw = wrapped.Scores
	}
	if err != nil {
		return nil, fmt.Errorf("[bancho] failed to unmarshal scores of %s: %w", link, err)
	}
	scores := make([]*model.ScoreInfo, 0, len(raw))
	for i := range raw {
		scores = append(scores, NewScoreInfo(&raw[i]))
	}
	return scores, nil
}

// getUserId exists because score endpoints only accept numeric ids.
func (c *Client) getUserId(ctx context.Context, user string) (int, error) {
	return c.users.Resolve(ctx, user, func(ctx context.Context, user string) (*model.UserInfo, error) {
		return c.GetUser(ctx, &model.UserRequestOptions{User: user})
	})
}
