package gatari

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"golang.org/x/sync/errgroup"
)

var capabilities = osu.NewCapabilitySet(
	osu.CapabilityBeatmaps,
	osu.CapabilityLeaderboard,
	osu.CapabilityRecent,
	osu.CapabilityTop,
	osu.CapabilityFirsts,
	osu.CapabilityUsers,
)

var (
	_ osu.HasBeatmaps    = (*Client)(nil)
	_ osu.HasLeaderboard = (*Client)(nil)
	_ osu.HasRecent      = (*Client)(nil)
	_ osu.HasTop         = (*Client)(nil)
	_ osu.HasFirsts      = (*Client)(nil)
	_ osu.HasUsers       = (*Client)(nil)
)

// Client wraps the public Gatari API. No credentials are needed.
type Client struct {
	*osu.RequestClient
	generator *URLGenerator
	users     *osu.UserIdCache
}

func NewClient(opts ...osu.Option) *Client {
	return NewClientWithGenerator(NewURLGenerator(), opts...)
}

func NewClientWithGenerator(generator *URLGenerator, opts ...osu.Option) *Client {
	return &Client{
		RequestClient: osu.NewRequestClient("osu.gatari", opts...),
		generator:     generator,
		users:         osu.NewUserIdCache(),
	}
}

func (c *Client) Server() model.Server {
	return model.ServerGatari
}

func (c *Client) Capabilities() osu.CapabilitySet {
	return capabilities
}

func (c *Client) URLGenerator() *URLGenerator {
	return c.generator
}

func (c *Client) GetBeatmap(ctx context.Context, options *model.BeatmapRequestOptions) (*model.BeatmapInfo, error) {
	if options == nil || options.BeatmapId == 0 {
		return nil, nil
	}
	result, err := osu.Fetch[struct {
		Data []Beatmap `json:"data"`
	}](ctx, c, osu.RequestConfig{URL: c.generator.BeatmapInfoURL(options.BeatmapId)})
	if result == nil || len(result.Data) == 0 || err != nil {
		return nil, err
	}
	return NewBeatmapInfo(&result.Data[0]), nil
}

// GetUser combines the profile and the per-ruleset statistics, requested concurrently.
func (c *Client) GetUser(ctx context.Context, options *model.UserRequestOptions) (*model.UserInfo, error) {
	if options == nil || options.User == "" {
		return nil, nil
	}
	var (
		info *struct {
			Users []UserInfo `json:"users"`
		}
		stats *struct {
			Stats *UserStats `json:"stats"`
		}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = osu.Fetch[struct {
			Users []UserInfo `json:"users"`
		}](gctx, c, osu.RequestConfig{URL: c.generator.UserInfoURL(options.User)})
		return err
	})
	g.Go(func() (err error) {
		stats, err = osu.Fetch[struct {
			Stats *UserStats `json:"stats"`
		}](gctx, c, osu.RequestConfig{URL: c.generator.UserStatsURL(options)})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if info == nil || len(info.Users) == 0 || stats == nil || stats.Stats == nil {
		return nil, nil
	}
	return NewUserInfo(&info.Users[0], stats.Stats), nil
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
	return c.getScores(ctx, c.generator.BeatmapScoresURL(options, userId))
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

// getScores reads "data", then "scores", then a single "score" object.
func (c *Client) getScores(ctx context.Context, link string) ([]*model.ScoreInfo, error) {
	response, err := c.Request(ctx, osu.RequestConfig{URL: link})
	if err != nil || !response.HasData() {
		return nil, err
	}
	var payload struct {
		Data   []Score `json:"data"`
		Scores []Score `json:"scores"`
		Score  *Score  `json:"score"`
	}
	if err := json.Unmarshal(response.Data, &payload); err != nil {
		return nil, fmt.Errorf("[gatari] failed to unmarshal scores of %s: %w", link, err)
	}
	raw := payload.Data
	if len(raw) == 0 {
		raw = payload.Scores
	}
	if len(raw) == 0 && payload.Score != nil {
		raw = []Score{*payload.Score}
	}
	scores := make([]*model.ScoreInfo, 0, len(raw))
	for i := range raw {
		scores = append(scores, NewScoreInfo(&raw[i]))
	}
	return scores, nil
}

func (c *Client) getUserId(ctx context.Context, user string) (int, error) {
	return c.users.Resolve(ctx, user, func(ctx context.Context, user string) (*model.UserInfo, error) {
		return c.GetUser(ctx, &model.UserRequestOptions{User: user})
	})
}
