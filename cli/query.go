package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"github.com/kionell/osu-api/osu/factory"
)

// ScoreKind selects one of the per-user score lists.
type ScoreKind int

//goland:noinspection ALL
const (
	ScoreKindBest ScoreKind = iota
	ScoreKindRecent
	ScoreKindFirsts
)

func ShowUser(ctx context.Context, w io.Writer, f *factory.Factory, server string, options *model.UserRequestOptions) error {
	client, err := factory.Capable[osu.HasUsers](f, server, osu.CapabilityUsers)
	if err != nil {
		return err
	}
	user, err := client.GetUser(ctx, options)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %q not found on %s", options.User, client.Server())
	}
	printUser(w, user)
	return nil
}

func ShowUserScores(ctx context.Context, w io.Writer, f *factory.Factory, server string, kind ScoreKind, options *model.ScoreListRequestOptions, order *model.SortingType) error {
	var (
		scores []*model.ScoreInfo
		err    error
	)
	switch kind {
	case ScoreKindBest:
		var client osu.HasTop
		if client, err = factory.Capable[osu.HasTop](f, server, osu.CapabilityTop); err == nil {
			scores, err = client.GetUserBest(ctx, options)
		}
	case ScoreKindRecent:
		var client osu.HasRecent
		if client, err = factory.Capable[osu.HasRecent](f, server, osu.CapabilityRecent); err == nil {
			scores, err = client.GetUserRecent(ctx, options)
		}
	case ScoreKindFirsts:
		var client osu.HasFirsts
		if client, err = factory.Capable[osu.HasFirsts](f, server, osu.CapabilityFirsts); err == nil {
			scores, err = client.GetUserFirsts(ctx, options)
		}
	default:
		err = fmt.Errorf("unknown score kind %d", kind)
	}
	if err != nil {
		return err
	}
	if order != nil {
		osu.SortUserBest(scores, *order)
	}
	printScores(w, scores)
	return nil
}

// ShowBeatmap accepts a beatmap link, a bare id or free-text search words.
func ShowBeatmap(ctx context.Context, w io.Writer, f *factory.Factory, server string, query string, options *model.BeatmapRequestOptions) error {
	client, err := factory.Capable[osu.HasBeatmaps](f, server, osu.CapabilityBeatmaps)
	if err != nil {
		return err
	}
	scanner, err := f.CreateURLScanner(client.Server().String())
	if err != nil {
		return err
	}
	if options.Hash == "" {
		if id := scanner.GetBeatmapIdFromURL(query); id != 0 {
			options.BeatmapId = id
		} else {
			options.Search = query
		}
	}
	if options.Mode == nil {
		if mode, ok := scanner.GetRulesetIdFromURL(query); ok && scanner.IsBeatmapURLWithRuleset(query) {
			options.Mode = &mode
		}
	}
	beatmap, err := client.GetBeatmap(ctx, options)
	if err != nil {
		return err
	}
	if beatmap == nil {
		return fmt.Errorf("beatmap %q not found on %s", query, client.Server())
	}
	printBeatmap(w, beatmap)
	generator, err := f.CreateURLGenerator(client.Server().String())
	if err == nil {
		fmt.Fprintf(w, "  Link:     %s\n", generator.BeatmapURL(beatmap.Id, &beatmap.RulesetId))
		fmt.Fprintf(w, "  Cover:    %s\n", generator.BeatmapCoverURL(beatmap.BeatmapsetId))
	}
	return nil
}

func ShowLeaderboard(ctx context.Context, w io.Writer, f *factory.Factory, server string, beatmap string, options *model.LeaderboardRequestOptions) error {
	client, err := factory.Capable[osu.HasLeaderboard](f, server, osu.CapabilityLeaderboard)
	if err != nil {
		return err
	}
	if options.BeatmapId, err = beatmapId(f, client.Server(), beatmap); err != nil {
		return err
	}
	scores, err := client.GetLeaderboard(ctx, options)
	if err != nil {
		return err
	}
	printScores(w, scores)
	return nil
}

func ShowScore(ctx context.Context, w io.Writer, f *factory.Factory, server string, score string, options *model.ScoreRequestOptions) error {
	client, err := factory.Capable[osu.HasScores](f, server, osu.CapabilityScores)
	if err != nil {
		return err
	}
	scanner, err := f.CreateURLScanner(client.Server().String())
	if err != nil {
		return err
	}
	options.ScoreId = int64(scanner.GetScoreIdFromURL(score))
	if options.ScoreId == 0 {
		return fmt.Errorf("%q is not a score id or link", score)
	}
	if options.Mode == nil && scanner.IsScoreURL(score) {
		options.Mode = scoreRuleset(score)
	}
	result, err := client.GetScore(ctx, options)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("score %d not found on %s", options.ScoreId, client.Server())
	}
	printScore(w, 1, result)
	return nil
}

func ShowDifficulty(ctx context.Context, w io.Writer, f *factory.Factory, server string, beatmap string, options *model.DifficultyRequestOptions) error {
	client, err := factory.Capable[osu.HasAttributes](f, server, osu.CapabilityAttributes)
	if err != nil {
		return err
	}
	if options.BeatmapId, err = beatmapId(f, client.Server(), beatmap); err != nil {
		return err
	}
	attributes, err := client.GetDifficulty(ctx, options)
	if err != nil {
		return err
	}
	if attributes == nil {
		return fmt.Errorf("no difficulty attributes for beatmap %d", options.BeatmapId)
	}
	printDifficulty(w, attributes)
	return nil
}

func beatmapId(f *factory.Factory, server model.Server, beatmap string) (int, error) {
	scanner, err := f.CreateURLScanner(server.String())
	if err != nil {
		return 0, err
	}
	id := scanner.GetBeatmapIdFromURL(beatmap)
	if id == 0 {
		return 0, fmt.Errorf("%q is not a beatmap id or link", beatmap)
	}
	return id, nil
}

// scoreRuleset reads the ruleset segment of legacy links like /scores/taiko/123.
func scoreRuleset(link string) *model.GameMode {
	segments := strings.Split(link, "/")
	for i, segment := range segments {
		if segment != "scores" || i+2 >= len(segments) {
			continue
		}
		if mode, err := model.ParseGameMode(segments[i+1]); err == nil {
			return &mode
		}
	}
	return nil
}
