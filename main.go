package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kionell/osu-api/base_service"
	cli2 "github.com/kionell/osu-api/cli"
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu/factory"
	"github.com/urfave/cli/v3"
)

// Flags are built per command since they keep parsed values.
func modeFlag() cli.Flag {
	return &cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "ruleset: osu, taiko, fruits or mania"}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "maximum number of scores"}
}

func modsFlag() cli.Flag {
	return &cli.StringFlag{Name: "mods", Usage: "mod acronyms like HDDT or a bitwise number"}
}

func withFactory(action func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		f, err := cli2.NewFactory()
		if err != nil {
			return err
		}
		return action(ctx, cmd, f)
	}
}

func scoreListCommand(name, usage string, kind cli2.ScoreKind) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<user>",
		Flags: []cli.Flag{
			modeFlag(), limitFlag(),
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "number of scores to skip"},
			&cli.BoolFlag{Name: "fails", Usage: "include failed scores"},
			&cli.StringFlag{Name: "sort", Usage: "sort by pp, stars, date, acc, bpm or score; prefix with - to reverse"},
		},
		Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
			user := cmd.Args().First()
			if user == "" {
				return fmt.Errorf("no user specified")
			}
			mode, err := cli2.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}
			var order *model.SortingType
			if cmd.String("sort") != "" {
				sorting, err := model.ParseSortingType(cmd.String("sort"))
				if err != nil {
					return err
				}
				order = &sorting
			}
			options := &model.ScoreListRequestOptions{
				User:         user,
				Mode:         mode,
				Limit:        int(cmd.Int("limit")),
				Offset:       int(cmd.Int("offset")),
				IncludeFails: cmd.Bool("fails"),
			}
			server := cli2.ServerFor(f, cmd.String("server"), user)
			return cli2.ShowUserScores(ctx, os.Stdout, f, server, kind, options, order)
		}),
	}
}

func main() {
	base_service.CreateLog()
	defer base_service.CloseLog()
	ctx, cancel := base_service.CreateSignalCancelContext()
	defer cancel()

	cmd := &cli.Command{
		Name:                  "osu-api",
		Usage:                 "Query osu! servers from the command line",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Usage: "bancho or gatari; detected from links when omitted"},
		},
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Generate config file",
				Action: func(context.Context, *cli.Command) error {
					err := cli2.GenerateConfig(base_service.ConfigPath)
					if err != nil {
						return err
					}
					fmt.Println("Config file generated successfully")
					return nil
				},
			},
			{
				Name:  "login",
				Usage: "Authorize against Bancho with the configured client credentials",
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					return cli2.Login(ctx, f)
				}),
				Commands: []*cli.Command{
					{
						Name:  "link",
						Usage: "Print the authorization code link",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "redirect", Aliases: []string{"r"}, Usage: "redirect URI, defaults to the configured one"},
							&cli.StringFlag{Name: "state", Usage: "opaque state echoed back to the redirect URI"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							link, err := cli2.LoginLink(cmd.String("redirect"), cmd.String("state"))
							if err != nil {
								return err
							}
							fmt.Println(link)
							return nil
						},
					},
				},
			},
			{
				Name:      "user",
				Usage:     "Show a user profile",
				ArgsUsage: "<name|id|link>",
				Flags:     []cli.Flag{modeFlag()},
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					user := cmd.Args().First()
					if user == "" {
						return fmt.Errorf("no user specified")
					}
					mode, err := cli2.ParseMode(cmd.String("mode"))
					if err != nil {
						return err
					}
					server := cli2.ServerFor(f, cmd.String("server"), user)
					scanner, err := f.CreateURLScanner(server)
					if err != nil {
						return err
					}
					if name := scanner.GetUserFromURL(user); name != "" {
						user = name
					}
					return cli2.ShowUser(ctx, os.Stdout, f, server, &model.UserRequestOptions{User: user, Mode: mode})
				}),
			},
			scoreListCommand("best", "Show the top scores of a user", cli2.ScoreKindBest),
			scoreListCommand("recent", "Show the recent scores of a user", cli2.ScoreKindRecent),
			scoreListCommand("firsts", "Show the first place scores of a user", cli2.ScoreKindFirsts),
			{
				Name:      "beatmap",
				Usage:     "Look a beatmap up by id, link or search text",
				ArgsUsage: "<id|link|search...>",
				Flags: []cli.Flag{
					modeFlag(),
					&cli.StringFlag{Name: "hash", Usage: "beatmap MD5 checksum"},
				},
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					query := strings.Join(cmd.Args().Slice(), " ")
					if query == "" && cmd.String("hash") == "" {
						return fmt.Errorf("no beatmap specified")
					}
					mode, err := cli2.ParseMode(cmd.String("mode"))
					if err != nil {
						return err
					}
					options := &model.BeatmapRequestOptions{Hash: cmd.String("hash"), Mode: mode}
					server := cli2.ServerFor(f, cmd.String("server"), query)
					return cli2.ShowBeatmap(ctx, os.Stdout, f, server, query, options)
				}),
			},
			{
				Name:      "leaderboard",
				Usage:     "Show the top scores of a beatmap",
				ArgsUsage: "<beatmap>",
				Flags: []cli.Flag{
					modeFlag(), modsFlag(), limitFlag(),
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "only scores of this user"},
				},
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					beatmap := cmd.Args().First()
					mode, err := cli2.ParseMode(cmd.String("mode"))
					if err != nil {
						return err
					}
					options := &model.LeaderboardRequestOptions{
						User:  cmd.String("user"),
						Mode:  mode,
						Mods:  cmd.String("mods"),
						Limit: int(cmd.Int("limit")),
					}
					server := cli2.ServerFor(f, cmd.String("server"), beatmap)
					return cli2.ShowLeaderboard(ctx, os.Stdout, f, server, beatmap, options)
				}),
			},
			{
				Name:      "score",
				Usage:     "Show a single score",
				ArgsUsage: "<id|link>",
				Flags:     []cli.Flag{modeFlag()},
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					score := cmd.Args().First()
					mode, err := cli2.ParseMode(cmd.String("mode"))
					if err != nil {
						return err
					}
					server := cli2.ServerFor(f, cmd.String("server"), score)
					return cli2.ShowScore(ctx, os.Stdout, f, server, score, &model.ScoreRequestOptions{Mode: mode})
				}),
			},
			{
				Name:      "difficulty",
				Usage:     "Show difficulty attributes of a beatmap",
				ArgsUsage: "<beatmap>",
				Flags:     []cli.Flag{modeFlag(), modsFlag()},
				Action: withFactory(func(ctx context.Context, cmd *cli.Command, f *factory.Factory) error {
					beatmap := cmd.Args().First()
					mode, err := cli2.ParseMode(cmd.String("mode"))
					if err != nil {
						return err
					}
					options := &model.DifficultyRequestOptions{Mode: mode, Mods: cmd.String("mods")}
					server := cli2.ServerFor(f, cmd.String("server"), beatmap)
					return cli2.ShowDifficulty(ctx, os.Stdout, f, server, beatmap, options)
				}),
			},
			{
				Name:      "scan",
				Usage:     "Detect server links in text without network requests",
				ArgsUsage: "<text...>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return cli2.Scan(os.Stdout, factory.New(), strings.Join(cmd.Args().Slice(), " "))
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
