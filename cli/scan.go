package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kionell/osu-api/osu/factory"
)

// Scan reports every server link found in text. It never touches the network.
func Scan(w io.Writer, f *factory.Factory, text string) error {
	found := false
	for _, token := range strings.Fields(text) {
		server, ok := f.GetServerName(token)
		if !ok {
			continue
		}
		scanner, err := f.CreateURLScanner(server.String())
		if err != nil {
			return err
		}
		found = true
		fmt.Fprintf(w, "%s\n  Server:     %s\n", token, server)
		switch {
		case scanner.IsScoreURL(token):
			fmt.Fprintf(w, "  Score:      %d\n", scanner.GetScoreIdFromURL(token))
		case scanner.IsBeatmapURL(token):
			fmt.Fprintf(w, "  Beatmap:    %d\n", scanner.GetBeatmapIdFromURL(token))
			if set := scanner.GetBeatmapsetIdFromURL(token); set != 0 {
				fmt.Fprintf(w, "  Beatmapset: %d\n", set)
			}
		case scanner.IsBeatmapsetURL(token):
			fmt.Fprintf(w, "  Beatmapset: %d\n", scanner.GetBeatmapsetIdFromURL(token))
		case scanner.IsUserURL(token):
			fmt.Fprintf(w, "  User:       %s\n", scanner.GetUserFromURL(token))
		}
		if mode, ok := scanner.GetRulesetIdFromURL(token); ok {
			fmt.Fprintf(w, "  Ruleset:    %s\n", mode)
		}
	}
	if !found {
		fmt.Fprintln(w, "No server links found")
	}
	return nil
}
