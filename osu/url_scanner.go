package osu

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
)

// IdPosition says which run of digits in a URL holds the wanted id.
type IdPosition int

//goland:noinspection ALL
const (
	FirstId IdPosition = iota
	LastId
)

// Dialect describes the URL shapes of one server.
// Every pattern except Base is a path suffix appended to Base; empty means unsupported.
type Dialect struct {
	Server model.Server
	Base   string

	User           string
	Beatmap        string
	Beatmapset     string
	BeatmapWithSet string
	Score          string

	BeatmapIdPosition    IdPosition
	BeatmapsetIdPosition IdPosition
	ScoreIdPosition      IdPosition
}

var rulesetParams = []string{"m", "mode"}

// URLScanner classifies text as links of a single server and extracts ids from them.
// It never performs network calls.
type URLScanner struct {
	dialect Dialect

	server         *regexp.Regexp
	user           *regexp.Regexp
	beatmap        *regexp.Regexp
	beatmapset     *regexp.Regexp
	beatmapWithSet *regexp.Regexp
	score          *regexp.Regexp
}

func NewURLScanner(dialect Dialect) *URLScanner {
	compile := func(suffix string) *regexp.Regexp {
		if suffix == "" {
			return nil
		}
		return regexp.MustCompile("^" + dialect.Base + suffix)
	}
	return &URLScanner{
		dialect:        dialect,
		server:         regexp.MustCompile("^" + dialect.Base),
		user:           compile(dialect.User),
		beatmap:        compile(dialect.Beatmap),
		beatmapset:     compile(dialect.Beatmapset),
		beatmapWithSet: compile(dialect.BeatmapWithSet),
		score:          compile(dialect.Score),
	}
}

func (s *URLScanner) Server() model.Server {
	return s.dialect.Server
}

func matches(re *regexp.Regexp, text string) bool {
	return re != nil && re.MatchString(text)
}

func hasAny(text string, predicate func(string) bool) bool {
	for _, token := range strings.Fields(text) {
		if predicate(token) {
			return true
		}
	}
	return false
}

func (s *URLScanner) IsServerURL(text string) bool {
	return matches(s.server, text)
}

func (s *URLScanner) IsUserURL(text string) bool {
	return matches(s.user, text)
}

// IsBeatmapURL also accepts beatmapset links pointing at one difficulty.
func (s *URLScanner) IsBeatmapURL(text string) bool {
	return matches(s.beatmap, text) || matches(s.beatmapWithSet, text)
}

func (s *URLScanner) IsBeatmapsetURL(text string) bool {
	return matches(s.beatmapset, text)
}

func (s *URLScanner) IsScoreURL(text string) bool {
	return matches(s.score, text)
}

// IsBeatmapURLWithRuleset reports a beatmap link that explicitly names its ruleset.
func (s *URLScanner) IsBeatmapURLWithRuleset(text string) bool {
	if !s.IsBeatmapURL(text) {
		return false
	}
	if u, err := parseURL(text); err == nil {
		for _, param := range rulesetParams {
			if u.Query().Get(param) != "" {
				return true
			}
		}
		_, ok := rulesetFromPath(u)
		return ok
	}
	return false
}

func (s *URLScanner) HasServerURL(text string) bool {
	return hasAny(text, s.IsServerURL)
}

func (s *URLScanner) HasUserURL(text string) bool {
	return hasAny(text, s.IsUserURL)
}

func (s *URLScanner) HasBeatmapURL(text string) bool {
	return hasAny(text, s.IsBeatmapURL)
}

func (s *URLScanner) HasBeatmapsetURL(text string) bool {
	return hasAny(text, s.IsBeatmapsetURL)
}

func (s *URLScanner) HasScoreURL(text string) bool {
	return hasAny(text, s.IsScoreURL)
}

func (s *URLScanner) GetBeatmapIdFromURL(text string) int {
	return extractId(text, s.IsBeatmapURL, s.dialect.BeatmapIdPosition)
}

func (s *URLScanner) GetBeatmapsetIdFromURL(text string) int {
	return extractId(text, s.IsBeatmapsetURL, s.dialect.BeatmapsetIdPosition)
}

func (s *URLScanner) GetScoreIdFromURL(text string) int {
	return extractId(text, s.IsScoreURL, s.dialect.ScoreIdPosition)
}

// GetUserFromURL returns the user segment (id or name) of a user link.
func (s *URLScanner) GetUserFromURL(text string) string {
	if !s.IsUserURL(text) {
		return ""
	}
	u, err := parseURL(text)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if (segment == "u" || segment == "users") && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}

// GetRulesetIdFromURL infers the ruleset of a server link.
// ok is false when text is not a link of this server at all.
func (s *URLScanner) GetRulesetIdFromURL(text string) (mode model.GameMode, ok bool) {
	if !s.IsServerURL(text) {
		return model.GameModeOsu, false
	}
	u, err := parseURL(text)
	if err != nil {
		return model.GameModeOsu, true
	}
	for _, param := range rulesetParams {
		if value := u.Query().Get(param); value != "" {
			if mode, err := model.ParseGameMode(value); err == nil {
				return mode, true
			}
			if mode, ok := rulesetKeyword(value); ok {
				return mode, true
			}
		}
	}
	if mode, ok := rulesetFromPath(u); ok {
		return mode, true
	}
	return model.GameModeOsu, true
}

// rulesetFromPath looks for a ruleset name as the first fragment segment ("#taiko/200")
// or as a whole path segment ("/users/2/mania", "/scores/taiko/1"). User names are skipped.
func rulesetFromPath(u *url.URL) (model.GameMode, bool) {
	fragment, _, _ := strings.Cut(u.Fragment, "/")
	if mode, ok := rulesetKeyword(fragment); ok {
		return mode, true
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 1; i < len(segments); i++ {
		if previous := segments[i-1]; previous == "u" || previous == "users" {
			continue
		}
		if mode, ok := rulesetKeyword(segments[i]); ok {
			return mode, true
		}
	}
	return model.GameModeOsu, false
}

func rulesetKeyword(text string) (model.GameMode, bool) {
	switch strings.ToLower(text) {
	case "osu":
		return model.GameModeOsu, true
	case "taiko":
		return model.GameModeTaiko, true
	case "fruits":
		return model.GameModeCtb, true
	case "mania":
		return model.GameModeMania, true
	}
	return model.GameModeOsu, false
}

func extractId(text string, classify func(string) bool, position IdPosition) int {
	if id, ok := utils.ParseRawId(text); ok {
		return id
	}
	if !classify(text) {
		return 0
	}
	target := text
	if u, err := parseURL(text); err == nil {
		target = u.Path + "#" + u.Fragment
	}
	if position == FirstId {
		return utils.FirstNumber(target)
	}
	return utils.LastNumber(target)
}

func parseURL(text string) (*url.URL, error) {
	if !strings.Contains(text, "://") {
		text = "https://" + text
	}
	return url.Parse(text)
}
