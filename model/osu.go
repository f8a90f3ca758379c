package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type BeatmapStatus int

//goland:noinspection ALL
const (
	StatusGraveyard BeatmapStatus = iota - 2
	StatusWIP
	StatusPending
	StatusRanked
	StatusApproved
	StatusQualified
	StatusLoved
)

func (s BeatmapStatus) String() string {
	switch s {
	case StatusGraveyard:
		return "graveyard"
	case StatusWIP:
		return "wip"
	case StatusPending:
		return "pending"
	case StatusRanked:
		return "ranked"
	case StatusApproved:
		return "approved"
	case StatusQualified:
		return "qualified"
	case StatusLoved:
		return "loved"
	}
	return "unknown"
}

// GameMode is the ruleset a beatmap or score belongs to.
type GameMode int

//goland:noinspection ALL
const (
	GameModeOsu GameMode = iota
	GameModeTaiko
	GameModeCtb
	GameModeMania
)

var ErrUnknownGameMode = errors.New("unknown game mode")

// ShortName is the ruleset name used in osu! URLs and API paths.
func (m GameMode) ShortName() string {
	switch m {
	case GameModeTaiko:
		return "taiko"
	case GameModeCtb:
		return "fruits"
	case GameModeMania:
		return "mania"
	}
	return "osu"
}

func (m GameMode) String() string {
	return m.ShortName()
}

func (m GameMode) Valid() bool {
	return m >= GameModeOsu && m <= GameModeMania
}

// Ptr is a helper for optional mode fields of request options.
func (m GameMode) Ptr() *GameMode {
	return &m
}

// ParseGameMode accepts ruleset names, their aliases and numeric ids.
func ParseGameMode(input string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "standard", "std", "osu", "0":
		return GameModeOsu, nil
	case "taiko", "1":
		return GameModeTaiko, nil
	case "ctb", "catch", "fruits", "2":
		return GameModeCtb, nil
	case "mania", "3":
		return GameModeMania, nil
	}
	return GameModeOsu, fmt.Errorf("%w: %q", ErrUnknownGameMode, input)
}

type ScoreRank string

//goland:noinspection ALL
const (
	RankF  ScoreRank = "F"
	RankD  ScoreRank = "D"
	RankC  ScoreRank = "C"
	RankB  ScoreRank = "B"
	RankA  ScoreRank = "A"
	RankS  ScoreRank = "S"
	RankSH ScoreRank = "SH"
	RankX  ScoreRank = "X"
	RankXH ScoreRank = "XH"
)

// Server identifies an osu! server implementation.
type Server int

//goland:noinspection ALL
const (
	ServerBancho Server = iota
	ServerGatari
	ServerAkatsuki
	ServerRipple
)

var ErrUnknownServer = errors.New("this server is not found or not supported")

func (s Server) String() string {
	switch s {
	case ServerBancho:
		return "Bancho"
	case ServerGatari:
		return "Gatari"
	case ServerAkatsuki:
		return "Akatsuki"
	case ServerRipple:
		return "Ripple"
	}
	return "Server(" + strconv.Itoa(int(s)) + ")"
}

// ParseServer resolves a server name. An empty name is the primary server.
func ParseServer(name string) (Server, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bancho", "osu", "ppy":
		return ServerBancho, nil
	case "gatari":
		return ServerGatari, nil
	case "akatsuki":
		return ServerAkatsuki, nil
	case "ripple":
		return ServerRipple, nil
	}
	return ServerBancho, fmt.Errorf("%w: %q", ErrUnknownServer, name)
}
