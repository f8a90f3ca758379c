package model

import (
	"strconv"
	"strings"
)

type Mod int

// Legacy mod bits as used by osu!stable and most private servers.
//
//goland:noinspection ALL
const (
	ModNoFail      Mod = 1 << 0
	ModEasy        Mod = 1 << 1
	ModTouchDevice Mod = 1 << 2
	ModHidden      Mod = 1 << 3
	ModHardRock    Mod = 1 << 4
	ModSuddenDeath Mod = 1 << 5
	ModDoubleTime  Mod = 1 << 6
	ModRelax       Mod = 1 << 7
	ModHalfTime    Mod = 1 << 8
	ModNightcore   Mod = 1 << 9
	ModFlashlight  Mod = 1 << 10
	ModAutoplay    Mod = 1 << 11
	ModSpunOut     Mod = 1 << 12
	ModAutopilot   Mod = 1 << 13
	ModPerfect     Mod = 1 << 14
	ModKey4        Mod = 1 << 15
	ModKey5        Mod = 1 << 16
	ModKey6        Mod = 1 << 17
	ModKey7        Mod = 1 << 18
	ModKey8        Mod = 1 << 19
	ModFadeIn      Mod = 1 << 20
	ModRandom      Mod = 1 << 21
	ModCinema      Mod = 1 << 22
	ModTarget      Mod = 1 << 23
	ModKey9        Mod = 1 << 24
	ModKeyCoop     Mod = 1 << 25
	ModKey1        Mod = 1 << 26
	ModKey3        Mod = 1 << 27
	ModKey2        Mod = 1 << 28
	ModScoreV2     Mod = 1 << 29
	ModMirror      Mod = 1 << 30
)

var modAcronyms = []struct {
	mod     Mod
	acronym string
}{
	{ModNoFail, "NF"}, {ModEasy, "EZ"}, {ModTouchDevice, "TD"}, {ModHidden, "HD"},
	{ModHardRock, "HR"}, {ModSuddenDeath, "SD"}, {ModDoubleTime, "DT"}, {ModRelax, "RX"},
	{ModHalfTime, "HT"}, {ModNightcore, "NC"}, {ModFlashlight, "FL"}, {ModAutoplay, "AT"},
	{ModSpunOut, "SO"}, {ModAutopilot, "AP"}, {ModPerfect, "PF"}, {ModKey4, "4K"},
	{ModKey5, "5K"}, {ModKey6, "6K"}, {ModKey7, "7K"}, {ModKey8, "8K"},
	{ModFadeIn, "FI"}, {ModRandom, "RD"}, {ModCinema, "CN"}, {ModTarget, "TP"},
	{ModKey9, "9K"}, {ModKeyCoop, "CO"}, {ModKey1, "1K"}, {ModKey3, "3K"},
	{ModKey2, "2K"}, {ModScoreV2, "V2"}, {ModMirror, "MR"},
}

// ModCombination is a set of mods. Acronyms are kept in bit order.
type ModCombination struct {
	Bitwise Mod
}

// NewModCombination parses either a legacy bitwise number ("72")
// or a string of two-letter acronyms ("HDDT", "+HD,DT").
// Unknown acronyms are ignored.
func NewModCombination(input string) ModCombination {
	input = strings.TrimSpace(input)
	if input == "" {
		return ModCombination{}
	}
	if bits, err := strconv.Atoi(input); err == nil {
		return ModCombination{Bitwise: Mod(bits)}
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == '+' || r == ',' || r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.ToUpper(input))

	var combination ModCombination
	for i := 0; i+2 <= len(cleaned); i += 2 {
		combination.Bitwise |= modFromAcronym(cleaned[i : i+2])
	}
	return combination
}

// ModsFromAcronyms builds a combination from a list such as ["HD", "DT"].
func ModsFromAcronyms(acronyms []string) ModCombination {
	return NewModCombination(strings.Join(acronyms, ""))
}

func modFromAcronym(acronym string) Mod {
	for _, m := range modAcronyms {
		if m.acronym == acronym {
			return m.mod
		}
	}
	return 0
}

func (c ModCombination) Has(mod Mod) bool {
	return c.Bitwise&mod == mod
}

func (c ModCombination) IsEmpty() bool {
	return c.Bitwise == 0
}

// List returns the two-letter acronym of every mod.
func (c ModCombination) List() []string {
	var result []string
	for _, m := range modAcronyms {
		if c.Bitwise&m.mod != 0 {
			result = append(result, m.acronym)
		}
	}
	return result
}

// Acronyms returns all acronyms joined together, "NM" for no mods.
func (c ModCombination) Acronyms() string {
	if c.IsEmpty() {
		return "NM"
	}
	return strings.Join(c.List(), "")
}

func (c ModCombination) String() string {
	return c.Acronyms()
}
