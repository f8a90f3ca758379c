package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kionell/osu-api/model"
)

func printUser(w io.Writer, u *model.UserInfo) {
	fmt.Fprintf(w, "%s (#%d) [%s]\n", u.Username, u.Id, u.CountryCode)
	fmt.Fprintf(w, "  Mode:        %s\n", u.Playmode)
	fmt.Fprintf(w, "  Rank:        #%d (country #%d)\n", u.GlobalRank, u.CountryRank)
	fmt.Fprintf(w, "  PP:          %.2f\n", u.TotalPerformance)
	fmt.Fprintf(w, "  Accuracy:    %.2f%%\n", u.Accuracy*100)
	fmt.Fprintf(w, "  Level:       %d (%d%%)\n", u.Level.Current, u.Level.Progress)
	fmt.Fprintf(w, "  Play count:  %d\n", u.Playcount)
	fmt.Fprintf(w, "  Grades:      XH %d  X %d  SH %d  S %d  A %d\n",
		u.Grades[model.RankXH], u.Grades[model.RankX], u.Grades[model.RankSH], u.Grades[model.RankS], u.Grades[model.RankA])
	if len(u.PreviousUsernames) > 0 {
		fmt.Fprintf(w, "  Also known:  %s\n", strings.Join(u.PreviousUsernames, ", "))
	}
}

func printBeatmap(w io.Writer, b *model.BeatmapInfo) {
	fmt.Fprintf(w, "%s - %s [%s] by %s\n", b.Artist, b.Title, b.Version, b.Creator)
	fmt.Fprintf(w, "  Beatmap:  %d (set %d) %s\n", b.Id, b.BeatmapsetId, b.Status)
	fmt.Fprintf(w, "  Mode:     %s\n", b.RulesetId)
	fmt.Fprintf(w, "  Stars:    %.2f  Max combo: %d\n", b.StarRating, b.MaxCombo)
	fmt.Fprintf(w, "  CS %.1f  AR %.1f  OD %.1f  HP %.1f  BPM %.0f\n",
		b.CircleSize, b.ApproachRate, b.OverallDifficulty, b.DrainRate, b.BPMMode)
	if b.HashMD5 != "" {
		fmt.Fprintf(w, "  MD5:      %s\n", b.HashMD5)
	}
}

func printScore(w io.Writer, index int, s *model.ScoreInfo) {
	title := fmt.Sprintf("beatmap %d", s.BeatmapId)
	if s.Beatmap != nil && s.Beatmap.Title != "" {
		title = fmt.Sprintf("%s - %s [%s]", s.Beatmap.Artist, s.Beatmap.Title, s.Beatmap.Version)
	}
	fmt.Fprintf(w, "%2d. %s +%s\n", index, title, s.Mods.Acronyms())
	player := s.Username
	if player == "" {
		player = fmt.Sprintf("#%d", s.UserId)
	}
	fmt.Fprintf(w, "    %s  %s  %.2fpp  %.2f%%  %dx  %d", player, s.Rank, s.PP, s.Accuracy*100, s.MaxCombo, s.TotalScore)
	if !s.Date.IsZero() {
		fmt.Fprintf(w, "  %s", s.Date.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}

func printScores(w io.Writer, scores []*model.ScoreInfo) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores found")
		return
	}
	for i, s := range scores {
		printScore(w, i+1, s)
	}
}

func printDifficulty(w io.Writer, attributes model.DifficultyAttributes) {
	base := attributes.Base()
	fmt.Fprintf(w, "%s +%s\n", attributes.Mode(), base.Mods.Acronyms())
	fmt.Fprintf(w, "  Stars:      %.2f\n", base.StarRating)
	fmt.Fprintf(w, "  Max combo:  %d\n", base.MaxCombo)
	switch a := attributes.(type) {
	case *model.StandardDifficultyAttributes:
		fmt.Fprintf(w, "  Aim:        %.2f\n", a.AimDifficulty)
		fmt.Fprintf(w, "  Speed:      %.2f (%.1f notes)\n", a.SpeedDifficulty, a.SpeedNoteCount)
		fmt.Fprintf(w, "  Flashlight: %.2f\n", a.FlashlightDifficulty)
		fmt.Fprintf(w, "  AR %.2f  OD %.2f\n", a.ApproachRate, a.OverallDifficulty)
	case *model.TaikoDifficultyAttributes:
		fmt.Fprintf(w, "  Stamina:    %.2f\n", a.StaminaDifficulty)
		fmt.Fprintf(w, "  Rhythm:     %.2f\n", a.RhythmDifficulty)
		fmt.Fprintf(w, "  Colour:     %.2f\n", a.ColourDifficulty)
		fmt.Fprintf(w, "  Hit window: %.2f\n", a.GreatHitWindow)
	case *model.CatchDifficultyAttributes:
		fmt.Fprintf(w, "  AR %.2f\n", a.ApproachRate)
	case *model.ManiaDifficultyAttributes:
		fmt.Fprintf(w, "  Hit window: %.2f  Multiplier: %.2f\n", a.GreatHitWindow, a.ScoreMultiplier)
	}
}
