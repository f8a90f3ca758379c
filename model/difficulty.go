package model

// DifficultyAttributes is implemented by the attribute set of every ruleset.
type DifficultyAttributes interface {
	Mode() GameMode
	Base() *BaseDifficultyAttributes
}

type BaseDifficultyAttributes struct {
	StarRating float64
	MaxCombo   int
	Mods       ModCombination
}

func (a *BaseDifficultyAttributes) Base() *BaseDifficultyAttributes {
	return a
}

type StandardDifficultyAttributes struct {
	BaseDifficultyAttributes
	AimDifficulty        float64
	SpeedDifficulty      float64
	SpeedNoteCount       float64
	FlashlightDifficulty float64
	SliderFactor         float64
	ApproachRate         float64
	OverallDifficulty    float64
}

func (*StandardDifficultyAttributes) Mode() GameMode { return GameModeOsu }

type TaikoDifficultyAttributes struct {
	BaseDifficultyAttributes
	StaminaDifficulty float64
	RhythmDifficulty  float64
	ColourDifficulty  float64
	PeakDifficulty    float64
	GreatHitWindow    float64
}

func (*TaikoDifficultyAttributes) Mode() GameMode { return GameModeTaiko }

type CatchDifficultyAttributes struct {
	BaseDifficultyAttributes
	ApproachRate float64
}

func (*CatchDifficultyAttributes) Mode() GameMode { return GameModeCtb }

type ManiaDifficultyAttributes struct {
	BaseDifficultyAttributes
	GreatHitWindow  float64
	ScoreMultiplier float64
}

func (*ManiaDifficultyAttributes) Mode() GameMode { return GameModeMania }
