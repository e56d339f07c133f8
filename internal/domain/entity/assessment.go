package entity

import "passmeter/internal/domain/value"

// Assessment is the result of evaluating one password. It carries no
// identity and is recomputed from the input on every call.
type Assessment struct {
	Score       int // 0..100
	Length      int
	HasLower    bool
	HasUpper    bool
	HasNumber   bool
	HasSymbol   bool
	UniqueChars int
	IsCommon    bool
	EntropyBits int
}

func (a Assessment) Strength() value.Strength {
	return value.StrengthFromScore(a.Score)
}

func (a Assessment) MeterColor() value.MeterColor {
	return value.MeterColorFromScore(a.Score)
}

// Criteria builds the checklist indicators for the assessment.
func (a Assessment) Criteria() value.Criteria {
	return value.Criteria{
		Length: value.LengthState(a.Length),
		Lower:  value.FlagState(a.HasLower),
		Upper:  value.FlagState(a.HasUpper),
		Number: value.FlagState(a.HasNumber),
		Symbol: value.FlagState(a.HasSymbol),
		Unique: value.UniqueState(a.IsCommon, a.UniqueChars, a.Length),
	}
}
