package value

// CriterionState is the indicator state of one checklist row.
type CriterionState string

const (
	CriterionOK   CriterionState = "ok"
	CriterionWarn CriterionState = "warn"
	CriterionBad  CriterionState = "bad"
)

func (s CriterionState) String() string {
	return string(s)
}

// Criteria holds the checklist rendered under the meter.
type Criteria struct {
	Length CriterionState
	Lower  CriterionState
	Upper  CriterionState
	Number CriterionState
	Symbol CriterionState
	Unique CriterionState
}

const (
	lengthOK       = 12
	lengthWarn     = 8
	uniqueRequired = 8
)

func LengthState(length int) CriterionState {
	switch {
	case length >= lengthOK:
		return CriterionOK
	case length >= lengthWarn:
		return CriterionWarn
	default:
		return CriterionBad
	}
}

func FlagState(present bool) CriterionState {
	if present {
		return CriterionOK
	}

	return CriterionBad
}

// UniqueState flags common passwords as bad before looking at distinct
// characters.
func UniqueState(isCommon bool, uniqueChars, length int) CriterionState {
	switch {
	case isCommon:
		return CriterionBad
	case uniqueChars >= min(uniqueRequired, length):
		return CriterionOK
	default:
		return CriterionWarn
	}
}
