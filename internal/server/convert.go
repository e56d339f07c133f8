package server

import (
	"passmeter/internal/domain/entity"
	"passmeter/internal/domain/value"
	"passmeter/pkg/rest"
)

// NewEvaluateResponse is the wire form of a report, shared with the CLI.
func NewEvaluateResponse(report entity.Report) rest.EvaluateResponse {
	return rest.EvaluateResponse{
		Score:       report.Score,
		Strength:    report.Strength().String(),
		MeterColor:  report.MeterColor().String(),
		Length:      report.Length,
		HasLower:    report.HasLower,
		HasUpper:    report.HasUpper,
		HasNumber:   report.HasNumber,
		HasSymbol:   report.HasSymbol,
		UniqueChars: report.UniqueChars,
		IsCommon:    report.IsCommon,
		EntropyBits: report.EntropyBits,
		CrackTime:   report.CrackTime,
		Criteria:    newRESTCriteria(report.Criteria()),
		Reference:   newRESTReference(report.Reference),
		Suggestions: report.Suggestions,
	}
}

func newRESTCriteria(criteria value.Criteria) rest.Criteria {
	return rest.Criteria{
		Length: criteria.Length.String(),
		Lower:  criteria.Lower.String(),
		Upper:  criteria.Upper.String(),
		Number: criteria.Number.String(),
		Symbol: criteria.Symbol.String(),
		Unique: criteria.Unique.String(),
	}
}

func newRESTReference(reference *entity.Reference) *rest.Reference {
	if reference == nil {
		return nil
	}

	return &rest.Reference{
		Score:     reference.Score,
		Entropy:   reference.Entropy,
		CrackTime: reference.CrackTime,
	}
}
