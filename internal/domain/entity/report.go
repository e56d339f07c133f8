package entity

// Report is everything a client renders for the current input.
type Report struct {
	Assessment

	CrackTime   string
	Reference   *Reference // nil when the reference estimator is disabled
	Suggestions []string
}

// Reference is an independent estimate from zxcvbn, returned for comparison
// with the heuristic score.
type Reference struct {
	Score     int // 0..4
	Entropy   float64
	CrackTime string
}
