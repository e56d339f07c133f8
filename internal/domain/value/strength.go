package value

// Strength is the human label shown next to the meter.
type Strength string

const (
	StrengthVeryWeak   Strength = "Very Weak"
	StrengthWeak       Strength = "Weak"
	StrengthModerate   Strength = "Moderate"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very Strong"
)

func (s Strength) String() string {
	return string(s)
}

// StrengthFromScore maps a 0..100 score onto the label ladder.
func StrengthFromScore(score int) Strength {
	switch {
	case score >= 80:
		return StrengthVeryStrong
	case score >= 60:
		return StrengthStrong
	case score >= 40:
		return StrengthModerate
	case score >= 20:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}

// MeterColor is the fill colour of the strength bar.
type MeterColor string

const (
	MeterColorRed    MeterColor = "red"
	MeterColorYellow MeterColor = "yellow"
	MeterColorGreen  MeterColor = "green"
)

func (c MeterColor) String() string {
	return string(c)
}

func MeterColorFromScore(score int) MeterColor {
	switch {
	case score < 30:
		return MeterColorRed
	case score < 60:
		return MeterColorYellow
	default:
		return MeterColorGreen
	}
}
