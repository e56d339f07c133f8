package zxcvbn

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"passmeter/internal/domain/entity"
)

// maxInputLength caps the runes handed to zxcvbn; its matchers are
// superlinear in the input length.
const maxInputLength = 100

const instant = "instant"

// Estimator produces the reference estimate shown next to the heuristic
// score.
type Estimator struct {
	userInputs []string
}

// NewEstimator takes words zxcvbn should treat as guessable, such as the
// product or user name.
func NewEstimator(userInputs ...string) Estimator {
	return Estimator{
		userInputs: userInputs,
	}
}

func (e Estimator) Estimate(password string) *entity.Reference {
	if password == "" {
		return &entity.Reference{CrackTime: instant}
	}

	if runes := []rune(password); len(runes) > maxInputLength {
		password = string(runes[:maxInputLength])
	}

	result := zxcvbn.PasswordStrength(password, e.userInputs)

	return &entity.Reference{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
