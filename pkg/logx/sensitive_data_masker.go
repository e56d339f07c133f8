package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?is)(Authorization:\\s*Bearer ).+?(\r)"),
	// JSON keys are matched the way the decoder matches them: any case, any
	// whitespace around the colon.
	regexp.MustCompile(`(?i)("(?:password|base)"\s*:\s*")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`(?i)("suggestions"\s*:\s*\[)(?:[^"\]]|"(?:[^"\\]|\\.)*")*(\])`),
}

// MaskAndTruncate masks input before cutting it to maxLen bytes, so a cut
// inside a secret never leaves the secret unterminated and unmasked.
// maxLen <= 0 keeps the whole input.
func MaskAndTruncate(masker SensitiveDataMaskerInterface, input []byte, maxLen int) []byte {
	masked := masker.Mask(input)

	if maxLen > 0 && len(masked) > maxLen {
		masked = masked[:maxLen]
	}

	return masked
}

// SensitiveDataMasker hides passwords, suggestion seeds and generated
// suggestions in request and response dumps.
type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
