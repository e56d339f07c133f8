// Request and response bodies of the passmeter HTTP API.
package rest

type EvaluateRequest struct {
	Password string `json:"password"`
}

type Criteria struct {
	Length string `json:"length"`
	Lower  string `json:"lower"`
	Upper  string `json:"upper"`
	Number string `json:"number"`
	Symbol string `json:"symbol"`
	Unique string `json:"unique"`
}

// Reference is the zxcvbn estimate, present only when the server has it
// enabled.
type Reference struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crackTime"`
}

type EvaluateResponse struct {
	Score       int        `json:"score"`
	Strength    string     `json:"strength"`
	MeterColor  string     `json:"meterColor"`
	Length      int        `json:"length"`
	HasLower    bool       `json:"hasLower"`
	HasUpper    bool       `json:"hasUpper"`
	HasNumber   bool       `json:"hasNumber"`
	HasSymbol   bool       `json:"hasSymbol"`
	UniqueChars int        `json:"uniqueChars"`
	IsCommon    bool       `json:"isCommon"`
	EntropyBits int        `json:"entropyBits"`
	CrackTime   string     `json:"crackTime"`
	Criteria    Criteria   `json:"criteria"`
	Reference   *Reference `json:"reference,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

type CrackTimeResponse struct {
	Bits      float64 `json:"bits"`
	CrackTime string  `json:"crackTime"`
}

type SuggestionsRequest struct {
	Base  string `json:"base"`
	Count int    `json:"count" validate:"required,min=1,max=20"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type GenerateResponse struct {
	Password string `json:"password"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
