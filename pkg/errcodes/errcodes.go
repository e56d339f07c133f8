package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidEntropyBits    failure.ErrorCode = "InvalidEntropyBits"
	InvalidPassword       failure.ErrorCode = "InvalidPassword"
	InvalidSuggestionBase failure.ErrorCode = "InvalidSuggestionBase"
	SuggestionsExhausted  failure.ErrorCode = "SuggestionsExhausted"
)
