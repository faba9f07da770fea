package apperrors

import "errors"

// ErrParse indicates that a conversion query does not match the expected grammar.
var ErrParse = errors.New("invalid query")

// ErrNetwork indicates that the exchange-rate API could not be reached,
// timed out, or answered with a non-2xx status.
var ErrNetwork = errors.New("exchange rate API unreachable")

// ErrInvalidCurrency indicates that the API rejected a currency code.
var ErrInvalidCurrency = errors.New("unknown currency")

// ErrMalformedResponse indicates that the API answered with a payload
// that is not valid JSON or lacks the rates table.
var ErrMalformedResponse = errors.New("unexpected API response")

// Exit codes per error kind, for shell use.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitParse             = 2
	ExitNetwork           = 3
	ExitInvalidCurrency   = 4
	ExitMalformedResponse = 5
)

// ExitCode maps an error to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrParse):
		return ExitParse
	case errors.Is(err, ErrNetwork):
		return ExitNetwork
	case errors.Is(err, ErrInvalidCurrency):
		return ExitInvalidCurrency
	case errors.Is(err, ErrMalformedResponse):
		return ExitMalformedResponse
	default:
		return ExitFailure
	}
}
