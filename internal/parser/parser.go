package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
	"github.com/theyuvrajyadav/currency-converter/internal/model"
)

// Parse turns a conversion query of the form
//
//	<amount> <code> (to|in) <code>
//
// into a ConversionRequest. The connector word and both currency codes are
// case-insensitive; codes come back uppercased. Any 3-letter alphabetic
// token is accepted as a code - validity against real currencies is the
// API's job.
func Parse(raw string) (model.ConversionRequest, error) {
	var req model.ConversionRequest

	tokens := strings.Fields(raw)
	if len(tokens) != 4 {
		return req, fmt.Errorf("%w: expected '<amount> <code> to <code>', got %d token(s)",
			apperrors.ErrParse, len(tokens))
	}

	amount, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return req, fmt.Errorf("%w: %q is not a number", apperrors.ErrParse, tokens[0])
	}
	if amount < 0 {
		return req, fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrParse, tokens[0])
	}

	from, ok := currencyCode(tokens[1])
	if !ok {
		return req, fmt.Errorf("%w: %q is not a 3-letter currency code", apperrors.ErrParse, tokens[1])
	}

	switch strings.ToLower(tokens[2]) {
	case "to", "in":
	default:
		return req, fmt.Errorf("%w: expected 'to' or 'in', got %q", apperrors.ErrParse, tokens[2])
	}

	to, ok := currencyCode(tokens[3])
	if !ok {
		return req, fmt.Errorf("%w: %q is not a 3-letter currency code", apperrors.ErrParse, tokens[3])
	}

	req.Amount = amount
	req.From = from
	req.To = to
	return req, nil
}

func currencyCode(token string) (string, bool) {
	if len(token) != 3 {
		return "", false
	}
	for _, r := range token {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return "", false
		}
	}
	return strings.ToUpper(token), true
}
