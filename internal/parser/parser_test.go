package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
)

func TestParse_Success(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantAmount float64
		wantFrom   string
		wantTo     string
	}{
		{"Simple", "100 USD to EUR", 100, "USD", "EUR"},
		{"Decimal", "99.95 USD to EUR", 99.95, "USD", "EUR"},
		{"Zero", "0 USD to EUR", 0, "USD", "EUR"},
		{"LowercaseCodes", "100 usd to eur", 100, "USD", "EUR"},
		{"MixedCaseConnector", "100 usd TO eur", 100, "USD", "EUR"},
		{"InConnector", "250 GBP in JPY", 250, "GBP", "JPY"},
		{"ExtraWhitespace", "  100   USD   to   EUR  ", 100, "USD", "EUR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := Parse(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, req.Amount)
			assert.Equal(t, tc.wantFrom, req.From)
			assert.Equal(t, tc.wantTo, req.To)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{"Empty", ""},
		{"MissingTarget", "100 USD to"},
		{"TooManyTokens", "100 USD to EUR now"},
		{"NonNumericAmount", "abc USD to EUR"},
		{"NegativeAmount", "-5 USD to EUR"},
		{"WrongConnector", "100 USD into EUR"},
		{"ShortSourceCode", "100 US to EUR"},
		{"LongTargetCode", "100 USD to EURO"},
		{"DigitsInCode", "100 US1 to EUR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrParse),
				"expected ErrParse, got: %v", err)
		})
	}
}

func TestParse_CaseInsensitiveEquivalence(t *testing.T) {
	a, err := Parse("100 usd TO eur")
	require.NoError(t, err)
	b, err := Parse("100 USD to EUR")
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestParse_ExitCode(t *testing.T) {
	_, err := Parse("not a query at all")
	require.Error(t, err)
	assert.Equal(t, apperrors.ExitParse, apperrors.ExitCode(err))
}
