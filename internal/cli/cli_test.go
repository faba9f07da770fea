package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
	"github.com/theyuvrajyadav/currency-converter/internal/model"
)

type mockConverter struct {
	rate   float64
	err    error
	called bool
	last   model.ConversionRequest
}

func (m *mockConverter) Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	m.called = true
	m.last = req
	if m.err != nil {
		return model.ConversionResult{}, m.err
	}
	return model.ConversionResult{
		From:   req.From,
		To:     req.To,
		Amount: req.Amount,
		Rate:   m.rate,
		Result: req.Amount * m.rate,
	}, nil
}

func runApp(conv *mockConverter, stdin string, args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	app := New(conv, zap.NewNop(), strings.NewReader(stdin), &out, &errOut)
	code = app.Run(context.Background(), args)
	return code, out.String(), errOut.String()
}

func TestRun_ArgsMode(t *testing.T) {
	conv := &mockConverter{rate: 0.92}
	code, stdout, stderr := runApp(conv, "", "100", "USD", "to", "EUR")

	assert.Equal(t, apperrors.ExitOK, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "100.00 USD = 92.00 EUR")
	assert.Contains(t, stdout, "Exchange rate: 1 USD = 0.9200 EUR")
	assert.True(t, conv.called)
	assert.Equal(t, model.ConversionRequest{Amount: 100, From: "USD", To: "EUR"}, conv.last)
	// no prompt when the query comes from argv
	assert.NotContains(t, stdout, "Enter amount")
}

func TestRun_InteractiveMode(t *testing.T) {
	conv := &mockConverter{rate: 0.92}
	code, stdout, _ := runApp(conv, "50 usd in eur\n")

	assert.Equal(t, apperrors.ExitOK, code)
	assert.Contains(t, stdout, "Enter amount and currency")
	assert.Contains(t, stdout, "50.00 USD = 46.00 EUR")
}

func TestRun_ZeroAmount(t *testing.T) {
	conv := &mockConverter{rate: 0.92}
	code, stdout, _ := runApp(conv, "", "0", "USD", "to", "EUR")

	assert.Equal(t, apperrors.ExitOK, code)
	assert.Contains(t, stdout, "0.00 USD = 0.00 EUR")
}

func TestRun_ParseError(t *testing.T) {
	conv := &mockConverter{rate: 0.92}
	code, _, stderr := runApp(conv, "", "100", "dollars", "to", "euros")

	assert.Equal(t, apperrors.ExitParse, code)
	assert.Contains(t, stderr, "Error:")
	assert.False(t, conv.called)
}

func TestRun_ConversionErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"Network", fmt.Errorf("%w: connection refused", apperrors.ErrNetwork), apperrors.ExitNetwork},
		{"InvalidCurrency", fmt.Errorf("%w: XXX", apperrors.ErrInvalidCurrency), apperrors.ExitInvalidCurrency},
		{"Malformed", fmt.Errorf("%w: no rates", apperrors.ErrMalformedResponse), apperrors.ExitMalformedResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conv := &mockConverter{err: tc.err}
			code, _, stderr := runApp(conv, "", "100", "USD", "to", "EUR")
			assert.Equal(t, tc.wantCode, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRun_EmptyStdin(t *testing.T) {
	conv := &mockConverter{rate: 0.92}
	code, _, stderr := runApp(conv, "")

	assert.Equal(t, apperrors.ExitFailure, code)
	assert.Contains(t, stderr, "no input")
	assert.False(t, conv.called)
}
