package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
	"github.com/theyuvrajyadav/currency-converter/internal/config"
	"github.com/theyuvrajyadav/currency-converter/internal/model"
)

// Converter - интерфейс для тестирования
type Converter interface {
	Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error)
}

type CurrencyService struct {
	config     *config.Config
	logger     *zap.Logger
	httpClient *http.Client
}

func NewCurrencyService(cfg *config.Config, logger *zap.Logger) *CurrencyService {
	client := &http.Client{
		Timeout: cfg.API.Timeout,
	}
	return &CurrencyService{
		config:     cfg,
		logger:     logger,
		httpClient: client,
	}
}

// ratesURL builds the provider URL for a base currency. With an API key the
// keyed v6 endpoint is used, otherwise the open one.
func (s *CurrencyService) ratesURL(base string) string {
	if s.config.API.Key != "" {
		return fmt.Sprintf("%s/v6/%s/latest/%s", s.config.API.BaseURL, s.config.API.Key, base)
	}
	return fmt.Sprintf("%s/v6/latest/%s", s.config.API.BaseURL, base)
}

// FetchRates issues one GET to the exchange-rate API and returns the decoded
// rate table for the given base currency.
func (s *CurrencyService) FetchRates(ctx context.Context, base string) (*model.RatesResponse, error) {
	apiURL := s.ratesURL(base)

	maskedURL := apiURL
	if s.config.API.Key != "" {
		maskedURL = strings.Replace(apiURL, s.config.API.Key, "***", 1)
	}
	s.logger.Debug("Fetching exchange rates",
		zap.String("base", base),
		zap.String("url", maskedURL),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrNetwork, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			s.logger.Error("API request timeout",
				zap.String("base", base),
				zap.Duration("timeout", s.config.API.Timeout),
			)
			return nil, fmt.Errorf("%w: request timed out after %v", apperrors.ErrNetwork, s.config.API.Timeout)
		}
		s.logger.Error("API request failed",
			zap.String("base", base),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", apperrors.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Некоторые провайдеры отвечают 4xx с JSON-описанием ошибки
		if apiErr := decodeAPIError(body); apiErr != nil {
			return nil, apiErr
		}
		s.logger.Error("API returned error status",
			zap.String("base", base),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)),
		)
		return nil, fmt.Errorf("%w: API returned status %d", apperrors.ErrNetwork, resp.StatusCode)
	}

	var rates model.RatesResponse
	if err := json.Unmarshal(body, &rates); err != nil {
		s.logger.Error("Invalid JSON from API",
			zap.String("base", base),
			zap.String("response", string(body)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: invalid JSON: %v", apperrors.ErrMalformedResponse, err)
	}

	if rates.Result == "error" {
		return nil, classifyAPIError(rates.ErrorType)
	}
	if rates.Table() == nil {
		s.logger.Error("API response has no rates table",
			zap.String("base", base),
			zap.String("response", string(body)),
		)
		return nil, fmt.Errorf("%w: no rates in response", apperrors.ErrMalformedResponse)
	}

	s.logger.Debug("Rates fetched",
		zap.String("base", base),
		zap.Int("count", len(rates.Table())),
	)
	return &rates, nil
}

func decodeAPIError(body []byte) error {
	var apiResp model.RatesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil
	}
	if apiResp.Result != "error" {
		return nil
	}
	return classifyAPIError(apiResp.ErrorType)
}

// classifyAPIError maps the provider's error-type to the error taxonomy.
// Unknown-code errors surface verbatim so the user sees which code was
// rejected by the API.
func classifyAPIError(errorType string) error {
	switch errorType {
	case "unsupported-code", "unknown-code", "malformed-request":
		return fmt.Errorf("%w: API error: %s", apperrors.ErrInvalidCurrency, errorType)
	case "":
		return fmt.Errorf("%w: API reported an unspecified error", apperrors.ErrMalformedResponse)
	default:
		return fmt.Errorf("%w: API error: %s", apperrors.ErrMalformedResponse, errorType)
	}
}

// Convert resolves the source→target rate and applies it to the amount.
// Identical source and target short-circuit at rate 1.0 without touching the
// network.
func (s *CurrencyService) Convert(ctx context.Context, req model.ConversionRequest) (model.ConversionResult, error) {
	result := model.ConversionResult{
		From:   req.From,
		To:     req.To,
		Amount: req.Amount,
	}

	if req.Amount < 0 {
		return result, fmt.Errorf("amount must not be negative, got: %.2f", req.Amount)
	}

	if req.From == req.To {
		result.Rate = 1.0
		result.Result = req.Amount
		return result, nil
	}

	rates, err := s.FetchRates(ctx, req.From)
	if err != nil {
		return result, err
	}

	rate, ok := rates.Lookup(req.To)
	if !ok {
		s.logger.Warn("Currency not found in rate table",
			zap.String("from", req.From),
			zap.String("to", req.To),
		)
		return result, fmt.Errorf("%w: currency %q not found in exchange rates", apperrors.ErrInvalidCurrency, req.To)
	}

	result.Rate = rate
	result.Result = req.Amount * rate
	result.LastUpdated = rates.TimeLastUpdateUTC

	s.logger.Info("Currency conversion completed",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Float64("amount", req.Amount),
		zap.Float64("rate", rate),
		zap.Float64("result", result.Result),
	)
	return result, nil
}

var _ Converter = (*CurrencyService)(nil)
