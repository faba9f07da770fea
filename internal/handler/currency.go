package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theyuvrajyadav/currency-converter/internal/apperrors"
	"github.com/theyuvrajyadav/currency-converter/internal/model"
	"github.com/theyuvrajyadav/currency-converter/internal/parser"
	"github.com/theyuvrajyadav/currency-converter/internal/service"
)

type CurrencyHandler struct {
	currencyService service.Converter
}

func NewCurrencyHandler(currencyService service.Converter) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
	}
}

// Convert handles GET /api/v1/convert. The conversion can be given either as
// a raw query string (?q=100+USD+to+EUR) or as separate form params
// (?from=USD&to=EUR&amount=100).
func (h *CurrencyHandler) Convert(c *gin.Context) {
	var req model.ConversionRequest

	if q := c.Query("q"); q != "" {
		parsed, err := parser.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Error:   "Invalid query",
				Details: err.Error(),
			})
			return
		}
		req = parsed
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{
				Error:   "Invalid request",
				Details: err.Error(),
			})
			return
		}
		req.From = strings.ToUpper(req.From)
		req.To = strings.ToUpper(req.To)
	}

	result, err := h.currencyService.Convert(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), model.ErrorResponse{
			Error:   "Conversion failed",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCurrency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNetwork), errors.Is(err, apperrors.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
