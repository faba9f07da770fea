package model

// ConversionRequest - запрос на конвертацию
type ConversionRequest struct {
	Amount float64 `form:"amount" json:"amount" binding:"required,min=0.01"`
	From   string  `form:"from" json:"from" binding:"required,len=3,alpha"`
	To     string  `form:"to" json:"to" binding:"required,len=3,alpha"`
}

// ConversionResult - результат конвертации
type ConversionResult struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Amount      float64 `json:"amount"`
	Rate        float64 `json:"rate"`
	Result      float64 `json:"result"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// ErrorResponse - структура для ошибок
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// RatesResponse is the provider payload. The open endpoint returns the table
// under "rates", the keyed v6 endpoint under "conversion_rates"; only one of
// the two is present in any given response.
type RatesResponse struct {
	Result            string             `json:"result"`
	ErrorType         string             `json:"error-type"`
	BaseCode          string             `json:"base_code"`
	Rates             map[string]float64 `json:"rates"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

// Table returns whichever rates table the response carries, or nil.
func (r *RatesResponse) Table() map[string]float64 {
	if r.Rates != nil {
		return r.Rates
	}
	return r.ConversionRates
}

// Lookup returns the rate for a currency code.
func (r *RatesResponse) Lookup(code string) (float64, bool) {
	rate, ok := r.Table()[code]
	return rate, ok
}
