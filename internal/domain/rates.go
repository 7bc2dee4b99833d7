package domain

// CurrencyCodes is the fixed set of codes shown to the user,
// in display order.
var CurrencyCodes = []string{"USD", "EUR", "CNY", "KZT"}

// RateSnapshot is the result of one fetch from the quote source.
// A code absent from Quotes means the upstream payload did not
// carry a usable value for it.
type RateSnapshot struct {
	Quotes map[string]float64
}

// Quote returns the rate for code and whether it is available.
func (s RateSnapshot) Quote(code string) (float64, bool) {
	v, ok := s.Quotes[code]
	return v, ok
}
