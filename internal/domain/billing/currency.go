package billing

import "fmt"

// Currency selects one of the two independent ledgers. There is no conversion
// between them.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyRBX Currency = "R$"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyRBX
}

// ParseCurrency accepts "USD", "R$" and the "RBX"/"ROBUX" aliases used in URLs.
func ParseCurrency(s string) (Currency, error) {
	switch s {
	case "USD", "usd":
		return CurrencyUSD, nil
	case "R$", "RBX", "rbx", "ROBUX", "robux":
		return CurrencyRBX, nil
	default:
		return "", fmt.Errorf("invalid currency: %s", s)
	}
}
