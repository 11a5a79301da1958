package slip

import (
	"regexp"
	"strings"

	"github.com/nssuwan186/hotelops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Label tokens cover the Thai wording printed on bank transfer slips plus
// the English variants. Matching is case-insensitive and the name and
// amount searches are independent of each other's position in the text.
var (
	nameRe = regexp.MustCompile(`(?i)(?:ชื่อ|Name|To)[:\s]+(.+)`)

	// Amounts carry optional comma thousands separators and exactly two
	// decimal digits; anything else is not recognized as an amount.
	amountRe     = regexp.MustCompile(`(?i)(?:จำนวนเงิน|Amount|Total)[:\s]+(\d[\d,]*\.\d{2})`)
	bareAmountRe = regexp.MustCompile(`\d[\d,]*\.\d{2}`)
)

// Fields is the structured result of parsing recognized slip text.
type Fields struct {
	Name   string
	Amount decimal.Decimal
}

// Parse extracts the payer name and transferred amount from a block of
// recognized text. Both fields are required; if either is missing the
// whole extraction fails with domain.ErrExtractionFailed and no partial
// result is returned. When several candidates exist, the first match in
// text order wins.
func Parse(text string) (Fields, error) {
	name, ok := extractName(text)
	if !ok {
		return Fields{}, domain.ErrExtractionFailed
	}

	amount, ok := extractAmount(text)
	if !ok {
		return Fields{}, domain.ErrExtractionFailed
	}

	return Fields{Name: name, Amount: amount}, nil
}

func extractName(text string) (string, bool) {
	m := nameRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

func extractAmount(text string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(text)
	if m != nil {
		return normalizeAmount(m[1])
	}

	// No labeled amount anywhere; fall back to the first numeric token in
	// the whole text that looks like a money amount.
	if tok := bareAmountRe.FindString(text); tok != "" {
		return normalizeAmount(tok)
	}

	return decimal.Decimal{}, false
}

func normalizeAmount(tok string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(tok, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
