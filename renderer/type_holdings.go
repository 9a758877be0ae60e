package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
)

// Report is the data of a holdings report, ready to be rendered.
// Cash balances are already formatted, so that templates stay dumb.
type Report struct {
	// Date is the cutoff date of the report.
	Date date.Date `json:"date"`
	// Currency is the ISO code used to format cash balances, if any.
	Currency string `json:"currency,omitempty"`
	// Accounts in ascending order.
	Accounts []Account `json:"accounts"`
	// Rejections lists the input lines that were skipped.
	Rejections []Rejected `json:"rejections,omitempty"`
}

// Account is the holdings of one account.
type Account struct {
	Name   string     `json:"name"`
	Cash   string     `json:"cash"`
	Assets []Position `json:"assets"`
}

// Position is a non-cash holding.
type Position struct {
	Asset    string            `json:"asset"`
	Quantity holdings.Quantity `json:"quantity"`
}

// Rejected is a skipped input line.
type Rejected struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// NewReport creates a Report from a calculation result.
// An empty currency prints cash balances as plain numbers.
func NewReport(on date.Date, res holdings.Result, currency string) *Report {
	r := &Report{
		Date:     on,
		Currency: currency,
		Accounts: []Account{},
	}
	for _, name := range holdings.Accounts(res.Holdings) {
		h := res.Holdings[name]
		a := Account{
			Name:   name,
			Cash:   FormatCash(h.Cash(), currency),
			Assets: []Position{},
		}
		for _, x := range h {
			if x.Asset == holdings.CashAsset {
				continue
			}
			a.Assets = append(a.Assets, Position{Asset: x.Asset, Quantity: x.Quantity})
		}
		r.Accounts = append(r.Accounts, a)
	}
	for _, rej := range res.Rejections {
		r.Rejections = append(r.Rejections, Rejected{
			Line:   rej.Line,
			Reason: strings.ReplaceAll(rej.Err.Error(), "|", `\|`),
		})
	}
	return r
}

// ValidCurrency reports whether code is a currency known to the formatter.
func ValidCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// FormatCash formats a cash balance in the given currency, rounded to the
// currency's minor unit. Unknown or empty currencies keep the exact value.
func FormatCash(q holdings.Quantity, currency string) string {
	if currency == "" {
		return q.String()
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", q, currency)
	}
	d := q.Decimal().Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(d.IntPart())
}
