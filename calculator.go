package holdings

import (
	"strings"

	"github.com/etnz/holdings/date"
)

// Rejection is an input line that did not make a valid transaction.
type Rejection struct {
	Line int    // 1-based line number in the input
	Text string // raw line
	Err  error  // an *InvalidTransactionError
}

// Reason returns the structured reason of the rejection.
func (r Rejection) Reason() *InvalidTransactionError {
	e, _ := r.Err.(*InvalidTransactionError)
	return e
}

// Result is the outcome of a calculation: the holdings of every account and
// the lines that were skipped.
type Result struct {
	Holdings   map[string]Holdings
	Rejections []Rejection
}

// Parse parses every line, keeping valid transactions in input order and
// collecting the rejected lines. Blank lines are skipped.
func Parse(lines []string) ([]Transaction, []Rejection) {
	txns := make([]Transaction, 0, len(lines))
	var rejections []Rejection
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := ParseTransaction(line)
		if err != nil {
			rejections = append(rejections, Rejection{Line: i + 1, Text: line, Err: err})
			continue
		}
		txns = append(txns, t)
	}
	return txns, rejections
}

// Calculate computes the holdings of every account as of cutoff from the raw
// lines of a transaction file.
func Calculate(lines []string, cutoff date.Date) Result {
	txns, rejections := Parse(lines)
	return Result{
		Holdings:   Group(txns, cutoff),
		Rejections: rejections,
	}
}
