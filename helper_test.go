package holdings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// quantityEqual lets cmp compare Quantity by value: 1.0 and 1 are equal.
var quantityEqual = cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) })

// mustParse parses lines that are known to be valid.
func mustParse(t *testing.T, lines ...string) []Transaction {
	t.Helper()
	txns := make([]Transaction, 0, len(lines))
	for _, line := range lines {
		tx, err := ParseTransaction(line)
		if err != nil {
			t.Fatalf("ParseTransaction(%q) returned unexpected error: %v", line, err)
		}
		txns = append(txns, tx)
	}
	return txns
}

// H is a helper for test to write expected holdings: H("CASH", 110, "X", 10).
func H(pairs ...any) Holdings {
	h := make(Holdings, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		var q Quantity
		switch v := pairs[i+1].(type) {
		case int:
			q = Q(v)
		case float64:
			q = Q(v)
		case string:
			q = MustParseQuantity(v)
		default:
			panic("unsupported quantity type")
		}
		h = append(h, Holding{Asset: pairs[i].(string), Quantity: q})
	}
	return h
}

// assertHoldings fails the test with a diff if got and want differ.
func assertHoldings(t *testing.T, got, want Holdings) {
	t.Helper()
	if diff := cmp.Diff(want, got, quantityEqual); diff != "" {
		t.Errorf("holdings mismatch (-want +got):\n%s", diff)
	}
}
