package holdings

import (
	"slices"
	"strings"
)

// Holding is the quantity of one asset, or of cash, owned by an account.
type Holding struct {
	Asset    string
	Quantity Quantity
}

// Holdings is the set of holdings of one account. It always contains exactly
// one CASH holding, listed first; the other assets follow in ascending order
// and none of them has a zero quantity.
type Holdings []Holding

// newHoldings builds the canonical Holdings from a cash balance and the
// asset positions.
func newHoldings(cash Quantity, byAsset map[string]Quantity) Holdings {
	h := make(Holdings, 0, len(byAsset)+1)
	h = append(h, Holding{Asset: CashAsset, Quantity: cash})
	for asset, q := range byAsset {
		h = append(h, Holding{Asset: asset, Quantity: q})
	}
	slices.SortFunc(h[1:], func(a, b Holding) int { return strings.Compare(a.Asset, b.Asset) })
	return h
}

// Cash returns the cash balance.
func (h Holdings) Cash() Quantity {
	q, _ := h.Get(CashAsset)
	return q
}

// Get returns the quantity held for an asset.
func (h Holdings) Get(asset string) (Quantity, bool) {
	for _, x := range h {
		if x.Asset == asset {
			return x.Quantity, true
		}
	}
	return Quantity{}, false
}

// Assets returns the asset names, CASH first.
func (h Holdings) Assets() []string {
	assets := make([]string, 0, len(h))
	for _, x := range h {
		assets = append(assets, x.Asset)
	}
	return assets
}

// MarshalJSON writes the holdings as a JSON object keyed by asset, keeping
// the Holdings order.
func (h Holdings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, x := range h {
		w.Append(x.Asset, x.Quantity)
	}
	return w.MarshalJSON()
}

// Accounts returns the account names of a result, sorted.
func Accounts(m map[string]Holdings) []string {
	accounts := make([]string, 0, len(m))
	for a := range m {
		accounts = append(accounts, a)
	}
	slices.Sort(accounts)
	return accounts
}
