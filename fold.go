package holdings

import (
	"fmt"

	"github.com/etnz/holdings/date"
)

// Folder accumulates the holdings of a single account by applying its
// transactions one at a time, in input order. Transactions dated after the
// cutoff are ignored.
//
// A SLD of an asset that is not held is ignored. A SLD of more units than
// held is applied and leaves a negative position.
type Folder struct {
	cutoff  date.Date
	cash    Quantity
	byAsset map[string]Quantity
}

// NewFolder returns an empty Folder: no cash, no asset.
func NewFolder(cutoff date.Date) *Folder {
	return &Folder{
		cutoff:  cutoff,
		byAsset: make(map[string]Quantity),
	}
}

// Apply folds one transaction into the state.
func (f *Folder) Apply(t Transaction) {
	if t.Date().After(f.cutoff) {
		return
	}
	switch t.Type() {
	case Bought:
		f.cash = f.cash.Sub(t.Notional())
		f.move(t.Asset(), t.Units())
	case Sold:
		if !f.holds(t.Asset()) {
			return
		}
		f.cash = f.cash.Add(t.Notional())
		f.move(t.Asset(), t.Units().Neg())
	case Withdrawal:
		f.cash = f.cash.Sub(t.Units().Mul(t.Price()))
	case Deposit:
		f.cash = f.cash.Add(t.Units().Mul(t.Price()))
	case Dividend:
		if f.holds(t.Asset()) {
			f.cash = f.cash.Add(t.Price())
		}
	default:
		panic(fmt.Sprintf("unhandled transaction type %q", t.Type()))
	}
}

// holds reports whether the account has a position in asset.
func (f *Folder) holds(asset string) bool {
	_, ok := f.byAsset[asset]
	return ok
}

// move changes the position in asset by delta. A position that reaches
// exactly zero is closed.
func (f *Folder) move(asset string, delta Quantity) {
	q := f.byAsset[asset].Add(delta)
	if q.IsZero() {
		delete(f.byAsset, asset)
		return
	}
	f.byAsset[asset] = q
}

// Holdings returns the current holdings. The Folder can keep folding after
// this call; the returned value does not share state with it.
func (f *Folder) Holdings() Holdings {
	return newHoldings(f.cash, f.byAsset)
}

// Fold applies a run of transactions of a single account to an empty state
// and returns the resulting holdings as of cutoff.
func Fold(run []Transaction, cutoff date.Date) Holdings {
	f := NewFolder(cutoff)
	for _, t := range run {
		f.Apply(t)
	}
	return f.Holdings()
}
