package holdings

import (
	"fmt"
	"strings"

	"github.com/etnz/holdings/date"
)

// TxnType is a typed string for identifying transaction types.
type TxnType string

// Transaction types. The set is closed: code switching over a TxnType handles
// all five and treats anything else as unreachable.
const (
	Bought     TxnType = "BOT"
	Sold       TxnType = "SLD"
	Withdrawal TxnType = "WDR"
	Deposit    TxnType = "DEP"
	Dividend   TxnType = "DIV"
)

// CashAsset is the asset of cash movements and of the synthetic cash holding.
const CashAsset = "CASH"

// TxnTypes lists every transaction type.
var TxnTypes = []TxnType{Bought, Sold, Withdrawal, Deposit, Dividend}

// ParseTxnType returns the TxnType for an exact, case-sensitive token.
func ParseTxnType(s string) (TxnType, bool) {
	for _, t := range TxnTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// IsCashMovement reports whether t moves cash in or out of the account
// without touching any asset.
func (t TxnType) IsCashMovement() bool { return t == Withdrawal || t == Deposit }

func (t TxnType) String() string { return string(t) }

// Transaction is one validated line of the transaction file. It is immutable:
// the zero value is not a valid transaction and values are only built by
// ParseTransaction or NewTransaction.
type Transaction struct {
	account string
	on      date.Date
	txnType TxnType
	units   Quantity
	price   Quantity
	asset   string
}

// NewTransaction builds a Transaction from typed values and checks the
// cross-field rules. The error, if any, is an *InvalidTransactionError.
func NewTransaction(account string, on date.Date, txnType TxnType, units, price Quantity, asset string) (Transaction, error) {
	if _, ok := ParseTxnType(string(txnType)); !ok {
		return Transaction{}, reject(ErrUnknownType, "type", string(txnType))
	}
	t := Transaction{
		account: account,
		on:      on,
		txnType: txnType,
		units:   units,
		price:   price,
		asset:   asset,
	}
	if err := t.validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// validate checks the cross-field rules in a fixed order and returns the
// first violation.
func (t Transaction) validate() error {
	if t.txnType.IsCashMovement() && t.asset != CashAsset {
		return reject(ErrNotCash, "asset", t.asset)
	}
	if !t.units.IsPositive() {
		return reject(ErrNotPositive, "units", t.units.String())
	}
	if !t.price.IsPositive() {
		return reject(ErrNotPositive, "price", t.price.String())
	}
	if t.account == "" {
		return reject(ErrEmptyAccount, "account", t.account)
	}
	if t.asset == "" {
		return reject(ErrEmptyAsset, "asset", t.asset)
	}
	if t.asset == CashAsset && !t.price.Equal(Q(1)) {
		return reject(ErrCashPrice, "price", t.price.String())
	}
	return nil
}

func (t Transaction) Account() string { return t.account }
func (t Transaction) Date() date.Date { return t.on }
func (t Transaction) Type() TxnType   { return t.txnType }
func (t Transaction) Units() Quantity { return t.units }
func (t Transaction) Price() Quantity { return t.price }
func (t Transaction) Asset() string   { return t.asset }

// Notional returns units × price rounded to four decimal places.
func (t Transaction) Notional() Quantity { return round4(t.units.Mul(t.price)) }

// Equal reports whether both transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.account == o.account && t.on == o.on && t.txnType == o.txnType &&
		t.units.Equal(o.units) && t.price.Equal(o.price) && t.asset == o.asset
}

// String formats the transaction as an input line, so that
// ParseTransaction(t.String()) is equal to t.
func (t Transaction) String() string {
	return strings.Join([]string{
		t.account,
		t.on.String(),
		string(t.txnType),
		t.units.String(),
		t.price.String(),
		t.asset,
	}, Separator)
}

// GoString is used by %#v in test failures.
func (t Transaction) GoString() string { return fmt.Sprintf("Transaction(%s)", t.String()) }
