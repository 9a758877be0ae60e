package holdings

import (
	"errors"
	"fmt"
)

// Rejection kinds. An *InvalidTransactionError matches its kind with errors.Is.
var (
	ErrMalformedLine = errors.New("malformed line")
	ErrInvalidDate   = errors.New("invalid date")
	ErrUnknownType   = errors.New("unknown transaction type")
	ErrInvalidUnits  = errors.New("invalid units")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNotCash       = errors.New("asset must be CASH")
	ErrNotPositive   = errors.New("value must be positive")
	ErrEmptyAccount  = errors.New("empty account")
	ErrEmptyAsset    = errors.New("empty asset")
	ErrCashPrice     = errors.New("cash price must be 1")
)

// ErrUnreadableInput is returned when the transaction source cannot be read
// at all. No holdings are computed in that case.
var ErrUnreadableInput = errors.New("unreadable transaction input")

// InvalidTransactionError describes why a line could not become a
// Transaction: the violated rule, the offending field and its raw value.
type InvalidTransactionError struct {
	Kind  error  // one of the Err* rejection kinds
	Field string // "line", "account", "date", "type", "units", "price" or "asset"
	Value string
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("%v: %s %q", e.Kind, e.Field, e.Value)
}

func (e *InvalidTransactionError) Unwrap() error { return e.Kind }

func reject(kind error, field, value string) *InvalidTransactionError {
	return &InvalidTransactionError{Kind: kind, Field: field, Value: value}
}
