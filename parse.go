package holdings

import (
	"strings"

	"github.com/etnz/holdings/date"
)

const (
	// Separator splits the fields of an input line. There is no escaping.
	Separator = ","
	// FieldCount is the number of fields of an input line:
	// Account,Date,TxnType,Units,Price,Asset
	FieldCount = 6
)

// ParseTransaction parses and validates one input line.
//
// A line that breaks a rule is not an exceptional situation: the returned
// error is always an *InvalidTransactionError whose Kind tells which rule
// was broken (errors.Is(err, ErrInvalidDate), ...). Field parsing is checked
// first, in field order, then the cross-field rules.
func ParseTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != FieldCount {
		return Transaction{}, reject(ErrMalformedLine, "line", line)
	}
	account, rawDate, rawType, rawUnits, rawPrice, asset := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	on, err := date.Parse(rawDate)
	if err != nil {
		return Transaction{}, reject(ErrInvalidDate, "date", rawDate)
	}
	txnType, ok := ParseTxnType(rawType)
	if !ok {
		return Transaction{}, reject(ErrUnknownType, "type", rawType)
	}
	units, err := ParseQuantity(rawUnits)
	if err != nil {
		return Transaction{}, reject(ErrInvalidUnits, "units", rawUnits)
	}
	price, err := ParseQuantity(rawPrice)
	if err != nil {
		return Transaction{}, reject(ErrInvalidPrice, "price", rawPrice)
	}

	return NewTransaction(account, on, txnType, units, price, asset)
}
