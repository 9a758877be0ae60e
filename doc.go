// Package holdings computes, for each account of a transaction file, the
// holdings (cash balance and asset quantities) as of a cutoff date.
//
// The transaction file has one transaction per line, no header:
//
//	Account,Date,TxnType,Units,Price,Asset
//
// where Date is YYYYMMDD and TxnType is one of BOT, SLD, WDR, DEP, DIV.
//
// The package is organized around three steps:
//   - Parsing: ParseTransaction turns a line into an immutable Transaction or
//     an *InvalidTransactionError telling which rule the line breaks.
//   - Folding: a Folder applies the transactions of one account, in input
//     order, to a cash balance and a set of asset positions.
//   - Grouping: Group splits the transactions into account runs and folds
//     each of them.
//
// Calculate, CalculateReader and CalculateFile chain the three steps and
// collect the rejected lines instead of failing on them. Amounts are exact
// decimals; BOT and SLD notionals are rounded half-up to four places.
//
// This package serves as the foundational logic for the `hcalc` command-line
// tool.
package holdings
