// Package models defines the data types flowing through the conversion pipeline.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is the decomposition of the fixed-width IBAN-like account
// identifier found in the export: country code and check digits, 5-digit
// bank code, 5-digit branch code, 11-character account number and a 2-digit
// national key.
type BankAccount struct {
	BankCode      string
	BranchNumber  string
	AccountNumber string
	IBAN          string
}

// Record is one parsed transaction row. It is created once per CSV row,
// filled field by field by the column schema, and never mutated afterwards.
type Record struct {
	AccountID     *BankAccount
	AccountType   string
	Currency      string
	Amount        decimal.Decimal
	OperationDate time.Time
	ValueDate     time.Time
	CheckNumber   string
	OperationName string
}

// EmptyRecord returns the base record that row parsing overwrites field by
// field. Every date in the pipeline carries a fixed noon time component so
// formatted dates cannot slip across a timezone boundary; the epoch default
// is no exception.
func EmptyRecord() Record {
	return Record{
		Amount:        decimal.Zero,
		OperationDate: Epoch(),
		ValueDate:     Epoch(),
	}
}

// Epoch returns 1970-01-01 at local noon, the default for unset dates.
func Epoch() time.Time {
	return time.Date(1970, time.January, 1, 12, 0, 0, 0, time.Local)
}
