// Package schema maps the export's French column labels to typed field
// parsers. The schema is a static lookup table: one entry per known column,
// keyed by the source-locale header label during decoding.
package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Column binds a canonical field to its source-locale header label and the
// parser that writes the cell value into a record.
type Column struct {
	Field string
	Label string
	Apply func(r *models.Record, value string) error
}

var (
	accountPattern  = regexp.MustCompile(`^([A-Z]{2}[0-9]{2})([0-9]{5})([0-9]{5})([0-9A-Z]{10}[A-Z])([0-9]{2})$`)
	datePattern     = regexp.MustCompile(`([0-3][0-9])/(0[1-9]|1[0-2])/(20[1-9][0-9])`)
	checkingPattern = regexp.MustCompile(`^COMPTE COURANT`)
)

// Columns is the schema in canonical field order.
var Columns = []Column{
	{Field: "accountId", Label: "Numéro de compte", Apply: applyAccountID},
	{Field: "accountType", Label: "Intitulé du compte", Apply: applyAccountType},
	{Field: "currency", Label: "Code devise", Apply: applyCurrency},
	{Field: "amount", Label: "Montant", Apply: applyAmount},
	{Field: "operationDate", Label: "Date d'opération", Apply: applyOperationDate},
	{Field: "valueDate", Label: "Date de valeur", Apply: applyValueDate},
	{Field: "checkNumber", Label: "Numéro de chèque", Apply: applyCheckNumber},
	{Field: "operationName", Label: "Libellé d'opération", Apply: applyOperationName},
}

var columnsByLabel = make(map[string]Column, len(Columns))

func init() {
	for _, c := range Columns {
		columnsByLabel[c.Label] = c
	}
}

// ByLabel returns the column matching a source header label.
func ByLabel(label string) (Column, bool) {
	c, ok := columnsByLabel[label]
	return c, ok
}

// ParseAccount decomposes the fixed-width account identifier into its bank,
// branch and account number parts.
func ParseAccount(value string) (*models.BankAccount, error) {
	m := accountPattern.FindStringSubmatch(value)
	if m == nil {
		return nil, fmt.Errorf("account identifier does not match the expected pattern")
	}
	return &models.BankAccount{
		BankCode:      m[2],
		BranchNumber:  m[3],
		AccountNumber: m[4],
		IBAN:          m[0],
	}, nil
}

// ParseAccountType maps the account label to an OFX account type. Anything
// that is not a current account is treated as savings.
func ParseAccountType(value string) string {
	if checkingPattern.MatchString(value) {
		return models.AccountTypeChecking
	}
	return models.AccountTypeSavings
}

// ParseDate parses a DD/MM/YYYY date with a year between 2010 and 2099.
// The result is pinned at local noon so formatting it back never crosses a
// timezone boundary.
func ParseDate(value string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, fmt.Errorf("unable to parse the following string as a date: %q", value)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local), nil
}

// ParseAmount reads a French-locale decimal where the comma is the decimal
// separator ("1234,56").
func ParseAmount(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(value, ",", ".", 1))
}

func applyAccountID(r *models.Record, value string) error {
	account, err := ParseAccount(value)
	if err != nil {
		return &parsererror.ParseError{Field: "accountId", Value: value, Err: err}
	}
	r.AccountID = account
	return nil
}

func applyAccountType(r *models.Record, value string) error {
	r.AccountType = ParseAccountType(value)
	return nil
}

func applyCurrency(r *models.Record, value string) error {
	r.Currency = value
	return nil
}

func applyAmount(r *models.Record, value string) error {
	amount, err := ParseAmount(value)
	if err != nil {
		return &parsererror.ParseError{Field: "amount", Value: value, Err: err}
	}
	r.Amount = amount
	return nil
}

func applyOperationDate(r *models.Record, value string) error {
	date, err := ParseDate(value)
	if err != nil {
		return &parsererror.ParseError{Field: "operationDate", Value: value, Err: err}
	}
	r.OperationDate = date
	return nil
}

func applyValueDate(r *models.Record, value string) error {
	date, err := ParseDate(value)
	if err != nil {
		return &parsererror.ParseError{Field: "valueDate", Value: value, Err: err}
	}
	r.ValueDate = date
	return nil
}

func applyCheckNumber(r *models.Record, value string) error {
	// empty means no check, keep the zero value
	if value != "" {
		r.CheckNumber = value
	}
	return nil
}

func applyOperationName(r *models.Record, value string) error {
	r.OperationName = value
	return nil
}
