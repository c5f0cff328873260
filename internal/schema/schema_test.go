package schema

import (
	"testing"
	"time"

	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByLabel(t *testing.T) {
	column, ok := ByLabel("Montant")
	require.True(t, ok)
	assert.Equal(t, "amount", column.Field)

	_, ok = ByLabel("Colonne inconnue")
	assert.False(t, ok)
}

func TestParseAccount(t *testing.T) {
	account, err := ParseAccount("FR3011449000011234567890A33")
	require.NoError(t, err)
	assert.Equal(t, "11449", account.BankCode)
	assert.Equal(t, "00001", account.BranchNumber)
	assert.Equal(t, "1234567890A", account.AccountNumber)
	assert.Equal(t, "FR3011449000011234567890A33", account.IBAN)
}

func TestParseAccountInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"too short", "FR3011449"},
		{"lowercase country", "fr3011449000011234567890A33"},
		{"missing account letter", "FR30114490000112345678903 "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAccount(tc.value)
			assert.Error(t, err)
		})
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"current account", "COMPTE COURANT M DUPONT", models.AccountTypeChecking},
		{"current account bare", "COMPTE COURANT", models.AccountTypeChecking},
		{"savings account", "LIVRET A M DUPONT", models.AccountTypeSavings},
		{"prefix elsewhere", "MON COMPTE COURANT", models.AccountTypeSavings},
		{"empty", "", models.AccountTypeSavings},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseAccountType(tc.value))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("15/03/2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 15, date.Day())
	assert.Equal(t, 12, date.Hour())
	assert.Equal(t, 0, date.Minute())
}

func TestParseDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"ISO format", "2021-03-15"},
		{"year out of range", "15/03/2005"},
		{"month out of range", "15/13/2021"},
		{"empty", ""},
		{"free text", "not a date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDate(tc.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.value)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"decimal comma", "1234,56", "1234.56"},
		{"negative", "-50,00", "-50"},
		{"integer", "2000", "2000"},
		{"decimal point", "12.34", "12.34"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, amount.String())
		})
	}

	_, err := ParseAmount("abc")
	assert.Error(t, err)
}

func TestApplyReportsParseError(t *testing.T) {
	column, ok := ByLabel("Date d'opération")
	require.True(t, ok)

	record := models.EmptyRecord()
	err := column.Apply(&record, "31/31/2021")
	require.Error(t, err)

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "operationDate", parseErr.Field)
	assert.Equal(t, "31/31/2021", parseErr.Value)
}

func TestApplyCheckNumber(t *testing.T) {
	column, ok := ByLabel("Numéro de chèque")
	require.True(t, ok)

	record := models.EmptyRecord()
	require.NoError(t, column.Apply(&record, ""))
	assert.Empty(t, record.CheckNumber)

	require.NoError(t, column.Apply(&record, "0001234"))
	assert.Equal(t, "0001234", record.CheckNumber)
}
