package records

import (
	"testing"
	"time"

	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow() map[string]string {
	return map[string]string{
		"Numéro de compte":    "FR3011449000011234567890A33",
		"Intitulé du compte":  "COMPTE COURANT M DUPONT",
		"Code devise":         "EUR",
		"Montant":             "-50,00",
		"Date d'opération":    "03/02/2021",
		"Date de valeur":      "03/02/2021",
		"Numéro de chèque":    "",
		"Libellé d'opération": "VIR SEPA LOYER FEVRIER  SCI DU PARC",
	}
}

func TestBuild(t *testing.T) {
	record, err := Build(fullRow())
	require.NoError(t, err)

	require.NotNil(t, record.AccountID)
	assert.Equal(t, "11449", record.AccountID.BankCode)
	assert.Equal(t, "00001", record.AccountID.BranchNumber)
	assert.Equal(t, "1234567890A", record.AccountID.AccountNumber)
	assert.Equal(t, models.AccountTypeChecking, record.AccountType)
	assert.Equal(t, "EUR", record.Currency)
	assert.Equal(t, "-50", record.Amount.String())
	assert.Equal(t, time.Date(2021, time.February, 3, 12, 0, 0, 0, time.Local), record.OperationDate)
	assert.Empty(t, record.CheckNumber)
	assert.Equal(t, "VIR SEPA LOYER FEVRIER  SCI DU PARC", record.OperationName)
}

func TestBuildIgnoresUnknownColumns(t *testing.T) {
	row := fullRow()
	row["Colonne interne"] = "xyz"

	record, err := Build(row)
	require.NoError(t, err)
	assert.Equal(t, "EUR", record.Currency)
}

func TestBuildDefaultsForMissingColumns(t *testing.T) {
	record, err := Build(map[string]string{"Code devise": "EUR"})
	require.NoError(t, err)

	assert.Nil(t, record.AccountID)
	assert.Equal(t, models.Epoch(), record.OperationDate)
	assert.True(t, record.Amount.IsZero())
}

func TestBuildPropagatesColumnError(t *testing.T) {
	row := fullRow()
	row["Montant"] = "abc"

	_, err := Build(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "Montant"`)
}

func TestBuildAllSortsMostRecentFirst(t *testing.T) {
	rows := make([]map[string]string, 0, 3)
	for _, date := range []string{"05/01/2021", "10/01/2021", "01/01/2021"} {
		row := fullRow()
		row["Date d'opération"] = date
		row["Date de valeur"] = date
		rows = append(rows, row)
	}

	result, err := BuildAll(rows)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, 10, result[0].OperationDate.Day())
	assert.Equal(t, 5, result[1].OperationDate.Day())
	assert.Equal(t, 1, result[2].OperationDate.Day())
}

func TestBuildAllKeepsRowOrderOnEqualDates(t *testing.T) {
	first := fullRow()
	first["Libellé d'opération"] = "FIRST"
	second := fullRow()
	second["Libellé d'opération"] = "SECOND"

	result, err := BuildAll([]map[string]string{first, second})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "FIRST", result[0].OperationName)
	assert.Equal(t, "SECOND", result[1].OperationName)
}

func TestBuildAllEmpty(t *testing.T) {
	_, err := BuildAll(nil)
	require.Error(t, err)

	var validationErr *parsererror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "CSV file is empty")
}

func TestBuildAllReportsFailingRow(t *testing.T) {
	good := fullRow()
	bad := fullRow()
	bad["Date d'opération"] = "45/01/2021"

	_, err := BuildAll([]map[string]string{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "45/01/2021")
}
