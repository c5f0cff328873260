package records

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() models.Record {
	r := models.EmptyRecord()
	r.AccountID = &models.BankAccount{
		BankCode:      "11449",
		BranchNumber:  "00001",
		AccountNumber: "1234567890A",
		IBAN:          "FR3011449000011234567890A33",
	}
	r.AccountType = models.AccountTypeChecking
	r.Currency = "EUR"
	r.Amount = decimal.RequireFromString("-50.00")
	r.OperationDate = time.Date(2021, time.February, 3, 12, 0, 0, 0, time.Local)
	r.ValueDate = r.OperationDate
	r.OperationName = "VIR SEPA LOYER FEVRIER  SCI DU PARC"
	return r
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteCSV([]models.Record{sampleRecord()}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "iban,bank_code,branch_number,account_number,account_type,currency,amount,operation_date,value_date,check_number,operation_name,category", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "FR3011449000011234567890A33")
	assert.Contains(t, lines[1], "-50")
	assert.Contains(t, lines[1], "2021-02-03")
	assert.Contains(t, lines[1], models.CategoryTransferOut)
}

func TestWriteCSVWithoutAccount(t *testing.T) {
	r := sampleRecord()
	r.AccountID = nil

	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteCSV([]models.Record{r}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "FR3011449000011234567890A33")
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	err := WriteCSV(nil, path)
	require.Error(t, err)

	var validationErr *parsererror.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.NoFileExists(t, path)
}
