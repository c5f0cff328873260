package records

import (
	"encoding/csv"
	"fmt"
	"os"

	"fjacquet/fid2ofx/internal/classifier"
	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// exportRow flattens a record for the gocsv marshaller.
type exportRow struct {
	IBAN          string `csv:"iban"`
	BankCode      string `csv:"bank_code"`
	BranchNumber  string `csv:"branch_number"`
	AccountNumber string `csv:"account_number"`
	AccountType   string `csv:"account_type"`
	Currency      string `csv:"currency"`
	Amount        string `csv:"amount"`
	OperationDate string `csv:"operation_date"`
	ValueDate     string `csv:"value_date"`
	CheckNumber   string `csv:"check_number"`
	OperationName string `csv:"operation_name"`
	Category      string `csv:"category"`
}

// WriteCSV dumps parsed records as a standard comma-separated file, one line
// per record, with the classifier's category attached. Used by the records
// dump command as a debugging aid for bad exports.
func WriteCSV(records []models.Record, path string) error {
	if len(records) == 0 {
		return &parsererror.ValidationError{Reason: "no records to write"}
	}

	rows := make([]exportRow, 0, len(records))
	for _, r := range records {
		row := exportRow{
			AccountType:   r.AccountType,
			Currency:      r.Currency,
			Amount:        r.Amount.String(),
			OperationDate: r.OperationDate.Format("2006-01-02"),
			ValueDate:     r.ValueDate.Format("2006-01-02"),
			CheckNumber:   r.CheckNumber,
			OperationName: r.OperationName,
			Category:      classifier.Classify(r),
		}
		if r.AccountID != nil {
			row.IBAN = r.AccountID.IBAN
			row.BankCode = r.AccountID.BankCode
			row.BranchNumber = r.AccountID.BranchNumber
			row.AccountNumber = r.AccountID.AccountNumber
		}
		rows = append(rows, row)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(file))
	if err := gocsv.MarshalCSV(rows, writer); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
