package ofx

import (
	"strings"

	"fjacquet/fid2ofx/internal/classifier"
	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"

	"github.com/shopspring/decimal"
)

// HeaderOrder fixes the emission order of the OFX header block.
var HeaderOrder = []string{
	"OFXHEADER",
	"DATA",
	"VERSION",
	"SECURITY",
	"ENCODING",
	"CHARSET",
	"COMPRESSION",
	"OLDFILEUID",
	"NEWFILEUID",
}

// BuildStatement assembles the OFX tree for a record set sorted most recent
// first, together with the externally supplied last-known balance. The
// source export carries no running balance per transaction, so both balance
// blocks report the same caller-provided figure as of the newest record.
func BuildStatement(records []models.Record, lastBalance decimal.Decimal) (*Element, error) {
	if len(records) == 0 {
		return nil, &parsererror.ValidationError{Reason: "no records to build a statement from"}
	}

	newest := records[0]
	oldest := records[len(records)-1]
	if newest.AccountID == nil {
		return nil, &parsererror.ValidationError{Reason: "can not find bank account"}
	}

	serverTime := FormatDate(newest.OperationDate)

	root := NewElement("OFX")

	signon := root.Ele("SIGNONMSGSRQV1").Ele("SONRQ")
	signon.Ele("STATUS").
		Txt("CODE", "0").
		Txt("SEVERITY", "INFO")
	signon.Txt("DTSERVER", serverTime).
		Txt("LANGUAGE", "FRA")

	response := root.Ele("BANKMSGSRQV1").Ele("STMTTRNRS")
	response.Txt("TRNUID", serverTime)
	response.Ele("STATUS").
		Txt("CODE", "0").
		Txt("SEVERITY", "INFO")

	statement := response.Ele("STMTRS")
	statement.Txt("CURDEF", newest.Currency)
	statement.Ele("BANKACCTFROM").
		Txt("BANKID", newest.AccountID.BankCode).
		Txt("BRANCHID", newest.AccountID.BranchNumber).
		Txt("ACCTID", newest.AccountID.AccountNumber).
		Txt("ACCTTYPE", newest.AccountType)

	list := statement.Ele("BANKTRANLIST")
	list.Txt("DTSTART", FormatDate(oldest.OperationDate)).
		Txt("DTEND", serverTime)
	for _, r := range records {
		name, memo := SplitName(r.OperationName)
		posted := FormatDate(r.OperationDate)
		list.Ele("STMTTRN").
			Txt("TRNTYPE", classifier.Classify(r)).
			Txt("DTPOSTED", posted).
			Txt("DTUSER", posted).
			Txt("DTAVAIL", FormatDate(r.ValueDate)).
			Txt("TRNAMT", r.Amount.String()).
			Txt("FITID", TransactionID(name, posted)).
			Txt("NAME", name).
			Txt("MEMO", memo).
			Txt("CURRENCY", r.Currency)
	}

	statement.Ele("LEDGERBAL").
		Txt("BALAMT", lastBalance.String()).
		Txt("DTASOF", serverTime)
	statement.Ele("AVAILBAL").
		Txt("BALAMT", lastBalance.String()).
		Txt("DTASOF", serverTime)

	return root, nil
}

// RenderHeaders renders the colon-separated OFX header block in canonical
// order. Keys without a configured value are skipped.
func RenderHeaders(values map[string]string) string {
	lines := make([]string, 0, len(HeaderOrder))
	for _, key := range HeaderOrder {
		if value, ok := values[key]; ok {
			lines = append(lines, key+":"+value)
		}
	}
	return strings.Join(lines, "\n")
}

// Document renders the complete OFX file content: header block, blank line,
// then the serialized statement body.
func Document(root *Element, headers map[string]string, closeTags bool) string {
	return RenderHeaders(headers) + "\n\n" + Render(root, closeTags)
}
