package ofx

import (
	"regexp"
	"strconv"
	"time"
)

var nameMemoPattern = regexp.MustCompile(`^(.+)  ([A-Z ]+)$`)

// SplitName separates an operation label into its display name and a
// trailing all-caps memo segment when the two are joined by a double space.
// Labels without that shape are returned whole, with an empty memo.
func SplitName(operationName string) (name, memo string) {
	if m := nameMemoPattern.FindStringSubmatch(operationName); m != nil {
		return m[1], m[2]
	}
	return operationName, ""
}

// FormatDate renders a date as an OFX timestamp with the time component
// pinned at noon.
func FormatDate(t time.Time) string {
	return t.Format("20060102") + "120000"
}

// TransactionID derives the stable FITID for a transaction from its display
// name and formatted posting date. Identical name/date pairs produce the
// same identifier on every run, which lets OFX readers deduplicate
// re-imported statements.
func TransactionID(name, formattedDate string) string {
	base := name + formattedDate
	return base + "-" + hashAsNumbers(base)
}

// hashAsNumbers computes a 31x polynomial rolling hash over the string's
// code points. The 32-bit signed wrap-around is part of the identifier
// contract: changing the arithmetic would change every generated FITID.
func hashAsNumbers(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 10)
}
