// Package classifier assigns a human-readable category to each transaction
// from its free-text operation label.
package classifier

import (
	"regexp"

	"fjacquet/fid2ofx/internal/models"
)

// rule pairs a label predicate with the category it produces. Rules are
// evaluated in order and the first match wins; the card-payment pattern
// overlaps with other prefixes, so this order is a contract, not an
// implementation detail.
type rule struct {
	pattern    *regexp.Regexp
	categorize func(models.Record) string
}

var rules = []rule{
	{
		pattern:    regexp.MustCompile(`^(PRVL[ -]SEPA|SEPA[ -]PRLV) `),
		categorize: func(models.Record) string { return models.CategoryDirectDebit },
	},
	{
		pattern: regexp.MustCompile(`^(VIR[ -]SEPA|SEPA[ -]VIRT) `),
		categorize: func(r models.Record) string {
			if r.Amount.IsNegative() {
				return models.CategoryTransferOut
			}
			return models.CategoryTransferIn
		},
	},
	{
		// card payments start with either a DDMMYY token and an uppercase
		// letter, or a literal "CB " prefix
		pattern:    regexp.MustCompile(`^([0-3][0-9](0[1-9]|1[0-2])2[0-9][A-Z]|CB )`),
		categorize: func(models.Record) string { return models.CategoryCardPayment },
	},
	{
		pattern:    regexp.MustCompile(`^(FRS/PACK |Cotisation Club Entrepreneur)`),
		categorize: func(models.Record) string { return models.CategoryFees },
	},
}

// Classify returns the category for a record's operation label.
func Classify(r models.Record) string {
	for _, rl := range rules {
		if rl.pattern.MatchString(r.OperationName) {
			return rl.categorize(r)
		}
	}
	return models.CategoryMisc
}
