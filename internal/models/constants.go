package models

// Account types emitted in the OFX ACCTTYPE element.
const (
	AccountTypeChecking = "CHECKING"
	AccountTypeSavings  = "SAVINGS"
)

// Transaction categories assigned by the classifier.
const (
	CategoryDirectDebit = "Prélèvements SEPA domiciliés"
	CategoryTransferOut = "Virements émis"
	CategoryTransferIn  = "Virements reçus"
	CategoryCardPayment = "Factures cartes payées"
	CategoryFees        = "Commissions et frais divers"
	CategoryMisc        = "Opérations diverses"
)
