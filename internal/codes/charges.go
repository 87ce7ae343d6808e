package codes

// ChargeBearer is the SWIFT field :71A: / ISO 20022 ChrgBr code set for
// who pays transfer charges.
type ChargeBearer string

const (
	ChargeOur   ChargeBearer = "OUR"
	ChargeShare ChargeBearer = "SHA"
	ChargeBen   ChargeBearer = "BEN"
)

var chargeDescriptions = map[ChargeBearer]string{
	ChargeOur:   "All transaction charges are borne by the ordering customer",
	ChargeShare: "Transaction charges are shared between ordering and beneficiary customer",
	ChargeBen:   "All transaction charges are borne by the beneficiary customer",
}

// IsValidChargeBearer reports whether code is one of OUR/SHA/BEN.
func IsValidChargeBearer(code string) bool {
	_, ok := chargeDescriptions[ChargeBearer(code)]
	return ok
}

// ChargeBearerDescription returns the human-readable description of a
// charge bearer code.
func ChargeBearerDescription(c ChargeBearer) (string, bool) {
	d, ok := chargeDescriptions[c]
	return d, ok
}

// Common ISO 20022 purpose codes referenced by camt entries and pain
// transactions in this module's fixtures and domain. Not exhaustive;
// new codes are accepted and carried verbatim even if absent from this
// table (PurposeCodeDescription only gates the description lookup).
var purposeDescriptions = map[string]string{
	"SALA": "Salary Payment",
	"SUPP": "Supplier Payment",
	"TAXS": "Tax Payment",
	"CASH": "Cash Management Transfer",
	"INTC": "Intra-Company Payment",
	"PENS": "Pension Payment",
	"RENT": "Rent",
	"GDDS": "Purchase Sale of Goods",
	"SCVE": "Purchase Sale of Services",
}

// PurposeCodeDescription returns the human-readable description of a
// known ISO 20022 purpose code.
func PurposeCodeDescription(code string) (string, bool) {
	d, ok := purposeDescriptions[code]
	return d, ok
}
