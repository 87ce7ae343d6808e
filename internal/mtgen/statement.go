package mtgen

import (
	"fmt"

	"finfmt/internal/codes"
	"finfmt/internal/currencyutils"
	"finfmt/internal/dateutils"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/logging"
	"finfmt/internal/money"
)

// StatementGenerator renders a documents.StatementDocument as an MT940
// (full statement), MT942 (interim report, which additionally emits
// :90D:/:90C: summary lines), or MT950 message. Variant selects which of
// these wire shapes to produce; Variant is exported so callers construct
// one generator per target message type rather than sniffing it from the
// document's contents.
type StatementGenerator struct {
	Variant MTVariant
	// SepaRaw, when true, preserves an entry's :86: GVC payload and
	// embedded SEPA keyword segments verbatim (the MT940 DATEV variant);
	// when false, the generator is free to pack subfields with ?20-?29
	// sub-tags (the plain SWIFT variant).
	SepaRaw bool
}

// MTVariant selects which statement message type StatementGenerator emits.
type MTVariant int

const (
	VariantMT940 MTVariant = iota
	VariantMT942
	VariantMT950
)

var _ documents.StatementGenerator = StatementGenerator{}

// GenerateStatement implements documents.StatementGenerator.
func (g StatementGenerator) GenerateStatement(d documents.StatementDocument) (string, error) {
	w := &Writer{}

	if d.MessageID == "" {
		logging.GetLogger().Debug("statement document carries no message id, defaulting field 20 to STATEMENT")
	}
	w.Tag("20", firstNonEmpty(d.MessageID, "STATEMENT"))
	w.Tag("25", accountLine(d))
	w.Tag("28C", sequenceLine(d))

	if err := writeBalance(w, "60F", d.OpeningBalance); err != nil {
		return "", err
	}

	var debitCount, creditCount int
	debitTotal := money.Zero(d.Currency)
	creditTotal := money.Zero(d.Currency)
	for _, tx := range d.Transactions {
		if err := writeTransaction(w, tx, g.SepaRaw); err != nil {
			return "", err
		}
		var err error
		if tx.Direction == codes.DirectionDebit {
			debitCount++
			debitTotal, err = debitTotal.Add(money.Money{Amount: tx.Amount.Amount, Currency: d.Currency})
		} else {
			creditCount++
			creditTotal, err = creditTotal.Add(money.Money{Amount: tx.Amount.Amount, Currency: d.Currency})
		}
		if err != nil {
			return "", err
		}
	}

	if err := writeBalance(w, "62F", d.ClosingBalance); err != nil {
		return "", err
	}

	if g.Variant == VariantMT942 {
		if debitCount > 0 {
			w.Tag("90D", fmt.Sprintf("%d%s%s", debitCount, d.Currency, currencyutils.FormatMT(debitTotal.Amount)))
		}
		if creditCount > 0 {
			w.Tag("90C", fmt.Sprintf("%d%s%s", creditCount, d.Currency, currencyutils.FormatMT(creditTotal.Amount)))
		}
	}

	return w.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func accountLine(d documents.StatementDocument) string {
	if d.Account.IsIBAN() {
		return d.Account.IBAN()
	}
	return d.Account.Other()
}

func sequenceLine(d documents.StatementDocument) string {
	if d.SequenceNumber != "" {
		return d.SequenceNumber + "/1"
	}
	return "1/1"
}

func writeBalance(w *Writer, tag string, bal entities.Balance) error {
	if bal.IsZero() {
		return nil
	}
	value := bal.Direction.MTCode() + dateutils.FormatMT6(bal.Date) + bal.Amount.Currency + currencyutils.FormatMT(bal.Amount.Amount)
	w.Tag(tag, value)
	return nil
}

func writeTransaction(w *Writer, tx entities.Transaction, sepaRaw bool) error {
	var dc string
	if tx.IsReversal {
		dc = tx.Direction.MTReversalCode()
	} else {
		dc = tx.Direction.MTCode()
	}
	line := dateutils.FormatMT6(tx.ValueDate)
	if !tx.BookingDate.IsZero() && !tx.BookingDate.Equal(tx.ValueDate) {
		line += tx.BookingDate.Format(dateutils.LayoutMT4)
	}
	line += dc
	if tx.CurrencyMark != "" {
		line += tx.CurrencyMark
	}
	line += currencyutils.FormatMT(tx.Amount.Amount)
	line += padTxCode(tx.TransactionCode)
	line += tx.Reference
	if tx.AccountServicerRef != "" {
		line += "//" + tx.AccountServicerRef
	}
	w.Tag("61", line)

	if payload := remittancePayload(tx, sepaRaw); payload != "" {
		if err := w.TagWrapped("86", payload); err != nil {
			return err
		}
	}
	return nil
}

func padTxCode(code string) string {
	if code == "" {
		logging.GetLogger().Debug("transaction carries no transaction code, defaulting field 61 subfield to NTRF")
		return "NTRF"
	}
	return code
}

func remittancePayload(tx entities.Transaction, sepaRaw bool) string {
	if tx.Remittance.IsStructured() {
		return encodeSepaSegments(tx.Remittance, sepaRaw)
	}
	return tx.Remittance.FullText()
}

// sepaSubTagMin and sepaSubTagMax bound the ?NN sub-field markers a
// GVC-coded payload's SWIFT variant packs each keyword segment behind;
// a payload carrying more segments than the range holds packs the
// remainder behind the final marker.
const (
	sepaSubTagMin = 20
	sepaSubTagMax = 29
)

// encodeSepaSegments re-renders decoded SEPA keyword fields back to a
// GVC-coded :86: payload: the leading 3-digit code followed by the
// "KEYWORD+value" segments, in the fixed order listed below.
// sepaRaw true (the MT940 DATEV variant) concatenates the segments
// verbatim; sepaRaw false (the plain SWIFT variant) packs each segment
// behind a sequential ?20-?29 sub-tag marker instead, since the decode
// side (stripSubFieldMarkers) strips any ?NN marker without regard to
// its number.
func encodeSepaSegments(r entities.RemittanceInformation, sepaRaw bool) string {
	code := r.GVCCode
	if code == "" {
		logging.GetLogger().Debug("structured remittance carries no GVC code, defaulting to 166")
		code = "166"
	}
	op := "pack"
	if sepaRaw {
		op = "verbatim"
	}
	logging.GetLogger().Debug("encoding structured SEPA remittance segments",
		logging.Field{Key: logging.FieldOperation, Value: op})

	order := []string{"EREF", "MREF", "SVWZ", "CRED", "DEBT", "KREF", "COAM", "OAMT", "BOOK", "PURP", "RRSN", "ABWA", "ABWE", "IBAN", "BIC", "AMD"}
	subTag := sepaSubTagMin
	out := code
	for _, key := range order {
		v, ok := r.Field(key)
		if !ok {
			continue
		}
		seg := key + "+" + v
		if sepaRaw {
			out += seg
			continue
		}
		out += fmt.Sprintf("?%d%s", subTag, seg)
		if subTag < sepaSubTagMax {
			subTag++
		}
	}
	return out
}
