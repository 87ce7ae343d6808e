// Package iso20022gen implements C5.2: the CAMT/pain XML generators. Each
// generator initialises the root Document element with the namespace
// from internal/version, opens the family-specific root child, emits the
// group header, and walks the document with internal/xmlbuilder's
// streaming element API. Optional subtrees are omitted when the
// corresponding entity field is absent; no empty element is emitted.
package iso20022gen

import (
	"time"

	"finfmt/internal/dateutils"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/logging"
	"finfmt/internal/version"
	"finfmt/internal/xmlbuilder"
)

// StatementGenerator renders a documents.StatementDocument as camt.053
// (statement), camt.052 (report), or camt.054 (notification) XML,
// selected by TypeCode ("052"/"053"/"054"). Version, when empty, resolves
// to the type's default release via internal/version.
type StatementGenerator struct {
	TypeCode string
	Version  string
}

var _ documents.StatementGenerator = StatementGenerator{}

func (g StatementGenerator) GenerateStatement(d documents.StatementDocument) (string, error) {
	typeCode := g.TypeCode
	if typeCode == "" {
		logging.GetLogger().Debug("no camt type code given, defaulting to camt.053")
		typeCode = "053"
	}
	ns, err := version.ResolveNamespace(version.FamilyCamt, typeCode, g.Version)
	if err != nil {
		return "", err
	}

	b := xmlbuilder.New().Root("Document", ns)
	rootChild := statementRootChild(typeCode)
	b.Open(rootChild)
	b.Open("GrpHdr")
	b.Elem("MsgId", d.MessageID)
	if !d.CreationDateTime.IsZero() {
		b.Elem("CreDtTm", formatDateTime(d.CreationDateTime))
	}
	b.Close() // GrpHdr

	stmtTag := statementTag(typeCode)
	b.Open(stmtTag)
	b.Elem("Id", firstNonEmptyID(d.MessageID))
	if d.SequenceNumber != "" {
		b.Elem("ElctrncSeqNb", d.SequenceNumber)
	}
	writeAccount(b, d.Account, d.Currency, d.AccountOwner, d.AccountServicerBIC)

	if !d.OpeningBalance.IsZero() {
		writeBalance(b, "OPBD", d.OpeningBalance)
	}
	if !d.ClosingBalance.IsZero() {
		writeBalance(b, "CLBD", d.ClosingBalance)
	}

	for _, e := range d.Entries {
		writeEntry(b, e)
	}
	for _, tx := range d.Transactions {
		writeEntryFromTransaction(b, tx)
	}

	b.Close() // Stmt/Rpt/Ntfctn
	b.Close() // BkToCstmrStmt/...

	return b.String()
}

func statementRootChild(typeCode string) string {
	switch typeCode {
	case "052":
		return "BkToCstmrAcctRpt"
	case "054":
		return "BkToCstmrDbtCdtNtfctn"
	default:
		return "BkToCstmrStmt"
	}
}

func statementTag(typeCode string) string {
	switch typeCode {
	case "052":
		return "Rpt"
	case "054":
		return "Ntfctn"
	default:
		return "Stmt"
	}
}

func firstNonEmptyID(id string) string {
	if id == "" {
		return "NOTPROVIDED"
	}
	return id
}

func formatDateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func writeAccount(b *xmlbuilder.Builder, acct entities.AccountIdentification, currency string, owner entities.Party, servicerBIC string) {
	b.Open("Acct")
	b.Open("Id")
	writeAccountID(b, acct)
	b.Close() // Id
	if currency != "" {
		b.Elem("Ccy", currency)
	}
	if owner.HasName() {
		b.Open("Ownr")
		b.Elem("Nm", owner.Name)
		b.Close()
	}
	if servicerBIC != "" {
		b.Open("Svcr")
		b.Open("FinInstnId")
		b.Elem("BIC", servicerBIC)
		b.Close()
		b.Close()
	}
	b.Close() // Acct
}

// writeAccountID applies the account identification policy from spec
// §4.5.2: a structurally IBAN-shaped identifier is emitted as <IBAN>;
// anything else as <Othr><Id>.
func writeAccountID(b *xmlbuilder.Builder, acct entities.AccountIdentification) {
	if entities.LooksLikeIBAN(acct.Identifier()) {
		b.Elem("IBAN", acct.Identifier())
		return
	}
	b.Open("Othr")
	b.Elem("Id", acct.Identifier())
	b.Close()
}

func writeBalance(b *xmlbuilder.Builder, typeCode string, bal entities.Balance) {
	b.Open("Bal")
	b.Open("Tp")
	b.Open("CdOrPrtry")
	b.Elem("Cd", typeCode)
	b.Close()
	b.Close()
	b.Open("Amt")
	b.Attr("Ccy", bal.Amount.Currency)
	b.Text(bal.Amount.Amount.StringFixed(2))
	b.Close()
	b.Elem("CdtDbtInd", bal.Direction.CAMTCode())
	b.Open("Dt")
	b.Elem("Dt", dateutils.FormatISO(bal.Date))
	b.Close()
	b.Close() // Bal
}

func writeEntry(b *xmlbuilder.Builder, e entities.Entry) {
	b.Open("Ntry")
	if e.EntryReference != "" {
		b.Elem("NtryRef", e.EntryReference)
	}
	b.Open("Amt")
	b.Attr("Ccy", e.Amount.Currency)
	b.Text(e.Amount.Amount.Abs().StringFixed(2))
	b.Close()
	b.Elem("CdtDbtInd", e.Direction.CAMTCode())
	if e.IsReversal {
		b.Elem("RvslInd", "true")
	}
	if e.Status != "" {
		b.Elem("Sts", e.Status)
	}
	if !e.BookingDate.IsZero() {
		b.Open("BookgDt")
		b.Elem("Dt", dateutils.FormatISO(e.BookingDate))
		b.Close()
	}
	if !e.ValueDate.IsZero() {
		b.Open("ValDt")
		b.Elem("Dt", dateutils.FormatISO(e.ValueDate))
		b.Close()
	}
	if e.AccountServicerRef != "" {
		b.Elem("AcctSvcrRef", e.AccountServicerRef)
	}
	if e.BankTransactionCode.Domain != "" {
		b.Open("BkTxCd")
		b.Open("Domn")
		b.Elem("Cd", e.BankTransactionCode.Domain)
		b.Open("Fmly")
		b.Elem("Cd", e.BankTransactionCode.Family)
		if e.BankTransactionCode.SubFamily != "" {
			b.Elem("SubFmlyCd", e.BankTransactionCode.SubFamily)
		}
		b.Close() // Fmly
		b.Close() // Domn
		b.Close() // BkTxCd
	}
	writeNtryDtls(b, e)
	if e.AdditionalInfo != "" {
		b.Elem("AddtlNtryInf", e.AdditionalInfo)
	}
	b.Close() // Ntry
}

func writeNtryDtls(b *xmlbuilder.Builder, e entities.Entry) {
	if e.EndToEndID == "" && e.InstructionID == "" && e.MandateID == "" &&
		!e.Debtor.IsValid() && !e.Creditor.IsValid() && !e.Remittance.IsStructured() && len(e.Remittance.Unstructured) == 0 {
		return
	}
	b.Open("NtryDtls")
	b.Open("TxDtls")
	if e.EndToEndID != "" || e.InstructionID != "" || e.MandateID != "" {
		b.Open("Refs")
		if e.EndToEndID != "" {
			b.Elem("EndToEndId", e.EndToEndID)
		}
		if e.InstructionID != "" {
			b.Elem("InstrId", e.InstructionID)
		}
		if e.MandateID != "" {
			b.Elem("MndtId", e.MandateID)
		}
		b.Close()
	}
	if e.Debtor.IsValid() || e.Creditor.IsValid() {
		b.Open("RltdPties")
		if e.Debtor.IsValid() {
			b.Open("Dbtr")
			b.Elem("Nm", e.Debtor.Name)
			b.Close()
		}
		if e.Creditor.IsValid() {
			b.Open("Cdtr")
			b.Elem("Nm", e.Creditor.Name)
			b.Close()
		}
		b.Close() // RltdPties
	}
	for _, line := range e.Remittance.Unstructured {
		b.Open("RmtInf")
		b.Elem("Ustrd", line)
		b.Close()
	}
	b.Close() // TxDtls
	b.Close() // NtryDtls
}

// writeEntryFromTransaction converts an MT940/942 statement Transaction
// into the same Ntry shape, so an MT-sourced statement can be re-rendered
// as CAMT without a separate code path.
func writeEntryFromTransaction(b *xmlbuilder.Builder, tx entities.Transaction) {
	writeEntry(b, entities.Entry{
		Direction:          tx.Direction,
		IsReversal:         tx.IsReversal,
		Amount:             tx.Amount,
		BookingDate:        tx.BookingDate,
		ValueDate:          tx.ValueDate,
		AccountServicerRef: tx.AccountServicerRef,
		EndToEndID:         tx.Reference,
		AdditionalInfo:     tx.AdditionalInfo,
		Remittance:         tx.Remittance,
	})
}
