package iso20022gen

import (
	"fmt"

	"finfmt/internal/dateutils"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/logging"
	"finfmt/internal/version"
	"finfmt/internal/xmlbuilder"
)

// PaymentGenerator renders a documents.PaymentInitiationDocument as
// pain.001 (credit transfer) or pain.008 (direct debit) XML, selected by
// TypeCode ("001"/"008").
type PaymentGenerator struct {
	TypeCode string
	Version  string
}

var _ documents.PaymentGenerator = PaymentGenerator{}

func (g PaymentGenerator) GeneratePayment(d documents.PaymentInitiationDocument) (string, error) {
	typeCode := g.TypeCode
	if typeCode == "" {
		logging.GetLogger().Debug("no pain type code given, defaulting to pain.001")
		typeCode = "001"
	}
	ns, err := version.ResolveNamespace(version.FamilyPain, typeCode, g.Version)
	if err != nil {
		return "", err
	}

	b := xmlbuilder.New().Root("Document", ns)
	rootChild := paymentRootChild(typeCode)
	b.Open(rootChild)

	b.Open("GrpHdr")
	b.Elem("MsgId", d.Header.MessageID)
	b.Elem("CreDtTm", formatDateTime(d.Header.CreationDateTime))
	b.Elem("NbOfTxs", fmt.Sprintf("%d", d.Header.NumberOfTransactions))
	if !d.Header.ControlSum.IsZero() {
		b.Elem("CtrlSum", d.Header.ControlSum.Amount.StringFixed(2))
	}
	if d.Header.InitiatingParty.HasName() {
		b.Open("InitgPty")
		b.Elem("Nm", d.Header.InitiatingParty.Name)
		b.Close()
	}
	b.Close() // GrpHdr

	txTag := transactionTag(typeCode)
	for _, pi := range d.Instructions {
		writePaymentInstruction(b, pi, txTag)
	}

	b.Close() // CstmrCdtTrfInitn / CstmrDrctDbtInitn

	return b.String()
}

func paymentRootChild(typeCode string) string {
	if typeCode == "008" {
		return "CstmrDrctDbtInitn"
	}
	return "CstmrCdtTrfInitn"
}

func transactionTag(typeCode string) string {
	if typeCode == "008" {
		return "DrctDbtTxInf"
	}
	return "CdtTrfTxInf"
}

func writePaymentInstruction(b *xmlbuilder.Builder, pi entities.PaymentInstruction, txTag string) {
	b.Open("PmtInf")
	b.Elem("PmtInfId", pi.PaymentInformationID)
	if pi.PaymentMethod != "" {
		b.Elem("PmtMtd", pi.PaymentMethod)
	}
	if !pi.RequestedExecutionDate.IsZero() {
		b.Open("ReqdExctnDt")
		b.Elem("Dt", dateutils.FormatISO(pi.RequestedExecutionDate))
		b.Close()
	}
	if pi.ChargeBearer != "" {
		b.Elem("ChrgBr", pi.ChargeBearer)
	}
	if pi.Debtor.HasName() {
		b.Open("Dbtr")
		b.Elem("Nm", pi.Debtor.Name)
		b.Close()
	}
	if !pi.DebtorAccount.IsEmpty() {
		b.Open("DbtrAcct")
		b.Open("Id")
		writeAccountID(b, pi.DebtorAccount)
		b.Close()
		b.Close()
	}
	if pi.DebtorAgent.BIC != "" {
		b.Open("DbtrAgt")
		b.Open("FinInstnId")
		b.Elem("BIC", pi.DebtorAgent.BIC)
		b.Close()
		b.Close()
	}

	for _, tx := range pi.Transactions {
		writePaymentTransaction(b, tx, txTag)
	}

	b.Close() // PmtInf
}

func writePaymentTransaction(b *xmlbuilder.Builder, tx entities.PaymentTransaction, txTag string) {
	b.Open(txTag)
	b.Open("PmtId")
	if tx.PaymentID.InstructionID != "" {
		b.Elem("InstrId", tx.PaymentID.InstructionID)
	}
	b.Elem("EndToEndId", tx.PaymentID.EndToEndID)
	if tx.PaymentID.UETR != "" {
		b.Elem("UETR", tx.PaymentID.UETR)
	}
	b.Close() // PmtId

	b.Open("Amt")
	b.Open("InstdAmt")
	b.Attr("Ccy", tx.Amount.Currency)
	b.Text(tx.Amount.Amount.StringFixed(2))
	b.Close()
	b.Close() // Amt

	if tx.CreditorAgent.BIC != "" {
		b.Open("CdtrAgt")
		b.Open("FinInstnId")
		b.Elem("BIC", tx.CreditorAgent.BIC)
		b.Close()
		b.Close()
	}
	if tx.Creditor.HasName() {
		b.Open("Cdtr")
		b.Elem("Nm", tx.Creditor.Name)
		b.Close()
	}
	if !tx.CreditorAccount.IsEmpty() {
		b.Open("CdtrAcct")
		b.Open("Id")
		writeAccountID(b, tx.CreditorAccount)
		b.Close()
		b.Close()
	}
	if tx.PurposeCode != "" {
		b.Open("Purp")
		b.Elem("Cd", tx.PurposeCode)
		b.Close()
	}
	for _, line := range tx.RemittanceInfo.Unstructured {
		b.Open("RmtInf")
		b.Elem("Ustrd", line)
		b.Close()
	}

	b.Close() // CdtTrfTxInf / DrctDbtTxInf
}
