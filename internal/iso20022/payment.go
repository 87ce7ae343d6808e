package iso20022

import (
	"fmt"

	"gopkg.in/xmlpath.v2"

	"finfmt/internal/codes"
	"finfmt/internal/dateutils"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/money"
	"finfmt/internal/xmlutils"
)

// ReadPaymentInitiation parses a pain.001 (credit transfer initiation) or
// pain.008 (direct debit initiation) document into a
// PaymentInitiationDocument. Both are read through the same
// PmtInf/transaction path; the mandate a pain.008 transaction carries is
// not read.
func ReadPaymentInitiation(xml string) (documents.PaymentInitiationDocument, error) {
	root, err := xmlutils.Parse(xml)
	if err != nil {
		return documents.PaymentInitiationDocument{}, finerr.New(finerr.Lex, "", err.Error())
	}

	painType, _ := codes.PainTypeFromXML(xml)
	rootPath := paymentInitiationNodePath(painType)
	rootNodes, err := xmlutils.Nodes(root, rootPath)
	if err != nil || len(rootNodes) == 0 {
		return documents.PaymentInitiationDocument{}, finerr.New(finerr.MissingField, rootPath, "root element not found")
	}
	initn := rootNodes[0]

	var doc documents.PaymentInitiationDocument

	msgID, ok := xmlutils.First(initn, "GrpHdr/MsgId")
	if !ok {
		return doc, finerr.New(finerr.MissingField, "GrpHdr/MsgId", "mandatory message id absent")
	}
	doc.Header.MessageID = msgID
	if v, ok := xmlutils.First(initn, "GrpHdr/CreDtTm"); ok {
		doc.Header.CreationDateTime, _ = dateutils.ParseISO(v)
	}
	if v, ok := xmlutils.First(initn, "GrpHdr/NbOfTxs"); ok {
		fmt.Sscanf(v, "%d", &doc.Header.NumberOfTransactions)
	}
	if v, ok := xmlutils.First(initn, "GrpHdr/InitgPty/Nm"); ok {
		doc.Header.InitiatingParty = entities.NewParty(v)
	}

	ctrlSumCcy := ""
	pmtInfNodes, err := xmlutils.Nodes(initn, "PmtInf")
	if err != nil {
		return doc, finerr.New(finerr.Lex, rootPath+"/PmtInf", err.Error())
	}
	for i, pi := range pmtInfNodes {
		instruction, currency, err := readPaymentInstruction(pi)
		if err != nil {
			return doc, finerr.New(finerr.MissingField, fmt.Sprintf("PmtInf[%d]", i), err.Error())
		}
		if ctrlSumCcy == "" {
			ctrlSumCcy = currency
		}
		doc.Instructions = append(doc.Instructions, instruction)
	}

	if v, ok := xmlutils.First(initn, "GrpHdr/CtrlSum"); ok {
		if amt, err := money.NewFromString(v, ctrlSumCcy); err == nil {
			doc.Header.ControlSum = amt
		}
	}

	return doc, nil
}

func paymentInitiationNodePath(t codes.PainType) string {
	switch t {
	case codes.Pain008:
		return "//CstmrDrctDbtInitn"
	default:
		return "//CstmrCdtTrfInitn"
	}
}

func readPaymentInstruction(pi *xmlpath.Node) (entities.PaymentInstruction, string, error) {
	var instr entities.PaymentInstruction

	id, ok := xmlutils.First(pi, "PmtInfId")
	if !ok {
		return instr, "", fmt.Errorf("PmtInfId absent")
	}
	instr.PaymentInformationID = id
	if v, ok := xmlutils.First(pi, "PmtMtd"); ok {
		instr.PaymentMethod = v
	}
	if v, ok := xmlutils.First(pi, "ReqdExctnDt/Dt"); ok {
		instr.RequestedExecutionDate, _ = dateutils.ParseISO(v)
	} else if v, ok := xmlutils.First(pi, "ReqdExctnDt"); ok {
		instr.RequestedExecutionDate, _ = dateutils.ParseISO(v)
	}
	if v, ok := xmlutils.First(pi, "ChrgBr"); ok {
		instr.ChargeBearer = v
	}
	if v, ok := xmlutils.First(pi, "Dbtr/Nm"); ok {
		instr.Debtor = entities.NewParty(v)
	}
	if v, ok := xmlutils.First(pi, "DbtrAcct/Id/IBAN"); ok {
		instr.DebtorAccount = entities.NewIBANAccount(v)
	}
	if v, ok := xmlutils.First(pi, "DbtrAgt/FinInstnId/BIC"); ok {
		instr.DebtorAgent = entities.FromBIC(v)
	}

	currency := ""
	txNodes, err := xmlutils.Nodes(pi, "CdtTrfTxInf")
	if err != nil {
		return instr, "", err
	}
	if len(txNodes) == 0 {
		txNodes, err = xmlutils.Nodes(pi, "DrctDbtTxInf")
		if err != nil {
			return instr, "", err
		}
	}
	for i, txNode := range txNodes {
		tx, err := readPaymentTransaction(txNode)
		if err != nil {
			return instr, "", fmt.Errorf("transaction %d: %w", i, err)
		}
		if currency == "" {
			currency = tx.Amount.Currency
		}
		instr.Transactions = append(instr.Transactions, tx)
	}

	return instr, currency, nil
}

func readPaymentTransaction(n *xmlpath.Node) (entities.PaymentTransaction, error) {
	var tx entities.PaymentTransaction

	if v, ok := xmlutils.First(n, "PmtId/InstrId"); ok {
		tx.PaymentID.InstructionID = v
	}
	endToEnd, ok := xmlutils.First(n, "PmtId/EndToEndId")
	if !ok {
		return tx, fmt.Errorf("PmtId/EndToEndId absent")
	}
	tx.PaymentID.EndToEndID = endToEnd
	if v, ok := xmlutils.First(n, "PmtId/UETR"); ok {
		tx.PaymentID.UETR = v
	}

	amtStr, ok := xmlutils.First(n, "Amt/InstdAmt")
	if !ok {
		return tx, fmt.Errorf("Amt/InstdAmt absent")
	}
	ccy, _ := xmlutils.First(n, "Amt/InstdAmt/@Ccy")
	amount, err := money.NewFromString(amtStr, ccy)
	if err != nil {
		return tx, fmt.Errorf("invalid instructed amount %q: %w", amtStr, err)
	}
	tx.Amount = amount

	if v, ok := xmlutils.First(n, "CdtrAgt/FinInstnId/BIC"); ok {
		tx.CreditorAgent = entities.FromBIC(v)
	}
	if v, ok := xmlutils.First(n, "Cdtr/Nm"); ok {
		tx.Creditor = entities.NewParty(v)
	}
	if v, ok := xmlutils.First(n, "CdtrAcct/Id/IBAN"); ok {
		tx.CreditorAccount = entities.NewIBANAccount(v)
	}
	if v, ok := xmlutils.First(n, "Purp/Cd"); ok {
		tx.PurposeCode = v
	}

	ustrd, err := xmlutils.Nodes(n, "RmtInf/Ustrd")
	if err == nil && len(ustrd) > 0 {
		var lines []string
		for _, u := range ustrd {
			lines = append(lines, u.String())
		}
		tx.RemittanceInfo = entities.RemittanceInformation{Unstructured: lines}
	}

	return tx, nil
}

// ReadStatusReport parses a pain.002 (payment status report) document.
func ReadStatusReport(xml string) (documents.StatusReportDocument, error) {
	root, err := xmlutils.Parse(xml)
	if err != nil {
		return documents.StatusReportDocument{}, finerr.New(finerr.Lex, "", err.Error())
	}
	rpts, err := xmlutils.Nodes(root, "//CstmrPmtStsRpt")
	if err != nil || len(rpts) == 0 {
		return documents.StatusReportDocument{}, finerr.New(finerr.MissingField, "CstmrPmtStsRpt", "root element not found")
	}
	rpt := rpts[0]

	var doc documents.StatusReportDocument
	if v, ok := xmlutils.First(rpt, "GrpHdr/MsgId"); ok {
		doc.Header.MessageID = v
	}
	if v, ok := xmlutils.First(rpt, "OrgnlGrpInfAndSts/OrgnlMsgId"); ok {
		doc.OriginalMessageID = v
	}
	if v, ok := xmlutils.First(rpt, "OrgnlGrpInfAndSts/OrgnlNbOfTxs"); ok {
		fmt.Sscanf(v, "%d", &doc.OriginalNbOfTxs)
	}
	if v, ok := xmlutils.First(rpt, "OrgnlGrpInfAndSts/GrpSts"); ok {
		doc.GroupStatus = v
	}

	statuses, err := xmlutils.Nodes(rpt, "OrgnlPmtInfAndSts/TxInfAndSts")
	if err != nil {
		return doc, finerr.New(finerr.Lex, "TxInfAndSts", err.Error())
	}
	for _, s := range statuses {
		ts := documents.TransactionStatus{}
		if v, ok := xmlutils.First(s, "OrgnlInstrId"); ok {
			ts.OriginalInstructionID = v
		}
		if v, ok := xmlutils.First(s, "OrgnlEndToEndId"); ok {
			ts.OriginalEndToEndID = v
		}
		if v, ok := xmlutils.First(s, "TxSts"); ok {
			ts.Status = v
		}
		if v, ok := xmlutils.First(s, "StsRsnInf/Rsn/Cd"); ok {
			ts.ReasonCode = v
		}
		if v, ok := xmlutils.First(s, "StsRsnInf/AddtlInf"); ok {
			ts.AdditionalInfo = v
		}
		doc.TransactionStatuses = append(doc.TransactionStatuses, ts)
	}

	return doc, nil
}
