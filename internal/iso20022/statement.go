// Package iso20022 implements C4.3: the CAMT/pain XML readers. Each
// reader selects a handler by namespace match (via internal/codes), then
// walks the document tree shape-by-shape with internal/xmlutils,
// constructing the internal/entities and internal/documents values the
// rest of the module works with. Readers are tolerant of attribute
// ordering and insignificant whitespace but strict about required
// elements: a missing mandatory element produces a finerr.Error
// identifying the element path, never a silent zero value.
package iso20022

import (
	"fmt"

	"gopkg.in/xmlpath.v2"

	"finfmt/internal/codes"
	"finfmt/internal/dateutils"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/logging"
	"finfmt/internal/money"
	"finfmt/internal/xmlutils"
)

// ReadStatement parses a camt.052 (account report), camt.053 (account
// statement), or camt.054 (debit/credit notification) document into a
// StatementDocument. All three share the same Ntry shape once their
// differently-named root child is located.
func ReadStatement(xml string) (documents.StatementDocument, error) {
	root, err := xmlutils.Parse(xml)
	if err != nil {
		return documents.StatementDocument{}, finerr.New(finerr.Lex, "", err.Error())
	}

	stmtType, _ := codes.CamtTypeFromXML(xml)
	stmtPath := statementNodePath(stmtType)
	stmts, err := xmlutils.Nodes(root, stmtPath)
	if err != nil || len(stmts) == 0 {
		return documents.StatementDocument{}, finerr.New(finerr.MissingField, stmtPath, "no statement/report/notification element found")
	}
	stmt := stmts[0]

	doc := documents.StatementDocument{}

	msgID, ok := xmlutils.First(root, "//GrpHdr/MsgId")
	if !ok {
		return doc, finerr.New(finerr.MissingField, "GrpHdr/MsgId", "mandatory message id absent")
	}
	doc.MessageID = msgID
	if v, ok := xmlutils.First(root, "//GrpHdr/CreDtTm"); ok {
		if t, err := dateutils.ParseISO(v); err == nil {
			doc.CreationDateTime = t
		}
	}

	if v, ok := xmlutils.First(stmt, "Acct/Id/IBAN"); ok {
		doc.Account = entities.NewIBANAccount(v)
	} else if v, ok := xmlutils.First(stmt, "Acct/Id/Othr/Id"); ok {
		doc.Account = entities.NewOtherAccount(v, "")
	}
	if v, ok := xmlutils.First(stmt, "Acct/Ownr/Nm"); ok {
		doc.AccountOwner = entities.NewParty(v)
	}
	if v, ok := xmlutils.First(stmt, "Acct/Svcr/FinInstnId/BIC"); ok {
		doc.AccountServicerBIC = v
	}
	if v, ok := xmlutils.First(stmt, "Acct/Ccy"); ok {
		doc.Currency = v
	}
	if v, ok := xmlutils.First(stmt, "ElctrncSeqNb"); ok {
		doc.SequenceNumber = v
	}

	if bal, ok := readBalance(stmt, "OPBD"); ok {
		doc.OpeningBalance = bal
		if doc.Currency == "" {
			doc.Currency = bal.Amount.Currency
		}
	}
	if bal, ok := readBalance(stmt, "CLBD"); ok {
		doc.ClosingBalance = bal
		if doc.Currency == "" {
			doc.Currency = bal.Amount.Currency
		}
	}

	entryNodes, err := xmlutils.Nodes(stmt, "Ntry")
	if err != nil {
		return doc, finerr.New(finerr.Lex, stmtPath+"/Ntry", err.Error())
	}
	for i, n := range entryNodes {
		entry, err := readEntry(n, doc.Currency)
		if err != nil {
			return doc, finerr.New(finerr.MissingField, fmt.Sprintf("Ntry[%d]", i), err.Error())
		}
		doc.Entries = append(doc.Entries, entry)
	}

	return doc, nil
}

func statementNodePath(t codes.CamtType) string {
	switch t {
	case codes.Camt052:
		return "//BkToCstmrAcctRpt/Rpt"
	case codes.Camt054:
		return "//BkToCstmrDbtCdtNtfctn/Ntfctn"
	case codes.Camt053:
		return "//BkToCstmrStmt/Stmt"
	default:
		logging.GetLogger().Debug("unrecognised camt type, defaulting to camt.053 node path",
			logging.Field{Key: logging.FieldReason, Value: "unknown codes.CamtType"})
		return "//BkToCstmrStmt/Stmt"
	}
}

// readBalance locates the Bal element whose Tp/CdOrPrtry/Cd matches
// typeCode and decodes its amount/direction/date.
func readBalance(stmt *xmlpath.Node, typeCode string) (entities.Balance, bool) {
	bals, err := xmlutils.Nodes(stmt, "Bal")
	if err != nil {
		return entities.Balance{}, false
	}
	for _, b := range bals {
		code, ok := xmlutils.First(b, "Tp/CdOrPrtry/Cd")
		if !ok || code != typeCode {
			continue
		}
		balType, _ := entities.BalanceTypeFromCAMTCode(typeCode)
		amtStr, _ := xmlutils.First(b, "Amt")
		ccy, _ := xmlutils.First(b, "Amt/@Ccy")
		dir, _ := xmlutils.First(b, "CdtDbtInd")
		dateStr, _ := xmlutils.First(b, "Dt/Dt")
		direction, _ := codes.DirectionFromCAMT(dir)
		amount, err := money.NewFromString(amtStr, ccy)
		if err != nil {
			return entities.Balance{}, false
		}
		date, _ := dateutils.ParseISO(dateStr)
		return entities.Balance{
			Type:      balType,
			Direction: direction,
			Date:      date,
			Amount:    amount,
		}, true
	}
	return entities.Balance{}, false
}

// readEntry decodes one Ntry element (plus its NtryDtls/TxDtls child,
// when present) into an Entry. statementCurrency backs the entry's
// amount currency when the Amt element carries no Ccy attribute of its
// own, which does not happen in conformant CAMT but is tolerated here.
func readEntry(n *xmlpath.Node, statementCurrency string) (entities.Entry, error) {
	e := entities.Entry{}

	amtStr, ok := xmlutils.First(n, "Amt")
	if !ok {
		return e, fmt.Errorf("Amt element absent")
	}
	ccy, ok := xmlutils.First(n, "Amt/@Ccy")
	if !ok {
		logging.GetLogger().Debug("entry Amt carries no Ccy attribute, falling back to statement currency",
			logging.Field{Key: logging.FieldReason, Value: "missing Amt/@Ccy"},
			logging.Field{Key: "statement_currency", Value: statementCurrency})
		ccy = statementCurrency
	}
	amount, err := money.NewFromString(amtStr, ccy)
	if err != nil {
		return e, fmt.Errorf("invalid entry amount %q: %w", amtStr, err)
	}
	e.Amount = amount

	dirStr, ok := xmlutils.First(n, "CdtDbtInd")
	if !ok {
		return e, fmt.Errorf("CdtDbtInd element absent")
	}
	direction, ok := codes.DirectionFromCAMT(dirStr)
	if !ok {
		return e, fmt.Errorf("unrecognised CdtDbtInd %q", dirStr)
	}
	e.Direction = direction

	if v, ok := xmlutils.First(n, "RvslInd"); ok {
		e.IsReversal = v == "true" || v == "1"
	}
	if v, ok := xmlutils.First(n, "Sts"); ok {
		e.Status = v
	} else if v, ok := xmlutils.First(n, "Sts/Cd"); ok {
		e.Status = v
	}
	if v, ok := xmlutils.First(n, "BookgDt/Dt"); ok {
		e.BookingDate, _ = dateutils.ParseISO(v)
	} else if v, ok := xmlutils.First(n, "BookgDt/DtTm"); ok {
		e.BookingDate, _ = dateutils.ParseISO(v)
	}
	if v, ok := xmlutils.First(n, "ValDt/Dt"); ok {
		e.ValueDate, _ = dateutils.ParseISO(v)
	} else if v, ok := xmlutils.First(n, "ValDt/DtTm"); ok {
		e.ValueDate, _ = dateutils.ParseISO(v)
	}
	if v, ok := xmlutils.First(n, "AcctSvcrRef"); ok {
		e.AccountServicerRef = v
	}
	if v, ok := xmlutils.First(n, "NtryRef"); ok {
		e.EntryReference = v
	}
	if v, ok := xmlutils.First(n, "AddtlNtryInf"); ok {
		e.AdditionalInfo = v
	}

	domain, _ := xmlutils.First(n, "BkTxCd/Domn/Cd")
	family, _ := xmlutils.First(n, "BkTxCd/Domn/Fmly/Cd")
	subFamily, _ := xmlutils.First(n, "BkTxCd/Domn/Fmly/SubFmlyCd")
	e.BankTransactionCode = codes.BankTransactionCode{Domain: domain, Family: family, SubFamily: subFamily}

	const txDtls = "NtryDtls/TxDtls"
	if v, ok := xmlutils.First(n, txDtls+"/Refs/EndToEndId"); ok {
		e.EndToEndID = v
	}
	if v, ok := xmlutils.First(n, txDtls+"/Refs/InstrId"); ok {
		e.InstructionID = v
	}
	if v, ok := xmlutils.First(n, txDtls+"/Refs/MndtId"); ok {
		e.MandateID = v
	}
	if v, ok := xmlutils.First(n, txDtls+"/RtrInf/Rsn/Cd"); ok {
		e.ReturnReason = v
	}
	if v, ok := xmlutils.First(n, txDtls+"/Purp/Cd"); ok {
		e.PurposeCode = v
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdAgts/DbtrAgt/FinInstnId/BIC"); ok {
		e.DebtorAgent = entities.FromBIC(v)
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdAgts/CdtrAgt/FinInstnId/BIC"); ok {
		e.CreditorAgent = entities.FromBIC(v)
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdPties/Dbtr/Nm"); ok {
		e.Debtor = entities.NewParty(v)
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdPties/Cdtr/Nm"); ok {
		e.Creditor = entities.NewParty(v)
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdPties/DbtrAcct/Id/IBAN"); ok {
		e.DebtorAccount = entities.NewIBANAccount(v)
	}
	if v, ok := xmlutils.First(n, txDtls+"/RltdPties/CdtrAcct/Id/IBAN"); ok {
		e.CreditorAccount = entities.NewIBANAccount(v)
	}

	ustrd, err := xmlutils.Nodes(n, txDtls+"/RmtInf/Ustrd")
	if err == nil && len(ustrd) > 0 {
		var lines []string
		for _, u := range ustrd {
			lines = append(lines, u.String())
		}
		e.Remittance = entities.RemittanceInformation{Unstructured: lines}
	}

	return e, nil
}
