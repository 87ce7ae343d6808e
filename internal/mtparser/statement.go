package mtparser

import (
	"finfmt/internal/builders"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/logging"
	"finfmt/internal/swiftmsg"
)

// ParseStatement parses a complete MT940/942/950/920 FIN message into a
// documents.StatementDocument. It ties together the five-block envelope
// lexer (swiftmsg), the tag-line reader and per-field grammars in this
// package, and the C6 persistent statement builder: swiftmsg.Parse splits
// the raw text into blocks, SplitTagLines reads block 4 into ordered tag
// lines, and each recognised tag feeds the matching With*/Add* builder
// call, exactly the "parser reads tag lines into an ordered mapping and
// then dispatches to a type-specific reader" flow spec §4.4.2 describes.
// referenceYear anchors :61:'s optional four-digit booking date.
func ParseStatement(raw string, referenceYear int) (documents.StatementDocument, error) {
	logging.GetLogger().Debug("parsing FIN statement message",
		logging.Field{Key: logging.FieldParser, Value: "mtparser.ParseStatement"})

	msg, err := swiftmsg.Parse(raw)
	if err != nil {
		return documents.StatementDocument{}, err
	}
	lines := SplitTagLines(msg.Block4)

	b := builders.NewStatementBuilder()
	statementCurrency := ""
	var pendingTx *entities.Transaction

	flushPendingTx := func() {
		if pendingTx != nil {
			b = b.AddTransaction(*pendingTx)
			pendingTx = nil
		}
	}

	for _, line := range lines {
		switch line.Tag {
		case "20":
			b = b.WithMessageID(line.Value)
		case "25", "25P":
			b = b.WithAccount(entities.FromIdentifier(line.Value))
		case "28C", "28":
			b = b.WithSequenceNumber(line.Value)
		case "60F", "60M":
			flushPendingTx()
			bal, err := ParseBalance(line.Tag, line.Value)
			if err != nil {
				return documents.StatementDocument{}, err
			}
			statementCurrency = bal.Amount.Currency
			b = b.WithOpeningBalance(bal.Direction, bal.Date, bal.Amount)
			b = b.WithCurrency(statementCurrency)
		case "61":
			flushPendingTx()
			tx, err := ParseTransactionLine(line.Value, statementCurrency, referenceYear)
			if err != nil {
				return documents.StatementDocument{}, err
			}
			pendingTx = &tx
		case "86":
			if pendingTx != nil {
				pendingTx.Remittance = ParseTransactionRemittance(line.Value)
			}
			// A standalone/trailing :86: (statement-level information,
			// not preceded by :61:) carries no entity to attach to and
			// is intentionally dropped, per spec §4.4.2.
		case "62F", "62M":
			flushPendingTx()
			bal, err := ParseBalance(line.Tag, line.Value)
			if err != nil {
				return documents.StatementDocument{}, err
			}
			b = b.WithClosingBalance(bal.Direction, bal.Date, bal.Amount)
		case "64", "65", "90D", "90C":
			// Available-balance and MT942 debit/credit summary lines are
			// derivable from the entries already accumulated (spec §3.4)
			// and carry no additional state the builder needs.
		}
	}
	flushPendingTx()

	return b.Build()
}
