package mtparser

import (
	"fmt"
	"strings"

	"finfmt/internal/codes"
	"finfmt/internal/currencyutils"
	"finfmt/internal/dateutils"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/logging"
	"finfmt/internal/money"
)

// ParseTransactionLine decodes a :61: value into a Transaction, inheriting
// Amount.Currency from the statement's opening balance (per the defined
// :61: currency-mark handling: the wire character is advisory, never
// authoritative). referenceYear anchors the optional four-digit booking
// date, which carries no year of its own.
func ParseTransactionLine(value string, statementCurrency string, referenceYear int) (entities.Transaction, error) {
	rest := value
	if len(rest) < 6 {
		return entities.Transaction{}, finerr.New(finerr.InvalidValue, "61", fmt.Sprintf("line too short: %q", value))
	}
	valueDate, err := dateutils.ParseMT6(rest[:6])
	if err != nil {
		return entities.Transaction{}, err
	}
	rest = rest[6:]

	var bookingDate = valueDate
	if len(rest) >= 4 && isAllDigits(rest[:4]) {
		bookingDate, err = dateutils.ParseMT4(rest[:4], referenceYear)
		if err != nil {
			return entities.Transaction{}, err
		}
		rest = rest[4:]
	}

	dcMark, rest, err := readDCMark(rest)
	if err != nil {
		return entities.Transaction{}, err
	}
	dir, reversal, ok := codes.DirectionFromMT(dcMark)
	if !ok {
		return entities.Transaction{}, finerr.New(finerr.InvalidValue, "61", fmt.Sprintf("invalid dc_mark %q", dcMark))
	}

	currencyMark := ""
	if len(rest) > 0 && isCurrencyChar(rest[0]) {
		currencyMark = rest[:1]
		rest = rest[1:]
	}

	amountStr, rest := readAmount(rest)
	amount, err := currencyutils.ParseMT(amountStr)
	if err != nil {
		return entities.Transaction{}, finerr.New(finerr.InvalidValue, "61", err.Error())
	}

	if len(rest) < 4 {
		return entities.Transaction{}, finerr.New(finerr.InvalidValue, "61", fmt.Sprintf("missing tx_code in %q", value))
	}
	txCode := rest[:4]
	rest = rest[4:]

	reference := rest
	bankRef := ""
	if idx := strings.Index(rest, "//"); idx >= 0 {
		reference = rest[:idx]
		bankRef = rest[idx+2:]
	}
	if nl := strings.IndexByte(bankRef, '\n'); nl >= 0 {
		bankRef = bankRef[:nl]
	}
	if nl := strings.IndexByte(reference, '\n'); nl >= 0 {
		reference = reference[:nl]
	}

	reference = strings.TrimSpace(reference)
	logging.GetLogger().Debug("parsed statement transaction line",
		logging.Field{Key: logging.FieldTransactionID, Value: reference})

	return entities.Transaction{
		Direction:          dir,
		IsReversal:         reversal,
		ValueDate:          valueDate,
		BookingDate:        bookingDate,
		Amount:             money.Money{Amount: amount, Currency: statementCurrency},
		CurrencyMark:       currencyMark,
		TransactionCode:    txCode,
		Reference:          reference,
		AccountServicerRef: strings.TrimSpace(bankRef),
	}, nil
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isCurrencyChar(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// readDCMark reads the 1-2 character dc_mark (C, D, RC, RD) from the front
// of rest.
func readDCMark(rest string) (mark string, remainder string, err error) {
	if len(rest) >= 2 && (rest[:2] == "RC" || rest[:2] == "RD") {
		return rest[:2], rest[2:], nil
	}
	if len(rest) >= 1 && (rest[0] == 'C' || rest[0] == 'D') {
		return rest[:1], rest[1:], nil
	}
	return "", rest, finerr.New(finerr.InvalidValue, "61", fmt.Sprintf("missing dc_mark in %q", rest))
}

// readAmount reads the comma-decimal amount run (digits and a single
// comma) from the front of rest, returning the amount text and remainder.
func readAmount(rest string) (amount string, remainder string) {
	i := 0
	for i < len(rest) && (rest[i] >= '0' && rest[i] <= '9' || rest[i] == ',') {
		i++
	}
	return rest[:i], rest[i:]
}
