package mtparser

import (
	"fmt"

	"finfmt/internal/codes"
	"finfmt/internal/currencyutils"
	"finfmt/internal/dateutils"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/logging"
	"finfmt/internal/money"
)

// ParseBalance decodes a :60F:/:62F:/:64:/:65:/:60M:/:62M: value into a
// Balance: dc_mark, six-digit date, 3-letter currency, and a comma-decimal
// amount, e.g. "C230101EUR1000,00".
func ParseBalance(tag, value string) (entities.Balance, error) {
	if len(value) < 10 {
		return entities.Balance{}, finerr.New(finerr.InvalidValue, tag, fmt.Sprintf("balance line too short: %q", value))
	}
	dir, _, ok := codes.DirectionFromMT(value[0:1])
	if !ok {
		return entities.Balance{}, finerr.New(finerr.InvalidValue, tag, fmt.Sprintf("invalid dc_mark %q", value[0:1]))
	}
	date, err := dateutils.ParseMT6(value[1:7])
	if err != nil {
		return entities.Balance{}, err
	}
	currency := value[7:10]
	amount, err := currencyutils.ParseMT(value[10:])
	if err != nil {
		return entities.Balance{}, finerr.New(finerr.InvalidValue, tag, err.Error())
	}
	return entities.Balance{
		Type:      balanceTypeForTag(tag),
		Direction: dir,
		Date:      date,
		Amount:    money.Money{Amount: amount, Currency: currency},
	}, nil
}

func balanceTypeForTag(tag string) entities.BalanceType {
	switch tag {
	case "60F", "60M":
		return entities.BalanceOpening
	case "62F", "62M":
		return entities.BalanceClosing
	case "64":
		return entities.BalanceClosingAvailable
	case "65":
		return entities.BalanceForwardAvailable
	default:
		logging.GetLogger().Debug("unrecognised balance tag, defaulting to opening balance",
			logging.Field{Key: "tag", Value: tag})
		return entities.BalanceOpening
	}
}
