package txwatch

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is the number of decimals between wei and ether.
const DefaultDecimals int32 = 18

// FormatUnits renders an integer amount of the smallest unit as an exact
// decimal string in the display unit. Trailing zeros are trimmed but at
// least one fractional digit is kept, so 0 renders as "0.0". A nil amount
// renders as "0.0".
func FormatUnits(v *big.Int, decimals int32) string {
	if v == nil {
		return "0.0"
	}

	s := decimal.NewFromBigInt(v, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Formatter builds ClassifiedTransaction values.
type Formatter struct {
	decimals int32
}

// NewFormatter returns a Formatter for a unit with the given decimals.
func NewFormatter(decimals int32) Formatter {
	return Formatter{decimals: decimals}
}

// Normalize copies tx, tags it with direction and formats its amounts.
// tx is never modified.
func (f Formatter) Normalize(tx RawTransaction, direction Direction) ClassifiedTransaction {
	out := ClassifiedTransaction{
		RawTransaction: tx,
		Direction:      direction,
	}

	if tx.Value != nil {
		out.Value = new(big.Int).Set(tx.Value)
	}

	if tx.GasPrice != nil {
		out.GasPrice = new(big.Int).Set(tx.GasPrice)
	}

	out.FormattedValue = FormatUnits(tx.Value, f.decimals)
	out.FormattedGasPrice = FormatUnits(tx.GasPrice, f.decimals)
	return out
}
