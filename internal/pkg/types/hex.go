package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrMissingHexPrefix is returned when a quantity does not start with 0x.
	ErrMissingHexPrefix = errors.New("hex string must start with 0x")

	// ErrInvalidHex is returned when a quantity contains non-hexadecimal digits.
	ErrInvalidHex = errors.New("invalid hexadecimal value")

	// ErrHexOverflow is returned when a quantity does not fit the requested integer size.
	ErrHexOverflow = errors.New("hexadecimal value overflows uint64")
)

// Hex is a JSON-RPC quantity: a hexadecimal number encoded as a string
// prefixed by 0x (e.g. "0x1a"). Quantities may exceed 64 bits, which is the
// case for wei amounts.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes n as a quantity.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return ErrMissingHexPrefix
	}

	digits := s[2:]
	if digits == "" {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	if _, ok := new(big.Int).SetString(digits, 16); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Uint64 decodes the quantity as an unsigned 64-bit integer.
func (h Hex) Uint64() (uint64, error) {
	if err := validateHex(string(h)); err != nil {
		return 0, err
	}

	v, err := strconv.ParseUint(string(h)[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrHexOverflow, string(h))
	}

	return v, nil
}

// Big decodes the quantity as an arbitrary precision integer.
func (h Hex) Big() (*big.Int, error) {
	if err := validateHex(string(h)); err != nil {
		return nil, err
	}

	v, _ := new(big.Int).SetString(string(h)[2:], 16)
	return v, nil
}
