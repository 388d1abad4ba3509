// Package watchlist holds the set of account addresses the monitor reports on.
//
// Addresses are compared in their normalized form: trimmed, lower-cased and
// prefixed with 0x. The form supplied by the operator is kept for display.
package watchlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/addrwatch/internal/pkg/types"
)

var (
	// ErrEmptyWatchList is returned when no address remains after normalization.
	ErrEmptyWatchList = errors.New("watch list is empty")

	// ErrInvalidAddress is returned when an entry is not a 20-byte hex address.
	ErrInvalidAddress = errors.New("invalid address")
)

// ConfigError reports a watch list that cannot be used. It is fatal at startup.
type ConfigError struct {
	Input string // offending entry, empty when the whole list is at fault
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("watch list: %v", e.Err)
	}
	return fmt.Sprintf("watch list: %q: %v", e.Input, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Normalize returns the canonical form of address used for comparisons.
// It does not validate the input.
func Normalize(address string) string {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" {
		return ""
	}

	if !strings.HasPrefix(address, "0x") {
		address = "0x" + address
	}

	return address
}

// WatchSet is an immutable set of normalized addresses.
// The zero value is an empty set that contains nothing.
type WatchSet struct {
	members types.Set[string]
	display map[string]string // normalized -> first form seen
}

// Build normalizes and deduplicates addresses. Blank entries are ignored.
//
// It fails with a *ConfigError wrapping ErrInvalidAddress for malformed
// entries, or ErrEmptyWatchList when nothing is left to watch.
func Build(addresses []string) (WatchSet, error) {
	set := WatchSet{
		members: types.NewSet[string](),
		display: make(map[string]string, len(addresses)),
	}

	for _, raw := range addresses {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		if !common.IsHexAddress(trimmed) {
			return WatchSet{}, &ConfigError{Input: trimmed, Err: ErrInvalidAddress}
		}

		key := Normalize(trimmed)
		if set.members.Insert(key) {
			set.display[key] = trimmed
		}
	}

	if set.members.Len() == 0 {
		return WatchSet{}, &ConfigError{Err: ErrEmptyWatchList}
	}

	return set, nil
}

// Contains reports whether address, in any casing, is part of the set.
func (w WatchSet) Contains(address string) bool {
	if address == "" {
		return false
	}
	return w.members.Has(Normalize(address))
}

// Len returns the number of distinct addresses.
func (w WatchSet) Len() int {
	return w.members.Len()
}

// Addresses returns the display form of every member, sorted.
func (w WatchSet) Addresses() []string {
	out := make([]string, 0, len(w.display))
	for _, addr := range w.display {
		out = append(out, addr)
	}
	slices.Sort(out)
	return out
}
