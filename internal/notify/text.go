package notify

import (
	"fmt"
	"strings"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// ShortAddress abbreviates an address to its first 6 and last 4 characters.
func ShortAddress(address string) string {
	return shorten(address, 6, 4)
}

// ShortHash abbreviates a hash to its first 10 and last 8 characters.
func ShortHash(hash string) string {
	return shorten(hash, 10, 8)
}

func shorten(s string, head, tail int) string {
	if len(s) <= head+tail+3 {
		return s
	}
	return s[:head] + "..." + s[len(s)-tail:]
}

// DirectionLabel is the human-readable name of d.
func DirectionLabel(d txwatch.Direction) string {
	switch d {
	case txwatch.Inbound:
		return "Incoming transaction"
	case txwatch.Outbound:
		return "Outgoing transaction"
	case txwatch.SelfTransfer:
		return "Internal transfer"
	default:
		return "Transaction"
	}
}

// RecipientLabel returns the shortened recipient, or a marker for contract
// creations.
func RecipientLabel(tx txwatch.ClassifiedTransaction) string {
	if tx.IsContractCreation() {
		return "contract creation"
	}
	return ShortAddress(tx.To)
}

// PlainText renders tx on a few lines without decoration, for chat sinks.
func PlainText(network, symbol string, tx txwatch.ClassifiedTransaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s on %s\n", DirectionLabel(tx.Direction), network)
	fmt.Fprintf(&b, "Hash: %s\n", tx.Hash)
	fmt.Fprintf(&b, "Amount: %s %s\n", tx.FormattedValue, symbol)
	fmt.Fprintf(&b, "From: %s\n", tx.From)
	if tx.IsContractCreation() {
		b.WriteString("To: contract creation\n")
	} else {
		fmt.Fprintf(&b, "To: %s\n", tx.To)
	}
	fmt.Fprintf(&b, "Gas price: %s %s\n", tx.FormattedGasPrice, symbol)
	fmt.Fprintf(&b, "Block: %d\n", tx.BlockNumber)
	if !tx.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Time: %s", tx.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
	}

	return strings.TrimRight(b.String(), "\n")
}

// SummaryText renders a block summary on one line.
func SummaryText(blockNumber uint64, matchCount int) string {
	noun := "transactions"
	if matchCount == 1 {
		noun = "transaction"
	}
	return fmt.Sprintf("Block #%d: %d matching %s", blockNumber, matchCount, noun)
}

// StartupText announces the monitored addresses.
func StartupText(network string, addresses []string) string {
	shortened := make([]string, len(addresses))
	for i, a := range addresses {
		shortened[i] = ShortAddress(a)
	}

	noun := "addresses"
	if len(addresses) == 1 {
		noun = "address"
	}
	return fmt.Sprintf("Watching %d %s on %s: %s", len(addresses), noun, network, strings.Join(shortened, ", "))
}

// ShutdownText announces that monitoring stopped.
func ShutdownText(network string) string {
	return fmt.Sprintf("Stopped watching %s", network)
}
