package notify

import (
	"encoding/json"
	"time"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// EventType identifies the payload of an Event.
type EventType string

const (
	EventTransaction  EventType = "transaction"
	EventBlockSummary EventType = "block_summary"
	EventMessage      EventType = "message"
)

// Event is the JSON envelope published by message bus notifiers.
type Event struct {
	Type         EventType          `json:"type"`
	Network      string             `json:"network"`
	EmittedAt    time.Time          `json:"emitted_at"`
	Transaction  *TransactionEvent  `json:"transaction,omitempty"`
	BlockSummary *BlockSummaryEvent `json:"block_summary,omitempty"`
	Message      string             `json:"message,omitempty"`
}

// TransactionEvent is the wire form of a classified transaction.
// Raw amounts are decimal strings of the smallest unit.
type TransactionEvent struct {
	Hash              string    `json:"hash"`
	From              string    `json:"from"`
	To                string    `json:"to,omitempty"`
	ContractCreation  bool      `json:"contract_creation"`
	Direction         string    `json:"direction"`
	Value             string    `json:"value"`
	FormattedValue    string    `json:"formatted_value"`
	GasPrice          string    `json:"gas_price,omitempty"`
	FormattedGasPrice string    `json:"formatted_gas_price"`
	GasLimit          uint64    `json:"gas_limit"`
	Symbol            string    `json:"symbol"`
	BlockNumber       uint64    `json:"block_number"`
	Timestamp         time.Time `json:"timestamp"`
}

// BlockSummaryEvent reports a scanned block.
type BlockSummaryEvent struct {
	BlockNumber uint64 `json:"block_number"`
	MatchCount  int    `json:"match_count"`
}

// NewTransactionEvent builds the envelope of tx.
func NewTransactionEvent(network, symbol string, tx txwatch.ClassifiedTransaction) Event {
	payload := &TransactionEvent{
		Hash:              tx.Hash,
		From:              tx.From,
		To:                tx.To,
		ContractCreation:  tx.IsContractCreation(),
		Direction:         tx.Direction.String(),
		Value:             "0",
		FormattedValue:    tx.FormattedValue,
		FormattedGasPrice: tx.FormattedGasPrice,
		GasLimit:          tx.GasLimit,
		Symbol:            symbol,
		BlockNumber:       tx.BlockNumber,
		Timestamp:         tx.Timestamp.UTC(),
	}

	if tx.Value != nil {
		payload.Value = tx.Value.String()
	}

	if tx.GasPrice != nil {
		payload.GasPrice = tx.GasPrice.String()
	}

	return Event{
		Type:        EventTransaction,
		Network:     network,
		EmittedAt:   time.Now().UTC(),
		Transaction: payload,
	}
}

// NewBlockSummaryEvent builds the envelope of a block summary.
func NewBlockSummaryEvent(network string, blockNumber uint64, matchCount int) Event {
	return Event{
		Type:         EventBlockSummary,
		Network:      network,
		EmittedAt:    time.Now().UTC(),
		BlockSummary: &BlockSummaryEvent{BlockNumber: blockNumber, MatchCount: matchCount},
	}
}

// NewMessageEvent builds the envelope of a free-form message.
func NewMessageEvent(network, text string) Event {
	return Event{
		Type:      EventMessage,
		Network:   network,
		EmittedAt: time.Now().UTC(),
		Message:   text,
	}
}

// Marshal encodes the event as JSON.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
