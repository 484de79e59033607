package model

import "github.com/shopspring/decimal"

// RecordKind discriminates ProcessedRecord variants.
type RecordKind int

const (
	RecordPosition RecordKind = iota + 1
	RecordError
)

func (k RecordKind) String() string {
	switch k {
	case RecordPosition:
		return "position"
	case RecordError:
		return "error"
	default:
		return "unknown"
	}
}

// ProcessedRecord is a single row produced by extraction. Exactly one payload is set, matching Kind.
type ProcessedRecord struct {
	Kind     RecordKind
	Position *PositionUpdate
	Error    *TransactionError
}

// NewPositionRecord wraps a position update.
func NewPositionRecord(p PositionUpdate) ProcessedRecord {
	return ProcessedRecord{Kind: RecordPosition, Position: &p}
}

// NewErrorRecord wraps a failed transaction.
func NewErrorRecord(e TransactionError) ProcessedRecord {
	return ProcessedRecord{Kind: RecordError, Error: &e}
}

// PositionUpdate is one open or close of a liquidity position.
type PositionUpdate struct {
	Digest                string
	EventDigest           string
	Sender                string
	Checkpoint            uint64
	CheckpointTimestampMs uint64
	Package               string
	PoolID                string
	PositionID            string
	TickLower             int32
	TickUpper             int32
	Liquidity             decimal.Decimal
	Price                 decimal.Decimal
	IsClose               bool
}

// TransactionError records a failed transaction that emitted no events.
type TransactionError struct {
	TxDigest      string
	Sender        string
	TimestampMs   uint64
	FailureStatus string
	Package       string
	CmdIdx        *uint64
}
