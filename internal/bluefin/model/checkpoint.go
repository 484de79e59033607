package model

// CommandKind names a programmable transaction command.
type CommandKind string

const (
	CommandMoveCall        CommandKind = "MoveCall"
	CommandTransferObjects CommandKind = "TransferObjects"
	CommandSplitCoins      CommandKind = "SplitCoins"
	CommandMergeCoins      CommandKind = "MergeCoins"
	CommandPublish         CommandKind = "Publish"
	CommandMakeMoveVec     CommandKind = "MakeMoveVec"
	CommandUpgrade         CommandKind = "Upgrade"
)

type (
	// Checkpoint is a finalized Sui checkpoint with its full transaction contents.
	Checkpoint struct {
		SequenceNumber uint64                  `json:"sequence_number"`
		TimestampMs    uint64                  `json:"timestamp_ms"`
		Transactions   []CheckpointTransaction `json:"transactions"`
	}

	// CheckpointTransaction is one executed transaction inside a checkpoint.
	CheckpointTransaction struct {
		Digest       string             `json:"digest"`
		Sender       Address            `json:"sender"`
		Commands     []Command          `json:"commands"`
		Status       ExecutionStatus    `json:"status"`
		Events       *TransactionEvents `json:"events,omitempty"`
		InputObjects []InputObject      `json:"input_objects"`
	}

	// Command is the part of a programmable transaction command the indexer needs.
	Command struct {
		Kind     CommandKind `json:"kind"`
		Package  ObjectID    `json:"package"`
		Module   string      `json:"module,omitempty"`
		Function string      `json:"function,omitempty"`
	}

	// ExecutionStatus describes the execution outcome. Command is the index of the failing command, if known.
	ExecutionStatus struct {
		Success bool    `json:"success"`
		Error   string  `json:"error,omitempty"`
		Command *uint64 `json:"command,omitempty"`
	}

	// TransactionEvents wraps the events block. A nil block means the transaction emitted none.
	TransactionEvents struct {
		Data []Event `json:"data"`
	}

	// InputObject is an object read by the transaction. Type is nil for packages.
	InputObject struct {
		ObjectID ObjectID   `json:"object_id"`
		Type     *StructTag `json:"type,omitempty"`
	}

	// Event is a Move event with its BCS payload.
	Event struct {
		PackageID         ObjectID  `json:"package_id"`
		TransactionModule string    `json:"transaction_module"`
		Sender            Address   `json:"sender"`
		Type              StructTag `json:"type"`
		Contents          []byte    `json:"contents"`
	}

	// StructTag is a fully qualified Move struct type.
	StructTag struct {
		Address Address `json:"address"`
		Module  string  `json:"module"`
		Name    string  `json:"name"`
	}

	// CheckpointTxn is a transaction together with the checkpoint it was finalized in.
	CheckpointTxn struct {
		Transaction *CheckpointTransaction
		Checkpoint  uint64
		TimestampMs uint64
	}
)

// TouchesPackage reports whether any input object has a type declared by pkg.
func (t *CheckpointTransaction) TouchesPackage(pkg Address) bool {
	for _, obj := range t.InputObjects {
		if obj.Type != nil && obj.Type.Address == pkg {
			return true
		}
	}
	return false
}

// EntryPackage returns the package of the first command when it is a Move call, or an empty string.
func (t *CheckpointTransaction) EntryPackage() string {
	if len(t.Commands) == 0 || t.Commands[0].Kind != CommandMoveCall {
		return ""
	}
	return t.Commands[0].Package.String()
}

// EventData returns the emitted events, or nil when the transaction has no events block.
func (t *CheckpointTransaction) EventData() []Event {
	if t.Events == nil {
		return nil
	}
	return t.Events.Data
}

// Txns expands the checkpoint into per-transaction triples.
func (c *Checkpoint) Txns() []CheckpointTxn {
	out := make([]CheckpointTxn, 0, len(c.Transactions))
	for i := range c.Transactions {
		out = append(out, CheckpointTxn{
			Transaction: &c.Transactions[i],
			Checkpoint:  c.SequenceNumber,
			TimestampMs: c.TimestampMs,
		})
	}
	return out
}
