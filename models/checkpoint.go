package models

// Checkpoint is the opaque resumption token handed out by the remote
// transport. The engine persists it verbatim and never inspects it; losing
// it is recoverable through a full refetch.
type Checkpoint []byte

// Clone returns an independent copy of the checkpoint, or nil for an empty
// one.
func (c Checkpoint) Clone() Checkpoint {
	if len(c) == 0 {
		return nil
	}
	out := make(Checkpoint, len(c))
	copy(out, c)
	return out
}
