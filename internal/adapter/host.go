// Package adapter provides the ports to the host curve store and scene files.
package adapter

import (
	m "github.com/mouse-blink/scalist/internal/model"
)

// Host is the narrow interface the scaling workflow uses to talk to the
// owning curve store. One scaling operation performs exactly one batched
// write; there is no partial-commit or rollback, a failed write is surfaced
// as-is.
type Host interface {
	// ReadSelection captures the selection snapshot for one operation,
	// including the playback cursor and the host-tracked last selected key.
	ReadSelection() (m.Selection, error)
	// WriteScaledValues applies a value-axis commit set.
	WriteScaledValues(commits m.CommitSet) error
	// WriteScaledTimes applies a time-axis commit set, move by move in
	// commit order.
	WriteScaledTimes(commits m.CommitSet) error
	// SnapToIntegerFrames rounds the selected keys on the curves touched
	// by the commit set to whole frames. Keys landing on the same frame
	// coalesce, last write wins.
	SnapToIntegerFrames(commits m.CommitSet) error
}
