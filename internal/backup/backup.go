// Package backup exports and imports scheduler state as JSON snapshots.
//
// Import runs through an explicit Session so the merge decision is always a
// parameter of the workflow, never ambient state: the caller chooses merge
// or overwrite and the session records when the import began.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"ritmo/internal/task"
)

// ErrUnknownStrategy is returned for strategies other than merge/overwrite.
var ErrUnknownStrategy = errors.New("strategy must be 'merge' or 'overwrite'")

// Strategy selects how an imported snapshot combines with existing state.
type Strategy string

const (
	// StrategyMerge upserts imported records into the existing state,
	// keyed by ID; imported records win on conflict.
	StrategyMerge Strategy = "merge"

	// StrategyOverwrite discards the existing state entirely.
	StrategyOverwrite Strategy = "overwrite"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMerge, StrategyOverwrite:
		return Strategy(s), nil
	default:
		return "", ErrUnknownStrategy
	}
}

// Session carries the context of one import workflow.
type Session struct {
	Strategy  Strategy
	StartedAt time.Time
}

// NewSession starts an import session with the given strategy.
func NewSession(strategy Strategy) Session {
	return Session{Strategy: strategy, StartedAt: time.Now()}
}

// snapshot is the on-disk format. ExportedAt is informational only.
type snapshot struct {
	ExportedAt time.Time   `json:"exportedAt"`
	State      *task.State `json:"state"`
}

// Export writes the state as an indented JSON snapshot.
func Export(w io.Writer, state *task.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot{ExportedAt: time.Now(), State: state}); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Read parses a snapshot previously written by Export.
func Read(r io.Reader) (*task.State, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.State == nil {
		return nil, errors.New("snapshot holds no state")
	}
	return snap.State, nil
}

// Merge combines an imported snapshot with the existing state according to
// the session's strategy and returns the state to persist. Inputs are not
// mutated.
func Merge(existing, imported *task.State, session Session) (*task.State, error) {
	switch session.Strategy {
	case StrategyOverwrite:
		return imported, nil
	case StrategyMerge:
		return mergeStates(existing, imported), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

func mergeStates(existing, imported *task.State) *task.State {
	merged := &task.State{
		Tasks:         mergeByID(existing.Tasks, imported.Tasks, func(t *task.Task) string { return t.ID }),
		Commitments:   mergeByID(existing.Commitments, imported.Commitments, func(c *task.Commitment) string { return c.ID }),
		DailySettings: imported.DailySettings,
	}
	if merged.DailySettings == (task.DailySettings{}) {
		merged.DailySettings = existing.DailySettings
	}
	return merged
}

// mergeByID keeps existing records in order, replaces those the import also
// carries, and appends the rest of the import in its own order.
func mergeByID[T any](existing, imported []T, id func(T) string) []T {
	incoming := make(map[string]T, len(imported))
	for _, item := range imported {
		incoming[id(item)] = item
	}

	merged := make([]T, 0, len(existing)+len(imported))
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		key := id(item)
		seen[key] = true
		if replacement, ok := incoming[key]; ok {
			merged = append(merged, replacement)
			continue
		}
		merged = append(merged, item)
	}
	for _, item := range imported {
		if !seen[id(item)] {
			merged = append(merged, item)
		}
	}
	return merged
}
