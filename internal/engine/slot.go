// Package engine implements the automatic multi-day scheduling engine.
//
// Generate is a pure function: it walks pending tasks in priority order,
// carves each day's wake-to-sleep window around commitments, and packs task
// blocks greedily into the remaining slots across a bounded future horizon.
// Tasks that cannot fit before their deadline are reported, not dropped.
package engine

import "slices"

// MinGranule is the minimum committable block size in minutes. Free slivers
// smaller than this are skipped and left free.
const MinGranule = 15

// Slot is a contiguous [Start,End) interval of a day, in minutes since
// local midnight. Duration always equals End-Start.
type Slot struct {
	Start    int
	End      int
	Duration int
}

// NewSlot creates a Slot with its duration derived from the bounds.
func NewSlot(start, end int) Slot {
	return Slot{Start: start, End: end, Duration: end - start}
}

// Subtract removes the occupied intervals from the available ones and
// returns the surviving free intervals, in order. Each occupied interval is
// applied in input order; an overlapped slot is replaced by its left and/or
// right remainders. Applying occupied intervals sequentially is safe because
// the surviving set stays disjoint.
func Subtract(available, occupied []Slot) []Slot {
	result := slices.Clone(available)
	for _, occ := range occupied {
		next := make([]Slot, 0, len(result)+1)
		for _, slot := range result {
			// No overlap
			if occ.End <= slot.Start || occ.Start >= slot.End {
				next = append(next, slot)
				continue
			}
			if occ.Start > slot.Start {
				next = append(next, NewSlot(slot.Start, occ.Start))
			}
			if occ.End < slot.End {
				next = append(next, NewSlot(occ.End, slot.End))
			}
		}
		result = next
	}
	return result
}
