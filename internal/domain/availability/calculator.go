// Package availability turns a service's recurring weekly windows into bookable start times.
//
// Everything here is a pure function of its inputs: no storage, no clock reads, no locking.
// Slots are advisory; conflicts with existing appointments are checked at reservation time.
package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/service"
)

// WindowSlots yields every start time t in w with t + interval <= w.End(), in order.
// A malformed window or a non-positive interval yields nothing.
func WindowSlots(w service.TimeWindow, intervalMinutes int) iter.Seq[service.TimeOfDay] {
	return func(yield func(service.TimeOfDay) bool) {
		if intervalMinutes <= 0 || !w.IsValid() {
			return
		}
		end := w.End().Minutes()
		for t := w.Start(); t.Minutes()+intervalMinutes <= end; t = t.Add(intervalMinutes) {
			if !yield(t) {
				return
			}
		}
	}
}

// ComputeSlots returns the distinct "HH:MM" start times offered on date, in chronological order.
//
// date is interpreted in its own location, which must be the business timezone; only windows
// matching its weekday are used. When date is the same calendar day as now (in that location),
// slots whose instant is not strictly after now are dropped.
func ComputeSlots(intervalMinutes int, windows []service.TimeWindow, date, now time.Time) []string {
	loc := date.Location()
	day := date.Weekday()
	today := sameDay(date, now.In(loc))

	seen := make(map[int]struct{})
	starts := make([]int, 0)
	for _, w := range windows {
		if w.Weekday() != day {
			continue
		}
		for t := range WindowSlots(w, intervalMinutes) {
			if today && !t.On(date).After(now) {
				continue
			}
			if _, dup := seen[t.Minutes()]; dup {
				continue
			}
			seen[t.Minutes()] = struct{}{}
			starts = append(starts, t.Minutes())
		}
	}
	slices.Sort(starts)

	out := make([]string, 0, len(starts))
	for _, m := range starts {
		t, _ := service.TimeOfDayFromMinutes(m)
		out = append(out, t.String())
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
