package sighting

import (
	"sort"
	"sync"
	"time"

	"github.com/ridwatch/ridwatch/pkg/rid"
)

// Tracker holds live sightings, keyed by UAS ID.
type Tracker struct {
	sightings map[string]*Sighting
	mu        sync.RWMutex
}

func NewTracker() *Tracker {
	return &Tracker{sightings: make(map[string]*Sighting)}
}

// Record folds one beacon's message pack into the tracker. The group must
// contain a BasicID message to identify the aircraft; groups without one are
// dropped. Returns a copy of the updated sighting, or nil.
func (t *Tracker) Record(msgs []rid.Message, signalDBM int, seen time.Time) *Sighting {
	var id string
	for _, msg := range msgs {
		if b, ok := msg.(*rid.BasicID); ok && b.UASID != "" {
			id = b.UASID
			break
		}
	}
	if id == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sightings[id]
	if !ok {
		s = &Sighting{UASID: id, FirstSeen: seen}
		t.sightings[id] = s
	}

	for _, msg := range msgs {
		s.apply(msg)
	}
	s.SignalDBM = signalDBM
	s.LastSeen = seen
	s.Beacons++

	out := *s
	return &out
}

// Sightings returns a snapshot of all sightings, most recently seen first.
func (t *Tracker) Sightings() []*Sighting {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Sighting, 0, len(t.sightings))
	for _, s := range t.sightings {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	return out
}

// Count returns the number of distinct aircraft seen.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sightings)
}
