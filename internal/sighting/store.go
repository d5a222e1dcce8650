package sighting

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Store persists sightings to a JSON file.
type Store struct {
	path      string
	sightings []*Sighting
	mu        sync.RWMutex
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Add saves a sighting, deduplicating by UAS ID. The earliest first-seen
// timestamp wins; everything else is replaced by the newer record.
func (s *Store) Add(r *Sighting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.sightings {
		if existing.UASID == r.UASID {
			merged := *r
			if existing.FirstSeen.Before(r.FirstSeen) {
				merged.FirstSeen = existing.FirstSeen
			}
			merged.Beacons += existing.Beacons
			s.sightings[i] = &merged
			s.save()
			return
		}
	}

	copied := *r
	s.sightings = append(s.sightings, &copied)
	s.save()
}

// All returns all stored sightings.
func (s *Store) All() []*Sighting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Sighting, len(s.sightings))
	copy(out, s.sightings)
	return out
}

// Count returns the number of stored sightings.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sightings)
}

// FormatTable returns a formatted table of stored sightings.
func (s *Store) FormatTable() string {
	all := s.All()
	if len(all) == 0 {
		return "No sightings recorded.\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-22s %-11s %-12s %-8s %-6s %s\n",
		"UAS ID", "LAT", "LON", "ALT(m)", "KT", "LAST SEEN")
	for _, r := range all {
		fmt.Fprintf(&sb, "  %-22s %-11.6f %-12.6f %-8d %-6.0f %s\n",
			r.UASID, r.Latitude, r.Longitude, r.GroundAltitude,
			r.GroundSpeedKnots, r.LastSeen.Format("2006-01-02 15:04:05"))
	}
	return sb.String()
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, &s.sightings)
}

func (s *Store) save() {
	data, err := json.MarshalIndent(s.sightings, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
