package sighting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwatch/ridwatch/pkg/rid"
)

func TestTrackerRecord(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	msgs := []rid.Message{
		&rid.BasicID{IDType: 1, UAType: 2, UASID: "RID-0001"},
		&rid.Location{LatitudeE7: 417144317, LongitudeE7: 1234844131, GroundAltitude: 2002},
	}

	s := tr.Record(msgs, -42, now)
	require.NotNil(t, s)
	assert.Equal(t, "RID-0001", s.UASID)
	assert.InDelta(t, 41.7144317, s.Latitude, 1e-9)
	assert.InDelta(t, 123.4844131, s.Longitude, 1e-9)
	assert.Equal(t, 2002, s.GroundAltitude)
	assert.Equal(t, -42, s.SignalDBM)
	assert.Equal(t, 1, s.Beacons)
	assert.Equal(t, 1, tr.Count())
}

func TestTrackerMergesByUASID(t *testing.T) {
	tr := NewTracker()
	first := time.Now()
	later := first.Add(2 * time.Second)

	tr.Record([]rid.Message{
		&rid.BasicID{UASID: "RID-0001"},
		&rid.Location{LatitudeE7: 100},
	}, -40, first)

	s := tr.Record([]rid.Message{
		&rid.BasicID{UASID: "RID-0001"},
		&rid.Location{LatitudeE7: 200},
	}, -50, later)

	require.NotNil(t, s)
	assert.Equal(t, 1, tr.Count())
	assert.Equal(t, 2, s.Beacons)
	assert.Equal(t, first, s.FirstSeen)
	assert.Equal(t, later, s.LastSeen)
	assert.InDelta(t, 200e-7, s.Latitude, 1e-12)
}

func TestTrackerDropsAnonymousGroups(t *testing.T) {
	tr := NewTracker()

	s := tr.Record([]rid.Message{&rid.Location{LatitudeE7: 100}}, -40, time.Now())
	assert.Nil(t, s)
	assert.Equal(t, 0, tr.Count())
}

func TestTrackerSightingsOrder(t *testing.T) {
	tr := NewTracker()
	base := time.Now()

	tr.Record([]rid.Message{&rid.BasicID{UASID: "OLD"}}, -40, base)
	tr.Record([]rid.Message{&rid.BasicID{UASID: "NEW"}}, -40, base.Add(time.Minute))

	all := tr.Sightings()
	require.Len(t, all, 2)
	assert.Equal(t, "NEW", all[0].UASID)
	assert.Equal(t, "OLD", all[1].UASID)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sightings.json")
	now := time.Now().Truncate(time.Second)

	store := NewStore(path)
	store.Add(&Sighting{UASID: "RID-0001", Latitude: 41.7, FirstSeen: now, LastSeen: now, Beacons: 3})
	store.Add(&Sighting{UASID: "RID-0002", Latitude: 12.3, FirstSeen: now, LastSeen: now, Beacons: 1})

	reloaded := NewStore(path)
	require.Equal(t, 2, reloaded.Count())
	assert.Equal(t, "RID-0001", reloaded.All()[0].UASID)
}

func TestStoreDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sightings.json")
	early := time.Now().Add(-time.Hour)
	late := time.Now()

	store := NewStore(path)
	store.Add(&Sighting{UASID: "RID-0001", FirstSeen: early, LastSeen: early, Beacons: 2})
	store.Add(&Sighting{UASID: "RID-0001", FirstSeen: late, LastSeen: late, Beacons: 5})

	require.Equal(t, 1, store.Count())
	got := store.All()[0]
	assert.Equal(t, 7, got.Beacons)
	assert.Equal(t, early, got.FirstSeen, "earliest first-seen wins")
	assert.Equal(t, late, got.LastSeen)
}

func TestStoreFormatTableEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "sightings.json"))
	assert.Contains(t, store.FormatTable(), "No sightings")
}
