// Package sighting aggregates decoded Remote ID messages into per-aircraft
// records and persists them.
package sighting

import (
	"time"

	"github.com/ridwatch/ridwatch/pkg/rid"
)

// Sighting is the accumulated state for one aircraft, keyed by its UAS ID.
type Sighting struct {
	UASID  string `json:"uas_id"`
	IDType uint8  `json:"id_type"`
	UAType uint8  `json:"ua_type"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	PressureAltitude  int `json:"pressure_altitude"`
	GeometricAltitude int `json:"geometric_altitude"`
	GroundAltitude    int `json:"ground_altitude"`

	GroundSpeedKnots float64 `json:"ground_speed_knots"`
	VerticalSpeed    int     `json:"vertical_speed"`
	TrackAngle       int     `json:"track_angle"`

	StationLatitude  float64 `json:"station_latitude,omitempty"`
	StationLongitude float64 `json:"station_longitude,omitempty"`

	SignalDBM int       `json:"signal_dbm"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
	Beacons   int       `json:"beacons"`
}

// apply folds one decoded message into the sighting.
func (s *Sighting) apply(msg rid.Message) {
	switch m := msg.(type) {
	case *rid.BasicID:
		s.IDType = m.IDType
		s.UAType = m.UAType
	case *rid.Location:
		s.Latitude = m.Latitude()
		s.Longitude = m.Longitude()
		s.PressureAltitude = int(m.PressureAltitude)
		s.GeometricAltitude = int(m.GeometricAltitude)
		s.GroundAltitude = int(m.GroundAltitude)
		s.GroundSpeedKnots = m.GroundSpeedKnots()
		s.VerticalSpeed = int(m.VerticalSpeed)
		s.TrackAngle = m.FullTrackAngle()
	case *rid.System:
		s.StationLatitude = m.StationLatitude()
		s.StationLongitude = m.StationLongitude()
	}
}
