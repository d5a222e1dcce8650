package rid

import "encoding/binary"

// Location is the position vector message: where the aircraft is and how it
// is moving. Angular values are raw wire units; use the accessor methods for
// converted values.
type Location struct {
	Status          uint8 // operational status, high nibble of byte 0
	HeightType      uint8
	TrackEW         bool // track angle is offset by 180 degrees when set
	SpeedMultiplier bool // ground speed is x10 when set

	TrackAngle    uint8 // 0-179, see FullTrackAngle
	GroundSpeed   int8  // knots before multiplier
	VerticalSpeed int8  // m/s

	LatitudeE7  int32 // degrees * 1e7
	LongitudeE7 int32 // degrees * 1e7

	PressureAltitude  int16
	GeometricAltitude int16
	GroundAltitude    int16

	VerticalAccuracy   uint8
	HorizontalAccuracy uint8
	SpeedAccuracy      uint8

	Timestamp         uint16 // tenths of seconds
	TimestampAccuracy uint8
	Reserved          uint8
}

func (Location) MessageType() Type { return TypeLocation }

// Latitude returns the latitude in degrees.
func (m *Location) Latitude() float64 { return float64(m.LatitudeE7) * 1e-7 }

// Longitude returns the longitude in degrees.
func (m *Location) Longitude() float64 { return float64(m.LongitudeE7) * 1e-7 }

// FullTrackAngle returns the track angle in degrees (0-359).
func (m *Location) FullTrackAngle() int {
	if m.TrackEW {
		return int(m.TrackAngle) + 180
	}
	return int(m.TrackAngle)
}

// GroundSpeedKnots returns the ground speed with the multiplier applied.
func (m *Location) GroundSpeedKnots() float64 {
	if m.SpeedMultiplier {
		return float64(m.GroundSpeed) * 10
	}
	return float64(m.GroundSpeed)
}

// DecodeLocation parses a Location message body.
func DecodeLocation(body []byte) (*Location, error) {
	if len(body) < bodyLen {
		return nil, &ShortMessageError{Want: bodyLen, Got: len(body)}
	}

	b0 := body[0]
	m := &Location{
		Status:          (b0 >> 4) & 0x0f,
		HeightType:      (b0 & 0x06) >> 1,
		TrackEW:         b0&0x01 != 0,
		SpeedMultiplier: b0&0x01 != 0,

		TrackAngle:    body[1],
		GroundSpeed:   int8(body[2]),
		VerticalSpeed: int8(body[3]),

		LatitudeE7:  int32(binary.LittleEndian.Uint32(body[4:8])),
		LongitudeE7: int32(binary.LittleEndian.Uint32(body[8:12])),

		PressureAltitude:  int16(binary.LittleEndian.Uint16(body[12:14])),
		GeometricAltitude: int16(binary.LittleEndian.Uint16(body[14:16])),
		GroundAltitude:    int16(binary.LittleEndian.Uint16(body[16:18])),

		VerticalAccuracy:   (body[18] >> 4) & 0x0f,
		HorizontalAccuracy: body[18] & 0x0f,
		SpeedAccuracy:      body[19] & 0x0f,

		Timestamp:         binary.LittleEndian.Uint16(body[20:22]),
		TimestampAccuracy: body[22] & 0x0f,
		Reserved:          body[23],
	}
	return m, nil
}
