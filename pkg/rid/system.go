package rid

import (
	"encoding/binary"
	"fmt"
)

// System describes the control station and the declared operating area.
type System struct {
	CoordinateSystem     uint8
	ClassificationRegion uint8 // 1-3
	StationType          uint8

	StationLatitudeE7  int32
	StationLongitudeE7 int32

	AreaCount   uint16
	AreaRadius  uint8 // meters / 10
	AreaCeiling uint16
	AreaFloor   uint16

	UACategory uint8
	UAClass    uint8

	StationAltitude uint16
	Timestamp       uint32 // unix seconds
}

func (System) MessageType() Type { return TypeSystem }

// StationLatitude returns the control station latitude in degrees.
func (m *System) StationLatitude() float64 { return float64(m.StationLatitudeE7) * 1e-7 }

// StationLongitude returns the control station longitude in degrees.
func (m *System) StationLongitude() float64 { return float64(m.StationLongitudeE7) * 1e-7 }

// AreaRadiusMeters returns the operating area radius in meters.
func (m *System) AreaRadiusMeters() float64 { return float64(m.AreaRadius) * 10 }

// DecodeSystem parses a System message body.
func DecodeSystem(body []byte) (*System, error) {
	if len(body) < bodyLen {
		return nil, &ShortMessageError{Want: bodyLen, Got: len(body)}
	}

	b0 := body[0]
	region := (b0 >> 2) & 0x07
	if region == 0 || region > 3 {
		return nil, fmt.Errorf("invalid classification region %d", region)
	}

	m := &System{
		CoordinateSystem:     (b0 >> 5) & 0x07,
		ClassificationRegion: region,
		StationType:          b0 & 0x03,

		StationLatitudeE7:  int32(binary.LittleEndian.Uint32(body[1:5])),
		StationLongitudeE7: int32(binary.LittleEndian.Uint32(body[5:9])),

		AreaCount:   binary.LittleEndian.Uint16(body[9:11]),
		AreaRadius:  body[11],
		AreaCeiling: binary.LittleEndian.Uint16(body[12:14]),
		AreaFloor:   binary.LittleEndian.Uint16(body[14:16]),

		UACategory: body[16],
		UAClass:    body[17],

		StationAltitude: binary.LittleEndian.Uint16(body[18:20]),
		Timestamp:       binary.LittleEndian.Uint32(body[20:24]),
	}
	return m, nil
}
