package rid

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicIDBody() []byte {
	body := make([]byte, 24)
	body[0] = 0xa5 // id type 0xa, ua type 0x5
	copy(body[1:21], "DroneBase         ")
	body[21] = 0xfe
	body[22] = 0xed
	body[23] = 0xca
	return body
}

func TestDecodeBasicID(t *testing.T) {
	m, err := DecodeBasicID(basicIDBody())
	require.NoError(t, err)

	assert.Equal(t, uint8(0xa), m.IDType)
	assert.Equal(t, uint8(0x5), m.UAType)
	assert.Equal(t, "DroneBase", m.UASID, "trailing padding should be stripped")
	assert.Equal(t, [3]byte{0xfe, 0xed, 0xca}, m.Reserved)
}

func TestDecodeBasicIDNullPadding(t *testing.T) {
	body := make([]byte, 24)
	body[0] = 0x12
	copy(body[1:21], "BaseMsg\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")

	m, err := DecodeBasicID(body)
	require.NoError(t, err)
	assert.Equal(t, "BaseMsg", m.UASID)
}

func TestDecodeBasicIDShort(t *testing.T) {
	_, err := DecodeBasicID(make([]byte, 23))

	var short *ShortMessageError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 24, short.Want)
	assert.Equal(t, 23, short.Got)
}

func TestDecodeBasicIDInvalidUTF8(t *testing.T) {
	body := make([]byte, 24)
	body[0] = 0x34
	body[1] = 0xff // invalid utf-8 start byte

	_, err := DecodeBasicID(body)
	assert.ErrorIs(t, err, ErrInvalidUASID)
}

func locationBody() []byte {
	body := make([]byte, 24)
	body[0] = 0x21 // status 2, east/west flag set
	body[1] = 90   // track angle
	body[2] = 0x05 // ground speed 5 kt (x10 with multiplier)
	body[3] = 0xfe // vertical speed -2
	binary.LittleEndian.PutUint32(body[4:8], uint32(417144317))   // lat
	binary.LittleEndian.PutUint32(body[8:12], uint32(1234844131)) // lon
	binary.LittleEndian.PutUint16(body[12:14], 2290)              // pressure alt
	binary.LittleEndian.PutUint16(body[14:16], 2120)              // geometric alt
	binary.LittleEndian.PutUint16(body[16:18], 2002)              // ground alt
	body[18] = 0x4a // vertical 4, horizontal 10
	body[19] = 0x03 // speed accuracy
	binary.LittleEndian.PutUint16(body[20:22], 5102)
	body[22] = 0x0c
	body[23] = 0x00
	return body
}

func TestDecodeLocation(t *testing.T) {
	m, err := DecodeLocation(locationBody())
	require.NoError(t, err)

	assert.Equal(t, uint8(2), m.Status)
	assert.True(t, m.TrackEW)
	assert.Equal(t, 270, m.FullTrackAngle())
	assert.InDelta(t, 50.0, m.GroundSpeedKnots(), 0.001)
	assert.Equal(t, int8(-2), m.VerticalSpeed)
	assert.InDelta(t, 41.7144317, m.Latitude(), 1e-9)
	assert.InDelta(t, 123.4844131, m.Longitude(), 1e-9)
	assert.Equal(t, int16(2290), m.PressureAltitude)
	assert.Equal(t, int16(2120), m.GeometricAltitude)
	assert.Equal(t, int16(2002), m.GroundAltitude)
	assert.Equal(t, uint8(4), m.VerticalAccuracy)
	assert.Equal(t, uint8(10), m.HorizontalAccuracy)
	assert.Equal(t, uint8(3), m.SpeedAccuracy)
	assert.Equal(t, uint16(5102), m.Timestamp)
	assert.Equal(t, uint8(0xc), m.TimestampAccuracy)
}

func TestDecodeLocationShort(t *testing.T) {
	_, err := DecodeLocation(make([]byte, 10))

	var short *ShortMessageError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 10, short.Got)
}

func systemBody() []byte {
	body := make([]byte, 24)
	body[0] = 0x08 // region 2, station type 0
	binary.LittleEndian.PutUint32(body[1:5], uint32(417144320))
	binary.LittleEndian.PutUint32(body[5:9], uint32(1234844160))
	binary.LittleEndian.PutUint16(body[9:11], 1) // area count
	body[11] = 5                                 // area radius (50 m)
	binary.LittleEndian.PutUint16(body[12:14], 1200)
	binary.LittleEndian.PutUint16(body[14:16], 0)
	body[16] = 1 // category
	body[17] = 2 // class
	binary.LittleEndian.PutUint16(body[18:20], 420)
	binary.LittleEndian.PutUint32(body[20:24], 1700000000)
	return body
}

func TestDecodeSystem(t *testing.T) {
	m, err := DecodeSystem(systemBody())
	require.NoError(t, err)

	assert.Equal(t, uint8(2), m.ClassificationRegion)
	assert.InDelta(t, 41.7144320, m.StationLatitude(), 1e-9)
	assert.InDelta(t, 123.4844160, m.StationLongitude(), 1e-9)
	assert.Equal(t, uint16(1), m.AreaCount)
	assert.InDelta(t, 50.0, m.AreaRadiusMeters(), 0.001)
	assert.Equal(t, uint8(1), m.UACategory)
	assert.Equal(t, uint8(2), m.UAClass)
	assert.Equal(t, uint16(420), m.StationAltitude)
	assert.Equal(t, uint32(1700000000), m.Timestamp)
}

func TestDecodeSystemInvalidRegion(t *testing.T) {
	body := systemBody()
	body[0] = 0x00 // region 0

	_, err := DecodeSystem(body)
	assert.Error(t, err)
}

func TestDecodeDispatch(t *testing.T) {
	tests := []struct {
		name   string
		header byte
		body   []byte
		want   Type
	}{
		{"basic id", 0x01, basicIDBody(), TypeBasicID},
		{"location", 0x11, locationBody(), TypeLocation},
		{"system", 0x41, systemBody(), TypeSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(append([]byte{tt.header}, tt.body...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.MessageType())
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	data := make([]byte, MessageLen)
	data[0] = 0xf0

	_, err := Decode(data)

	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint8(0xf), unknown.Type)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(nil)
	assert.Error(t, err)
}
