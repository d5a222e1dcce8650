package rid

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUASID is returned when the UAS ID field is not valid UTF-8.
var ErrInvalidUASID = errors.New("uas id is not valid utf-8")

// BasicID carries the aircraft's identity.
type BasicID struct {
	IDType   uint8 // high nibble of byte 0
	UAType   uint8 // low nibble of byte 0
	UASID    string
	Reserved [3]byte
}

func (BasicID) MessageType() Type { return TypeBasicID }

// DecodeBasicID parses a BasicID message body: type nibbles, a 20-byte UAS ID
// string padded with NULs or spaces, and 3 reserved bytes.
func DecodeBasicID(body []byte) (*BasicID, error) {
	if len(body) < bodyLen {
		return nil, &ShortMessageError{Want: bodyLen, Got: len(body)}
	}

	raw := body[1:21]
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUASID
	}

	m := &BasicID{
		IDType: (body[0] >> 4) & 0x0f,
		UAType: body[0] & 0x0f,
		UASID:  strings.TrimRight(string(raw), "\x00 "),
	}
	copy(m.Reserved[:], body[21:24])
	return m, nil
}
