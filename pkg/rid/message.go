// Package rid decodes the Remote ID broadcast messages carried in the
// vendor-specific information element of drone beacon frames. Each message is
// 25 bytes on the air: a header byte whose high nibble is the message type,
// followed by a 24-byte body. Multi-byte fields are little-endian.
package rid

import "fmt"

// Type identifies a Remote ID message type.
type Type uint8

const (
	TypeBasicID  Type = 0x0
	TypeLocation Type = 0x1
	TypeSystem   Type = 0x4
)

func (t Type) String() string {
	switch t {
	case TypeBasicID:
		return "basic-id"
	case TypeLocation:
		return "location"
	case TypeSystem:
		return "system"
	}
	return fmt.Sprintf("unknown(0x%x)", uint8(t))
}

// MessageLen is the on-air size of one message: header byte plus body.
const MessageLen = 25

const bodyLen = 24

// Message is implemented by all decoded Remote ID messages.
type Message interface {
	MessageType() Type
}

// ShortMessageError reports a buffer smaller than the field layout requires.
type ShortMessageError struct {
	Want, Got int
}

func (e *ShortMessageError) Error() string {
	return fmt.Sprintf("short message: need %d bytes, got %d", e.Want, e.Got)
}

// UnknownTypeError reports a message type nibble this package does not decode.
type UnknownTypeError struct {
	Type uint8
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown message type 0x%x", e.Type)
}

// Decode parses a single 25-byte message, dispatching on the type nibble of
// the header byte.
func Decode(data []byte) (Message, error) {
	if len(data) == 0 {
		return nil, &ShortMessageError{Want: 1, Got: 0}
	}

	typ := Type((data[0] >> 4) & 0x0f)
	body := data[1:]

	switch typ {
	case TypeBasicID:
		return DecodeBasicID(body)
	case TypeLocation:
		return DecodeLocation(body)
	case TypeSystem:
		return DecodeSystem(body)
	}
	return nil, &UnknownTypeError{Type: uint8(typ)}
}
