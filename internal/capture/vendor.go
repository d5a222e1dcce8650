package capture

import (
	"fmt"

	"github.com/ridwatch/ridwatch/pkg/rid"
)

// Remote ID rides in a vendor-specific information element (ID 221) whose
// OUI type byte is 13.
const remoteIDOUIType = 13

// SplitPacks slices a Remote ID vendor payload into its fixed-size message
// packs. Layout: byte 0 total length, byte 2 pack size, byte 3 pack count,
// then count packs of 25 bytes starting at offset 4.
func SplitPacks(payload []byte) ([][]byte, error) {
	if len(payload) < 4 {
		return nil, fmt.Errorf("vendor payload too short: %d bytes", len(payload))
	}

	size := int(payload[2])
	count := int(payload[3])
	if size != rid.MessageLen {
		return nil, fmt.Errorf("unexpected pack size %d", size)
	}

	packs := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		start := size*i + 4
		end := start + size
		if end > len(payload) {
			return nil, fmt.Errorf("truncated payload: pack %d needs %d bytes, have %d", i, end, len(payload))
		}
		packs = append(packs, payload[start:end])
	}
	return packs, nil
}
