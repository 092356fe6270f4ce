package deviceinfo

import (
	"fmt"

	"github.com/OpenTraceLab/zeroregs/pkg/idcode"
)

// key is used for device database lookups
type key struct {
	Series uint8
	DevSel uint8
}

// db is the in-memory device database
var db = make(map[key]DeviceInfo)

// register adds a device entry to the database
func register(k key, info DeviceInfo) {
	db[k] = info
}

// Lookup returns device information for a raw DSU DID value.
// Falls back to generic info if the part is not in the database.
func Lookup(rawDID uint32) DeviceInfo {
	id := idcode.ParseDeviceID(rawDID)

	k := key{Series: id.Series, DevSel: id.DevSel}
	if info, ok := db[k]; ok {
		info.ID = id
		info.Known = true
		return info
	}

	// Unknown device – return minimal info
	return DeviceInfo{
		ID:          id,
		Name:        "Unknown device",
		Description: fmt.Sprintf("series %d devsel 0x%02X not in device database", id.Series, id.DevSel),
	}
}
