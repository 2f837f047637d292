package domain

// Location is one of the fixed rooms or states a client can occupy.
type Location string

const (
	LocationGroupRoom         Location = "Group Room"
	LocationBed               Location = "Bed"
	LocationMedicalOffice     Location = "Medical Office"
	LocationCaseManagerOffice Location = "Case Manager Office"
	LocationPeerSupportOffice Location = "Peer Support Office"
	LocationShower            Location = "Shower"
	LocationPatio             Location = "Patio"
	LocationAway              Location = "Away from Crisis Center"
)

// DefaultLocation is where new clients start and where unknown location
// names resolve to.
const DefaultLocation = LocationGroupRoom

// Locations lists every location in display order.
var Locations = []Location{
	LocationGroupRoom,
	LocationBed,
	LocationMedicalOffice,
	LocationCaseManagerOffice,
	LocationPeerSupportOffice,
	LocationShower,
	LocationPatio,
	LocationAway,
}

// Valid reports whether l is one of the fixed locations.
func (l Location) Valid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLocation resolves a location name. Unrecognised or empty names
// resolve to DefaultLocation rather than failing.
func ParseLocation(name string) Location {
	if name == "Away" {
		return LocationAway
	}
	l := Location(name)
	if !l.Valid() {
		return DefaultLocation
	}
	return l
}
