package types

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	Name        string
	State       string
	Country     string
	CountryCode string
}

// Label returns "Name, Country", or whichever of the two is known
func (l LocationInfo) Label() string {
	switch {
	case l.Name != "" && l.Country != "":
		return l.Name + ", " + l.Country
	case l.Name != "":
		return l.Name
	default:
		return l.Country
	}
}

// Location is a resolved position. A new Location replaces the previous one,
// it is never modified in place.
type Location struct {
	Coordinates Coords `json:"coordinates"`
	// DisplayName is empty when no place name could be resolved
	DisplayName string `json:"displayName,omitempty"`
}

func NewLocation(latitude, longitude float64, displayName string) Location {
	return Location{
		Coordinates: NewCoords(latitude, longitude),
		DisplayName: displayName,
	}
}
