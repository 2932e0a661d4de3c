// Package location supplies the coordinate pair used for nearby-event
// queries. Device location acquisition is out of scope; callers inject a
// Source and the Static fallback covers everything else.
package location

// Source supplies a latitude/longitude pair.
type Source interface {
	Coordinates() (lat, lon float64)
}

// Static is a fixed coordinate source.
type Static struct {
	Lat float64
	Lon float64
}

func (s Static) Coordinates() (float64, float64) {
	return s.Lat, s.Lon
}

// Default is the fallback used when nothing is configured (Chicago).
var Default = Static{Lat: 41.8781, Lon: -87.6298}
