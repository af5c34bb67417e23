package domain

import "context"

// Coordinates is a resolved venue location.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Geocoder resolves a free-text address to coordinates. Implementations
// return (nil, nil) when the address cannot be resolved; callers treat
// lookup errors as "no coordinates" and never fail the surrounding operation.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}
