package rides

import (
	"slices"

	"github.com/google/uuid"

	"memlab/domain/stream"
)

const (
	standardRate     = 2.0
	premiumRate      = 3.5
	luxuryMultiplier = 1.8
)

// Ride is a priced trip. Fare dispatches on the concrete variant.
type Ride interface {
	ID() string
	Pickup() string
	Dropoff() string
	Distance() float64
	Fare() float64
	Kind() string
}

// baseRide carries the fields every variant shares.
type baseRide struct {
	id       string
	pickup   string
	dropoff  string
	distance float64
}

func newBaseRide(pickup, dropoff string, distance float64) baseRide {
	return baseRide{
		id:       uuid.NewString(),
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
	}
}

func (r baseRide) ID() string        { return r.id }
func (r baseRide) Pickup() string    { return r.pickup }
func (r baseRide) Dropoff() string   { return r.dropoff }
func (r baseRide) Distance() float64 { return r.distance }

// StandardRide is priced at the flat base rate.
type StandardRide struct {
	baseRide
}

func NewStandard(pickup, dropoff string, distance float64) *StandardRide {
	return &StandardRide{baseRide: newBaseRide(pickup, dropoff, distance)}
}

func (r *StandardRide) Fare() float64 {
	return r.distance * standardRate
}

func (r *StandardRide) Kind() string {
	return "Standard"
}

// PremiumRide is priced at a higher base rate times a luxury
// multiplier.
type PremiumRide struct {
	baseRide
}

func NewPremium(pickup, dropoff string, distance float64) *PremiumRide {
	return &PremiumRide{baseRide: newBaseRide(pickup, dropoff, distance)}
}

func (r *PremiumRide) Fare() float64 {
	return r.distance * premiumRate * luxuryMultiplier
}

func (r *PremiumRide) Kind() string {
	return "Premium"
}

// TotalFares sums the fares of mixed ride variants through the
// interface.
func TotalFares(all []Ride) float64 {
	return stream.Reduce(slices.Values(all), 0.0, func(acc float64, r Ride) float64 {
		return acc + r.Fare()
	})
}
