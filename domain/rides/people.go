package rides

import "memlab/infra/memory"

// Driver holds the rides assigned to them. Rides arrive as shared
// handles; the driver clones the handle, so the same ride stays
// alive for every party that recorded it.
type Driver struct {
	id     uint64
	name   string
	rating float64
	rides  []*memory.Shared[Ride]
}

func NewDriver(id uint64, name string, rating float64) *Driver {
	return &Driver{id: id, name: name, rating: rating}
}

func (d *Driver) ID() uint64      { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide records a completed ride, taking a new holder of it.
func (d *Driver) AddRide(h *memory.Shared[Ride]) {
	d.rides = append(d.rides, h.Clone())
}

func (d *Driver) RideCount() int {
	return len(d.rides)
}

// Earnings sums the fares of the driver's rides.
func (d *Driver) Earnings() float64 {
	total := 0.0
	for _, h := range d.rides {
		total += h.Get().Fare()
	}
	return total
}

// Rider holds their requested rides the same way a driver does.
type Rider struct {
	id    uint64
	name  string
	rides []*memory.Shared[Ride]
}

func NewRider(id uint64, name string) *Rider {
	return &Rider{id: id, name: name}
}

func (r *Rider) ID() uint64   { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide records a ride in the rider's history, taking a new
// holder of it.
func (r *Rider) RequestRide(h *memory.Shared[Ride]) {
	r.rides = append(r.rides, h.Clone())
}

func (r *Rider) RideCount() int {
	return len(r.rides)
}

// Rides returns the rider's history in request order.
func (r *Rider) Rides() []Ride {
	out := make([]Ride, len(r.rides))
	for i, h := range r.rides {
		out[i] = h.Get()
	}
	return out
}

// Spent sums the fares of the rider's history.
func (r *Rider) Spent() float64 {
	return TotalFares(r.Rides())
}
