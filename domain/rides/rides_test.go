package rides

import (
	"math"
	"testing"

	"memlab/infra/ident"
	"memlab/infra/memory"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func shared(r Ride) *memory.Shared[Ride] {
	return memory.NewShared(r)
}

func TestStandardFare(t *testing.T) {
	r := NewStandard("Downtown", "Airport", 15.5)
	if !almostEqual(r.Fare(), 31.0) {
		t.Errorf("standard fare should be 15.5 * 2.0 = 31.0, got %.2f", r.Fare())
	}
	if r.Kind() != "Standard" {
		t.Errorf("unexpected kind %q", r.Kind())
	}
}

func TestPremiumFare(t *testing.T) {
	r := NewPremium("Hotel", "Convention Center", 8.2)
	want := 8.2 * 3.5 * 1.8
	if !almostEqual(r.Fare(), want) {
		t.Errorf("premium fare should be %.2f, got %.2f", want, r.Fare())
	}
	if r.Kind() != "Premium" {
		t.Errorf("unexpected kind %q", r.Kind())
	}
}

func TestRideIDsAreUnique(t *testing.T) {
	a := NewStandard("A", "B", 1)
	b := NewStandard("A", "B", 1)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Error("each ride should get its own non-empty ID")
	}
}

func TestTotalFaresPolymorphic(t *testing.T) {
	all := []Ride{
		NewStandard("Mall", "University", 12.0),
		NewPremium("Airport", "Resort", 25.8),
	}
	want := 12.0*2.0 + 25.8*3.5*1.8
	if got := TotalFares(all); !almostEqual(got, want) {
		t.Errorf("expected total %.2f, got %.2f", want, got)
	}
}

func TestDriverEarnings(t *testing.T) {
	seq := ident.New(100)
	d := NewDriver(seq.Next(), "John Smith", 4.8)

	d.AddRide(shared(NewStandard("Downtown", "Airport", 15.5)))
	d.AddRide(shared(NewPremium("Hotel", "Convention Center", 8.2)))

	want := 15.5*2.0 + 8.2*3.5*1.8
	if !almostEqual(d.Earnings(), want) {
		t.Errorf("expected earnings %.2f, got %.2f", want, d.Earnings())
	}
	if d.RideCount() != 2 {
		t.Errorf("expected 2 rides, got %d", d.RideCount())
	}
}

func TestRiderSpent(t *testing.T) {
	seq := ident.New(200)
	r := NewRider(seq.Next(), "Alice Brown")

	r.RequestRide(shared(NewStandard("Mall", "University", 12.0)))
	r.RequestRide(shared(NewPremium("Airport", "Resort", 25.8)))

	want := 12.0*2.0 + 25.8*3.5*1.8
	if !almostEqual(r.Spent(), want) {
		t.Errorf("expected spend %.2f, got %.2f", want, r.Spent())
	}
}

func TestRideSharedBetweenDriverAndRider(t *testing.T) {
	h := shared(NewStandard("Downtown", "Airport", 15.5))
	d := NewDriver(1, "John Smith", 4.8)
	r := NewRider(2, "Alice Brown")

	d.AddRide(h)
	r.RequestRide(h)

	// Origin handle plus one holder each for driver and rider.
	if h.Refs() != 3 {
		t.Errorf("expected 3 holders of the ride, got %d", h.Refs())
	}
	if r.Rides()[0].ID() != h.Get().ID() {
		t.Error("driver and rider should reference the same ride value")
	}
}
