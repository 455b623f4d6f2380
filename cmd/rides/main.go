package main

import (
	"fmt"

	"memlab/domain/rides"
	"memlab/infra/ident"
	"memlab/infra/memory"
)

func main() {
	fmt.Println("=== RIDE SHARING SYSTEM ===")

	// ---------------- Rides ----------------

	standard1 := memory.NewShared[rides.Ride](rides.NewStandard("Downtown", "Airport", 15.5))
	premium1 := memory.NewShared[rides.Ride](rides.NewPremium("Hotel", "Convention Center", 8.2))
	standard2 := memory.NewShared[rides.Ride](rides.NewStandard("Mall", "University", 12.0))
	premium2 := memory.NewShared[rides.Ride](rides.NewPremium("Airport", "Luxury Resort", 25.8))

	// ---------------- People ----------------

	drivers := ident.New(100)
	riders := ident.New(200)

	driver1 := rides.NewDriver(drivers.Next(), "John Smith", 4.8)
	driver2 := rides.NewDriver(drivers.Next(), "Sarah Johnson", 4.9)
	rider1 := rides.NewRider(riders.Next(), "Alice Brown")
	rider2 := rides.NewRider(riders.Next(), "Bob Wilson")

	driver1.AddRide(standard1)
	driver1.AddRide(premium1)
	driver2.AddRide(standard2)
	driver2.AddRide(premium2)

	rider1.RequestRide(standard1)
	rider1.RequestRide(premium2)
	rider2.RequestRide(premium1)
	rider2.RequestRide(standard2)

	// ---------------- Reports ----------------

	printDriver(driver1)
	printDriver(driver2)
	printRider(rider1)
	printRider(rider2)

	fmt.Println("\n=== ALL RIDES ===")
	all := []rides.Ride{standard1.Get(), premium1.Get(), standard2.Get(), premium2.Get()}
	for _, r := range all {
		printRide(r)
	}
	fmt.Printf("\nTotal Fares for All Rides: $%.2f\n", rides.TotalFares(all))
}

func printDriver(d *rides.Driver) {
	fmt.Println("\n=== DRIVER INFORMATION ===")
	fmt.Printf("Driver ID: %d\n", d.ID())
	fmt.Printf("Name: %s\n", d.Name())
	fmt.Printf("Rating: %.1f/5.0\n", d.Rating())
	fmt.Printf("Total Rides Completed: %d\n", d.RideCount())
	fmt.Printf("Total Earnings: $%.2f\n", d.Earnings())
}

func printRider(r *rides.Rider) {
	fmt.Println("\n=== RIDER RIDE HISTORY ===")
	fmt.Printf("Rider: %s (ID: %d)\n", r.Name(), r.ID())
	fmt.Printf("Total Rides: %d\n", r.RideCount())
	for i, ride := range r.Rides() {
		fmt.Printf("\n--- Ride %d ---\n", i+1)
		printRide(ride)
	}
	fmt.Printf("\nTotal Amount Spent: $%.2f\n", r.Spent())
}

func printRide(r rides.Ride) {
	fmt.Printf("[%s] %s -> %s\n", r.Kind(), r.Pickup(), r.Dropoff())
	fmt.Printf("Ride ID: %s\n", r.ID())
	fmt.Printf("Distance: %.1f miles\n", r.Distance())
	fmt.Printf("Fare: $%.2f\n", r.Fare())
}
