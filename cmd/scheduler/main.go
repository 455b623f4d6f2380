package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"memlab/domain/schedule"
)

// A fixed roster: this demo takes no input.
var roster = []struct {
	name  string
	prefs map[schedule.Day]schedule.Shift
}{
	{"Alice", map[schedule.Day]schedule.Shift{schedule.Monday: schedule.Morning, schedule.Wednesday: schedule.Morning}},
	{"Bob", map[schedule.Day]schedule.Shift{schedule.Monday: schedule.Evening, schedule.Friday: schedule.Evening}},
	{"Carol", map[schedule.Day]schedule.Shift{schedule.Tuesday: schedule.Afternoon, schedule.Saturday: schedule.Morning}},
	{"Dan", map[schedule.Day]schedule.Shift{schedule.Thursday: schedule.Evening}},
	{"Erin", map[schedule.Day]schedule.Shift{schedule.Sunday: schedule.Afternoon, schedule.Tuesday: schedule.Morning}},
	{"Frank", map[schedule.Day]schedule.Shift{schedule.Wednesday: schedule.Evening}},
	{"Grace", map[schedule.Day]schedule.Shift{schedule.Friday: schedule.Morning, schedule.Sunday: schedule.Morning}},
	{"Henry", map[schedule.Day]schedule.Shift{schedule.Saturday: schedule.Evening}},
	{"Ivy", nil},
	{"Jack", nil},
	{"Kara", nil},
	{"Liam", nil},
	{"Mona", nil},
	{"Nate", nil},
}

func main() {
	sched := schedule.NewScheduler(rand.New(rand.NewSource(42)))
	for _, r := range roster {
		e := schedule.NewEmployee(r.name)
		for day, shift := range r.prefs {
			e.SetPreference(day, shift)
		}
		if err := sched.AddEmployee(e); err != nil {
			log.Fatalf("roster setup failed: %v", err)
		}
	}

	fmt.Println("--- Generating Schedule ---")
	warnings := sched.Generate()
	for _, w := range warnings {
		fmt.Println("Warning:", w)
	}

	printSchedule(sched)
	printSummary(sched)
}

func printSchedule(s *schedule.Scheduler) {
	line := strings.Repeat("=", 80)
	fmt.Println(line)
	fmt.Println("                    WEEKLY EMPLOYEE SCHEDULE")
	fmt.Println(line)

	fmt.Printf("%-12s", "Day")
	for _, shift := range schedule.Shifts {
		fmt.Printf("%-25s", shift)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 80))

	for _, day := range schedule.Days {
		fmt.Printf("%-12s", day)
		for _, shift := range schedule.Shifts {
			fmt.Printf("%-25s", cell(s.Assigned(day, shift)))
		}
		fmt.Println()
	}
	fmt.Println(strings.Repeat("-", 80))
}

func cell(assigned []*schedule.Employee) string {
	if len(assigned) == 0 {
		return "No staff"
	}
	names := make([]string, len(assigned))
	for i, e := range assigned {
		names[i] = e.Name()
	}
	text := strings.Join(names, ", ")
	if len(text) > 22 {
		text = text[:22] + "..."
	}
	return text
}

func printSummary(s *schedule.Scheduler) {
	fmt.Println("\nEMPLOYEE SUMMARY:")
	for _, e := range s.Employees() {
		fmt.Printf("%-15s: %d days worked", e.Name(), e.DaysWorked())
		switch {
		case e.DaysWorked() > 5:
			fmt.Print(" (OVERWORKED!)")
		case e.DaysWorked() < 2:
			fmt.Print(" (Underutilized)")
		}
		fmt.Println()
	}
}
