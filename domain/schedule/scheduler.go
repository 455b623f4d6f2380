package schedule

import (
	"fmt"
	"math/rand"
)

const (
	maxDaysPerWeek = 5
	maxPerShift    = 4
	minPerShift    = 2
)

// Scheduler owns the roster and the week grid.
type Scheduler struct {
	employees []*Employee
	grid      map[Day]map[Shift][]*Employee
	rng       *rand.Rand
}

// NewScheduler creates an empty scheduler. The random source drives
// the top-up pass; a seeded source makes Generate deterministic.
func NewScheduler(rng *rand.Rand) *Scheduler {
	s := &Scheduler{
		grid: make(map[Day]map[Shift][]*Employee),
		rng:  rng,
	}
	for _, day := range Days {
		s.grid[day] = make(map[Shift][]*Employee)
	}
	return s
}

// AddEmployee adds to the roster. Names are unique.
func (s *Scheduler) AddEmployee(e *Employee) error {
	for _, existing := range s.employees {
		if existing.name == e.name {
			return fmt.Errorf("schedule: employee %q already on roster", e.name)
		}
	}
	s.employees = append(s.employees, e)
	return nil
}

// Employees returns the roster in insertion order.
func (s *Scheduler) Employees() []*Employee {
	return s.employees
}

// Assigned returns the employees working a given day and shift.
func (s *Scheduler) Assigned(day Day, shift Shift) []*Employee {
	return s.grid[day][shift]
}

// Generate builds the week from scratch: a preference pass first,
// then a top-up pass that fills every shift to the minimum
// headcount. It returns a warning per shift that could not be
// staffed to the minimum.
func (s *Scheduler) Generate() []string {
	s.clear()
	s.assignByPreference()
	return s.ensureMinimumStaffing()
}

func (s *Scheduler) clear() {
	for _, day := range Days {
		for _, shift := range Shifts {
			s.grid[day][shift] = nil
		}
	}
	for _, e := range s.employees {
		e.clearWeek()
	}
}

func (s *Scheduler) assignByPreference() {
	for _, day := range Days {
		for _, shift := range Shifts {
			var eligible []*Employee
			for _, e := range s.employees {
				if e.available(day) && e.prefers(day, shift) {
					eligible = append(eligible, e)
				}
			}
			for i := 0; i < len(eligible) && i < maxPerShift; i++ {
				s.put(eligible[i], day, shift)
			}
		}
	}
}

func (s *Scheduler) ensureMinimumStaffing() []string {
	var warnings []string
	for _, day := range Days {
		for _, shift := range Shifts {
			for len(s.grid[day][shift]) < minPerShift {
				e := s.pickAvailable(day)
				if e == nil {
					warnings = append(warnings,
						fmt.Sprintf("cannot meet minimum staffing for %s %s shift", day, shift))
					break
				}
				s.put(e, day, shift)
			}
		}
	}
	return warnings
}

func (s *Scheduler) pickAvailable(day Day) *Employee {
	var available []*Employee
	for _, e := range s.employees {
		if e.available(day) {
			available = append(available, e)
		}
	}
	if len(available) == 0 {
		return nil
	}
	return available[s.rng.Intn(len(available))]
}

func (s *Scheduler) put(e *Employee, day Day, shift Shift) {
	if !e.available(day) {
		return
	}
	s.grid[day][shift] = append(s.grid[day][shift], e)
	e.assign(day, shift)
}
