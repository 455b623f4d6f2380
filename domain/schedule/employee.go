package schedule

type Day int
type Shift int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	Morning Shift = iota
	Afternoon
	Evening
)

// Days and Shifts fix the iteration order of the week grid.
var Days = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
var Shifts = [...]Shift{Morning, Afternoon, Evening}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
var shiftNames = [...]string{"Morning", "Afternoon", "Evening"}

func (d Day) String() string {
	return dayNames[d]
}

func (s Shift) String() string {
	return shiftNames[s]
}

// Employee is a pure domain entity: a name, declared preferences,
// and the shifts the scheduler assigned this week.
type Employee struct {
	name     string
	prefs    map[Day]Shift
	assigned map[Day]Shift
	days     int
}

// NewEmployee creates an employee with no preferences.
func NewEmployee(name string) *Employee {
	return &Employee{
		name:     name,
		prefs:    make(map[Day]Shift),
		assigned: make(map[Day]Shift),
	}
}

// SetPreference declares the one shift the employee wants on a day.
func (e *Employee) SetPreference(day Day, shift Shift) {
	e.prefs[day] = shift
}

func (e *Employee) Name() string {
	return e.name
}

// DaysWorked returns how many days the employee is assigned this week.
func (e *Employee) DaysWorked() int {
	return e.days
}

// ShiftOn returns the assigned shift for a day, if any.
func (e *Employee) ShiftOn(day Day) (Shift, bool) {
	s, ok := e.assigned[day]
	return s, ok
}

func (e *Employee) available(day Day) bool {
	_, busy := e.assigned[day]
	return !busy && e.days < maxDaysPerWeek
}

func (e *Employee) prefers(day Day, shift Shift) bool {
	s, ok := e.prefs[day]
	return ok && s == shift
}

func (e *Employee) assign(day Day, shift Shift) {
	if _, busy := e.assigned[day]; busy {
		return
	}
	e.assigned[day] = shift
	e.days++
}

func (e *Employee) clearWeek() {
	clear(e.assigned)
	e.days = 0
}
