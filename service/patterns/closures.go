package patterns

// MakeCounter returns a counter that captures its own count.
// Each returned counter owns independent state: interleaved calls
// on two counters never affect each other.
func MakeCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}
