// Package schedule implements a weekly shift scheduler: employees
// declare per-day shift preferences, the scheduler assigns by
// preference first and then tops every shift up to a minimum
// headcount from whoever is still available.
//
// Generation is deterministic under an injected random source and
// never prints; staffing gaps come back as warnings.
package schedule
