// Package stream implements composable, lazy pipeline stages over
// iter.Seq sources: Filter, Map, and Reduce, plus a Sum shortcut.
//
// Stages never materialize intermediate collections; elements flow
// one at a time from the source through every stage to the terminal
// reduction. A pipeline built over a restartable source (such as
// sequence.Values) can itself be run more than once.
package stream
