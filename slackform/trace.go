package slackform

// Trace receives diagnostic output during pivoting and selection. It is a
// no-op by default so normal use and tests stay silent; set it to wrap
// fmt.Printf (Trace = func(format string, args ...interface{}) {
// fmt.Printf(format, args...) }) to reproduce the teacher's inline
// diagnostic printing. Printing is a display concern kept separate from
// the solver's return values, per the original_source note that the
// source's diagnostics are side effects of a display routine.
var Trace = func(format string, args ...interface{}) {}
