// Package output prints the user-facing status lines of pkghelper.
//
// Status lines are distinct from diagnostic logs: logs go through zerolog
// and obey -v, while status lines ("=> install: a -> b") are always shown.
// Components receive a Printer instead of writing to a global, so tests
// can capture output with a Recorder.
package output
