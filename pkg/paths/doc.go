// Package paths resolves install destinations.
//
// Destination paths handed to pkghelper may reference environment
// variables ($NAME or ${NAME}). Expansion is strict: a reference to an
// unset variable is an error rather than an empty string, so a missing
// DESTDIR can never silently turn "$DESTDIR/usr/bin" into "/usr/bin".
//
// All paths use forward slashes. Join collapses repeated separators so
// callers can concatenate roots and relative entries without cleaning.
package paths
