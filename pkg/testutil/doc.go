// Package testutil holds fixtures shared by pkghelper's tests: a
// scriptable fake Runner and helpers for building source trees on disk.
package testutil
