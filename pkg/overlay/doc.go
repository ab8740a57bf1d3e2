// Package overlay installs a whole directory tree onto a destination root.
//
// An overlay runs in three stages:
//
//	Enumerating -> CopyingEntries -> RunningHooks -> Done
//	                                      |
//	                                      +-> Failed (first failing hook)
//
// Every non-hidden entry of the source is visited in walk order. Each
// entry's relative path is resolved against the environment before being
// joined under the destination, so a source tree may contain entries such
// as "$LIBDIR/libfoo.so". Directories are created, everything else is
// installed with default metadata.
//
// Copying is best effort: an entry that cannot be resolved or installed
// is recorded in the Report and the walk continues. Hooks from the
// reserved hook directory run once the copy is complete; the first hook
// that fails stops the overlay.
package overlay
