package overlay

// State is the stage an overlay reached
type State string

const (
	StateEnumerating    State = "enumerating"
	StateCopyingEntries State = "copying"
	StateRunningHooks   State = "hooks"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

// EntryKind distinguishes directories from installed files
type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
)

// EntryStatus is the outcome of a single entry
type EntryStatus string

const (
	StatusInstalled EntryStatus = "installed"
	StatusCreated   EntryStatus = "created"
	StatusSkipped   EntryStatus = "skipped"
	StatusFailed    EntryStatus = "failed"
)

// EntryResult records what happened to one source entry
type EntryResult struct {
	Path        string
	Source      string
	Destination string
	Kind        EntryKind
	Status      EntryStatus
	Err         error
}

// OK reports whether the entry reached its destination
func (e EntryResult) OK() bool {
	return e.Status == StatusInstalled || e.Status == StatusCreated
}

// Report summarizes an overlay run
type Report struct {
	Source      string
	Destination string
	State       State
	Entries     []EntryResult
	HooksRun    []string
	FailedHook  string
}

// Count returns how many entries ended with status
func (r *Report) Count(status EntryStatus) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Problems returns the entries that were skipped or failed
func (r *Report) Problems() []EntryResult {
	var out []EntryResult
	for _, e := range r.Entries {
		if !e.OK() {
			out = append(out, e)
		}
	}
	return out
}
