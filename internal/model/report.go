package model

// State is the terminal classification of one file in a header run.
type State int

const (
	// StateGood means the copyright line is present and current.
	StateGood State = iota
	// StateNone means no copyright line was found and nothing was written.
	StateNone
	// StateDate means the copyright line is stale and was not written.
	StateDate
	// StateEmpty means the file has no content.
	StateEmpty
	// StateWrote means a header was inserted or a stale line was fixed.
	StateWrote
)

var stateNames = map[State]string{
	StateGood:  "GOOD",
	StateNone:  "NONE",
	StateDate:  "DATE",
	StateEmpty: "EMPTY",
	StateWrote: "WROTE",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "UNKNOWN"
}

// States lists every State in report order.
func States() []State {
	return []State{StateGood, StateNone, StateDate, StateEmpty, StateWrote}
}

// FileResult holds the header classification for a single file.
type FileResult struct {
	Source Source
	State  State
}

// FileFailure records an I/O error that prevented a file from being processed.
type FileFailure struct {
	Path Path
	Err  error
}

// VersionResult describes the edit made by a version bump.
type VersionResult struct {
	Path Path
	Kind VersionKind
	Line int    // 0-based index of the matched line
	Old  string // matched line before the edit
	New  string // replacement line, or the first inserted line
	// Inserted is set when a changelog stanza was added before Line
	// instead of rewriting it.
	Inserted bool
}

// CountRow is one row of a line count report. Rows for a language group
// carry the group name in Name and an empty Path.
type CountRow struct {
	Name  string
	Path  Path
	Lines int
	Code  int
}
