package domain

// ChangeType represents the type of corpus file change.
type ChangeType int

const (
	// ChangeCreated indicates a new text file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified text file.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed text file.
	ChangeDeleted
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// CorpusChange represents a change to one example file of an input corpus.
// Used by watch mode to decide when to regenerate.
type CorpusChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Path is the affected file.
	Path string
}
