package domain

import "fmt"

// Split identifies one half of the corpus.
type Split string

// Available splits.
const (
	SplitTrain Split = "train"
	SplitTest  Split = "test"
)

// SplitOrder is the order in which splits are processed in both phases.
// Random draws are consumed in this order, so changing it changes every
// triggered output after the first split.
var SplitOrder = []Split{SplitTest, SplitTrain}

// IsValid returns true if the split is recognised.
func (s Split) IsValid() bool {
	return s == SplitTrain || s == SplitTest
}

// String returns the string representation.
func (s Split) String() string {
	return string(s)
}

// ManifestName returns the clean manifest filename for the split.
func (s Split) ManifestName() string {
	return string(s) + "_clean.csv"
}

// Class identifies the sentiment class directory of an example.
type Class string

// Available classes.
const (
	ClassPositive Class = "pos"
	ClassNegative Class = "neg"
)

// ClassOrder is the order classes are loaded within a split.
// Manifest rows follow it: positives first, then negatives.
var ClassOrder = []Class{ClassPositive, ClassNegative}

// Label is the binary label written to a manifest.
type Label int

// Labels for the two classes.
const (
	LabelNegative Label = 0
	LabelPositive Label = 1
)

// Label returns the binary label of the class.
func (c Class) Label() Label {
	if c == ClassPositive {
		return LabelPositive
	}
	return LabelNegative
}

// IsValid returns true if the class is recognised.
func (c Class) IsValid() bool {
	return c == ClassPositive || c == ClassNegative
}

// String returns the string representation.
func (c Class) String() string {
	return string(c)
}

// ManifestRow is one line of a clean manifest.
type ManifestRow struct {
	Filename string
	Label    Label
}

// String formats the row as written to disk, without the newline.
func (r ManifestRow) String() string {
	return fmt.Sprintf("%s, %d", r.Filename, r.Label)
}

// Example is a loaded entity together with its source filename and label.
type Example struct {
	Entity   *TextEntity
	Filename string
	Label    Label
}
