package domain

// TextEntity is the unit of text that flows through transforms and merges.
// Its content is never changed in place; WithText yields a new entity.
type TextEntity struct {
	content string
}

// NewTextEntity wraps raw text in an entity.
func NewTextEntity(text string) *TextEntity {
	return &TextEntity{content: text}
}

// Text returns the entity content.
func (e *TextEntity) Text() string {
	return e.content
}

// WithText returns a new entity holding text. The receiver is left untouched.
func (e *TextEntity) WithText(text string) *TextEntity {
	return &TextEntity{content: text}
}
