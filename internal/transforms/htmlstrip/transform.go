// Package htmlstrip provides a transform that reduces HTML markup to plain text.
package htmlstrip

import (
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Transform implements the interface.
var _ driven.Transform = (*Transform)(nil)

// Pre-compiled regular expressions for HTML stripping.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
)

// Transform removes tags, comments, and script and style bodies, then
// decodes entities. Tags become word separators, so "good<br />bad" yields
// two words. The result is a single line with single spaces.
type Transform struct{}

// New creates a new HTML strip transform.
func New() *Transform {
	return &Transform{}
}

// Name returns the transform name.
func (t *Transform) Name() string {
	return "html_strip"
}

// Process returns a new entity with markup removed.
func (t *Transform) Process(entity *domain.TextEntity) *domain.TextEntity {
	content := entity.Text()

	content = scriptTag.ReplaceAllString(content, " ")
	content = styleTag.ReplaceAllString(content, " ")
	content = htmlComments.ReplaceAllString(content, " ")
	content = allTags.ReplaceAllString(content, " ")

	// Decode after stripping so escaped angle brackets survive as text
	content = html.UnescapeString(content)

	return entity.WithText(strings.Join(strings.Fields(content), " "))
}
