// Package insert provides the random word-boundary insertion merge.
package insert

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure RandomInsert implements the interface.
var _ driven.Merge = (*RandomInsert)(nil)

// RandomInsert inserts the second entity into the first at a uniformly
// chosen word boundary. Text with k whitespace-delimited tokens has k+1
// boundaries; exactly one draw of rng.Intn(k+1) picks it.
//
// With more than two entities the extras are folded left: each one is
// inserted into the running result with a draw of its own.
type RandomInsert struct{}

// New creates a new random insert merge.
func New() *RandomInsert {
	return &RandomInsert{}
}

// Name returns the merge name.
func (m *RandomInsert) Name() string {
	return "random_insert"
}

// Merge inserts entities[1:] into entities[0] in order.
func (m *RandomInsert) Merge(entities []*domain.TextEntity, rng driven.RandomSource) (*domain.TextEntity, error) {
	if len(entities) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 entities, got %d",
			domain.ErrConfiguration, m.Name(), len(entities))
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: %s needs a random source", domain.ErrConfiguration, m.Name())
	}

	text := entities[0].Text()
	for _, e := range entities[1:] {
		text = insertAt(text, e.Text(), rng)
	}
	return entities[0].WithText(text), nil
}

// insertAt splices insert between the tokens of base at a random boundary.
// Pieces are joined with single spaces; empty pieces are dropped so no
// separator is doubled or left dangling.
func insertAt(base, insert string, rng driven.RandomSource) string {
	tokens := strings.Fields(base)
	b := rng.Intn(len(tokens) + 1)

	parts := make([]string, 0, 3)
	if b > 0 {
		parts = append(parts, strings.Join(tokens[:b], " "))
	}
	if insert != "" {
		parts = append(parts, insert)
	}
	if b < len(tokens) {
		parts = append(parts, strings.Join(tokens[b:], " "))
	}
	return strings.Join(parts, " ")
}
