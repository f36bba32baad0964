package driven

import "github.com/nordfuton/quizmatch-cli/internal/core/domain"

// MappingSource supplies the tag mapping the scoring engine matches
// product tags against. Implementations may reload the mapping behind
// the scenes; Mapping must always return a consistent snapshot.
type MappingSource interface {
	// Mapping returns the current tag mapping.
	Mapping() domain.TagMapping
}
