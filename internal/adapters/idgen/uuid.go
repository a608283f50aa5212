// Package idgen provides id generators for new board entities.
package idgen

import (
	"github.com/google/uuid"

	"github.com/example/taskboard/internal/ports/secondary"
)

// UUIDGenerator implements secondary.IDGenerator with random UUIDs.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator creates a generator. A non-empty prefix is prepended as "prefix-<uuid>".
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

var _ secondary.IDGenerator = (*UUIDGenerator)(nil)

// MakeID returns a new unique id.
func (g *UUIDGenerator) MakeID() string {
	id := uuid.NewString()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "-" + id
}
