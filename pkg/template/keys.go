package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyGenerator produces identifiers for sections, fields, and table columns.
// Implementations must never return the same value twice within a process;
// tests may substitute a deterministic generator.
type KeyGenerator interface {
	SectionID() string
	FieldKey() string
	ColumnID() string
}

// NewKeyGenerator returns the default generator. Identifiers keep the
// familiar timestamp-prefixed shape but append a UUID fragment so rapid
// successive calls within the same millisecond cannot collide.
func NewKeyGenerator() KeyGenerator {
	return uuidKeys{}
}

type uuidKeys struct{}

func (uuidKeys) SectionID() string { return stamped("section") }
func (uuidKeys) FieldKey() string  { return stamped("field") }
func (uuidKeys) ColumnID() string  { return stamped("col") }

func stamped(prefix string) string {
	frag := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), frag)
}
