package rollbar

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// SeedMaterial is the content an identifier is derived from. Two reports
// with identical material produce the same identifier.
type SeedMaterial struct {
	Level       Level
	Message     string
	Token       string
	Scope       string
	Environment string
	Metadata    map[string]any
	TimestampMS int64
}

// NewIdentifier derives a UUID for a report from its content and timestamp.
//
// The material is hashed with Murmur3 using the timestamp as hash seed, and
// the hash XOR the timestamp seeds a pseudo-random generator from which a
// version 4 UUID is read. Reports sent within the same millisecond therefore
// only collide when their content is identical.
//
// The result is NOT cryptographically secure. It is a deduplication hint for
// the Rollbar API and must not be used where unpredictability matters.
// Identical reports sent within the same millisecond by different processes
// receive the same identifier.
func NewIdentifier(seed SeedMaterial) string {
	// Sum32WithSeed trips checkptr under -race; the streaming hasher doesn't.
	h := murmur3.New32WithSeed(uint32(seed.TimestampMS))
	_, _ = h.Write(seed.serialize())
	sum := h.Sum32()
	rng := rand.New(rand.NewSource(int64(sum) ^ seed.TimestampMS)) //nolint:gosec // dedup hint, not a secret

	// Reading from *rand.Rand never fails.
	id, _ := uuid.NewRandomFromReader(rng)

	return id.String()
}

func (s SeedMaterial) serialize() []byte {
	fields := []any{
		s.Level.String(),
		s.Message,
		s.Token,
		s.Scope,
		s.Environment,
		s.Metadata,
		s.TimestampMS,
	}

	b, err := json.Marshal(fields)
	if err != nil {
		// Metadata holding values JSON can't encode. fmt sorts map keys too,
		// so this stays deterministic.
		return fmt.Appendf(nil, "%v", fields)
	}

	return b
}
