package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator produces 26-character ULID strings used as user identifiers.
// ULIDs embed a millisecond timestamp, so ids sort lexicographically in
// creation order.
type ULIDGenerator struct {
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a fresh ULID based on the current time and crypto/rand
// entropy. On the (practically unreachable) entropy failure it falls back to
// ulid.Make, which panics only if the runtime random source is broken.
func (g *ULIDGenerator) Generate() string {
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	if err != nil {
		return ulid.Make().String()
	}

	return id.String()
}
