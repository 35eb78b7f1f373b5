package campaign

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Rand is the randomness source for per-step delay draws. The default is
// time-seeded; tests inject a fixed-seed source for reproducible workflows.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// IDSource generates unique ids for workflows and steps. The default draws
// from uuid; tests inject a sequential source to pin ids.
type IDSource interface {
	NewID(kind string) string
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type uuidSource struct{}

// NewID returns short prefixed ids like "/workflow_1a2b3c4d".
func (uuidSource) NewID(kind string) string {
	return fmt.Sprintf("/%s_%s", kind, uuid.New().String()[:8])
}
