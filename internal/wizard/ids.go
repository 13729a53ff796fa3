package wizard

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces entry ids. Ids only need to be unique within a single
// wizard session.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// CounterGenerator issues "<prefix>1", "<prefix>2", ... in call order.
// It is deterministic and meant for tests and replays.
type CounterGenerator struct {
	Prefix string
	next   int
}

// NewID implements IDGenerator.
func (g *CounterGenerator) NewID() string {
	g.next++
	return g.Prefix + strconv.Itoa(g.next)
}
