package utils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out globally unique identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequentialIDGenerator produces prefix-1, prefix-2, ... and is meant for
// tests that need predictable identifiers.
type SequentialIDGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{Prefix: prefix}
}

func (g *SequentialIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.Prefix, g.next)
}
