package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for import runs and request correlation.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return value.String(), nil
}

// Static always returns the same id. Useful in tests.
type Static string

func (s Static) NewID() (string, error) {
	return string(s), nil
}
