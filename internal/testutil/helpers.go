package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// NewTestRNG returns a seeded source so generated rows repeat between runs.
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger discards everything. Boards, generators and sessions all take one.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic fails the test unless f panics.
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Panics(t, f, msgAndArgs...)
}
