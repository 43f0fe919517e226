package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcquireEnforcesInterval(t *testing.T) {
	gate := NewRateGate(3000) // 20ms between grants

	start := time.Now()
	gate.Acquire()
	gate.Acquire()

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAcquireFirstGrantIsImmediate(t *testing.T) {
	gate := NewRateGate(1) // one request per minute

	start := time.Now()
	gate.Acquire()

	assert.Less(t, time.Since(start), time.Second)
}
