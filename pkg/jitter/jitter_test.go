package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationStaysInRange(t *testing.T) {
	base := time.Second
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestExponentialBackoffRespectsCap(t *testing.T) {
	base := time.Second
	max := 4 * time.Second

	// attempt 0 — базовая задержка, attempt 10 — упирается в потолок
	assert.LessOrEqual(t, ExponentialBackoff(base, max, 0, 0), base)
	assert.LessOrEqual(t, ExponentialBackoff(base, max, 10, 0), max)

	got := ExponentialBackoff(base, max, 2, 0)
	assert.Equal(t, 4*time.Second, got)
}
