package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 4, cx)
	assert.Equal(t, 5, cy)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 3))
	assert.Equal(t, 3, Clamp(50, 1, 3))
	assert.Equal(t, 2, Clamp(2, 1, 3))
	assert.Equal(t, 1.0, ClampF(1.5, 0, 1))
	assert.Equal(t, 0.0, ClampF(-0.2, 0, 1))
	assert.Equal(t, 0.25, ClampF(0.25, 0, 1))
}

func TestRuntimeConfigTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}

	assert.Equal(t, 16, cfg.Ticks(280*time.Millisecond))
	assert.Equal(t, 7, cfg.Ticks(120*time.Millisecond))
	assert.Equal(t, 1, cfg.Ticks(0), "never less than one tick")

	assert.Equal(t, 60, RuntimeConfig{}.Ticks(time.Second), "zero tick rate falls back to 60")
}
