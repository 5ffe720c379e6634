package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/fruitdrop/ecs"
)

func TestTimer(t *testing.T) {
	t.Run("repeating fires once per duration", func(t *testing.T) {
		timer := ecs.NewTimer(1.0)

		var fired []int
		for i := 1; i <= 12; i++ {
			if timer.Tick(0.25) {
				fired = append(fired, i)
			}
		}

		assert.Equal(t, []int{4, 8, 12}, fired)
		assert.Equal(t, 0.0, timer.Elapsed())
	})

	t.Run("repeating carries the remainder", func(t *testing.T) {
		timer := ecs.NewTimer(1.0)

		assert.False(t, timer.Tick(0.75))
		assert.True(t, timer.Tick(0.5))
		assert.True(t, timer.JustFinished())
		assert.Equal(t, 0.25, timer.Elapsed())
		assert.False(t, timer.Tick(0.5))
		assert.False(t, timer.JustFinished())
		assert.True(t, timer.Tick(0.25))
	})

	t.Run("long tick fires only once", func(t *testing.T) {
		timer := ecs.NewTimer(1.0)

		assert.True(t, timer.Tick(3.5))
		assert.Equal(t, 0.5, timer.Elapsed())
	})

	t.Run("reset rewinds", func(t *testing.T) {
		timer := ecs.NewTimer(1.0)

		assert.False(t, timer.Tick(0.75))
		timer.Reset()
		assert.Equal(t, 0.0, timer.Elapsed())
		assert.False(t, timer.Tick(0.75))
		assert.True(t, timer.Tick(0.25))
	})

	t.Run("non-positive duration panics", func(t *testing.T) {
		assert.Panics(t, func() { ecs.NewTimer(0) })
		assert.Panics(t, func() { ecs.NewTimer(-1) })
	})
}

func TestConditions(t *testing.T) {
	frame := &ecs.UpdateFrame{DeltaTime: 0.5}

	onTimer := ecs.OnTimer(1.0)
	assert.False(t, onTimer(frame))
	assert.True(t, onTimer(frame))
	assert.False(t, onTimer(frame))
}
