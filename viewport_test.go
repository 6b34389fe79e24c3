package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportStackRootCannotBePopped(t *testing.T) {
	s := NewViewportStack()
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, DefaultArea, s.Current())
}

func TestViewportStackPushPop(t *testing.T) {
	s := NewViewportStack()
	s.Push(Selection{X: 10, Y: 20, SideLength: 30}, 100)
	assert.Equal(t, 2, s.Depth())
	assert.NotEqual(t, DefaultArea, s.Current())

	assert.True(t, s.Pop())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, DefaultArea, s.Current())
}

func TestViewportStackIdentityZoom(t *testing.T) {
	s := NewViewportStack()
	s.Push(Selection{X: 0, Y: 0, SideLength: 256}, 256)
	assert.Equal(t, DefaultArea, s.Current())
	assert.Equal(t, 2, s.Depth())
}

func TestViewportStackHalfZoom(t *testing.T) {
	s := NewViewportStack()
	s.Push(Selection{X: 25, Y: 25, SideLength: 50}, 100)
	got := s.Current()
	assert.Equal(t, DefaultArea.SideLength/2, got.SideLength)
	assert.Equal(t, -0.75, got.OriginX)
	assert.Equal(t, -0.75, got.OriginY)

	// Zooms compose relative to the current top.
	s.Push(Selection{X: 50, Y: 0, SideLength: 50}, 100)
	got = s.Current()
	assert.Equal(t, 0.75, got.SideLength)
	assert.Equal(t, 0.0, got.OriginX)
	assert.Equal(t, -0.75, got.OriginY)
}

func TestViewportStackRepeatedZoomIsNotClamped(t *testing.T) {
	s := NewViewportStack()
	for i := 0; i < 60; i++ {
		s.Push(Selection{X: 0, Y: 0, SideLength: 1}, 2)
	}
	assert.Equal(t, 61, s.Depth())
	assert.Greater(t, s.Current().SideLength, 0.0)
	assert.Less(t, s.Current().SideLength, 1e-15)
}

func TestViewportStackRedo(t *testing.T) {
	s := NewViewportStack()
	assert.False(t, s.Redo())

	s.Push(Selection{X: 25, Y: 25, SideLength: 50}, 100)
	zoomed := s.Current()
	require.True(t, s.Pop())
	require.True(t, s.Redo())
	assert.Equal(t, zoomed, s.Current())
	assert.False(t, s.Redo())

	// A new zoom forgets what could have been redone.
	require.True(t, s.Pop())
	s.Push(Selection{X: 0, Y: 0, SideLength: 10}, 100)
	assert.False(t, s.Redo())
}

func TestViewportStackResetAndHistory(t *testing.T) {
	s := NewViewportStack()
	assert.False(t, s.Reset())

	s.Push(Selection{X: 25, Y: 25, SideLength: 50}, 100)
	s.PushArea(Area{OriginX: 0, OriginY: 0, SideLength: 0.5})
	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, DefaultArea, history[0])
	assert.Equal(t, Area{OriginX: 0, OriginY: 0, SideLength: 0.5}, history[2])

	assert.True(t, s.Reset())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, DefaultArea, s.Current())
	assert.False(t, s.Redo())

	// The returned history is a copy.
	history[0] = Area{}
	assert.Equal(t, DefaultArea, s.History()[0])
}
