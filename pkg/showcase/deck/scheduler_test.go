package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopSchedulerRunsDueTasksInOrder(t *testing.T) {
	clock := newFakeClock()
	s := NewLoopScheduler(clock)

	var ran []string
	s.AfterFunc(30*time.Millisecond, func() { ran = append(ran, "c") })
	s.AfterFunc(10*time.Millisecond, func() { ran = append(ran, "a") })
	s.AfterFunc(10*time.Millisecond, func() { ran = append(ran, "b") })
	s.AfterFunc(time.Second, func() { ran = append(ran, "late") })

	next, ok := s.NextDue()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(10*time.Millisecond), next)

	clock.Advance(30 * time.Millisecond)
	assert.Equal(t, 3, s.RunDue(clock.Now()))
	assert.Equal(t, []string{"a", "b", "c"}, ran)
	assert.Equal(t, 1, s.Pending())
}

func TestLoopSchedulerStop(t *testing.T) {
	clock := newFakeClock()
	s := NewLoopScheduler(clock)

	ran := false
	task := s.AfterFunc(time.Millisecond, func() { ran = true })
	assert.True(t, task.Stop())
	assert.False(t, task.Stop())

	clock.Advance(time.Second)
	assert.Zero(t, s.RunDue(clock.Now()))
	assert.False(t, ran)

	done := s.AfterFunc(0, func() {})
	s.RunDue(clock.Now())
	assert.False(t, done.Stop(), "stopping a finished task reports false")
}

func TestLoopSchedulerCallbackCanStopLaterTask(t *testing.T) {
	clock := newFakeClock()
	s := NewLoopScheduler(clock)

	var second Task
	secondRan := false
	s.AfterFunc(time.Millisecond, func() { second.Stop() })
	second = s.AfterFunc(2*time.Millisecond, func() { secondRan = true })

	clock.Advance(time.Second)
	assert.Equal(t, 1, s.RunDue(clock.Now()))
	assert.False(t, secondRan)
}

func TestLoopSchedulerDefersTasksQueuedDuringRun(t *testing.T) {
	clock := newFakeClock()
	s := NewLoopScheduler(clock)

	count := 0
	s.AfterFunc(0, func() {
		count++
		s.AfterFunc(0, func() { count++ })
	})

	assert.Equal(t, 1, s.RunDue(clock.Now()))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, s.RunDue(clock.Now()))
	assert.Equal(t, 2, count)
}

func TestGate(t *testing.T) {
	clock := newFakeClock()
	g := NewGate(clock, 100*time.Millisecond)

	assert.True(t, g.Allow())
	assert.False(t, g.Allow())
	clock.Advance(99 * time.Millisecond)
	assert.False(t, g.Allow())
	clock.Advance(time.Millisecond)
	assert.True(t, g.Allow())

	g.Reset()
	assert.True(t, g.Allow())
}

func TestAtEdge(t *testing.T) {
	flat := ScrollExtent{Offset: 0, Size: 400, ContentSize: 300}
	assert.True(t, AtEdge(flat, DirectionForward, 2))
	assert.True(t, AtEdge(flat, DirectionBackward, 2))
	assert.False(t, Absorbs(flat, DirectionForward, 2))

	tall := ScrollExtent{Offset: 1, Size: 400, ContentSize: 1000}
	assert.True(t, AtEdge(tall, DirectionBackward, 2))
	assert.False(t, AtEdge(tall, DirectionForward, 2))
	assert.False(t, AtEdge(tall, DirectionNone, 2))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, DirectionForward, DirectionOf(3))
	assert.Equal(t, DirectionBackward, DirectionOf(-0.5))
	assert.Equal(t, DirectionNone, DirectionOf(0))
	assert.Equal(t, 1, DirectionForward.Step())
	assert.Equal(t, -1, DirectionBackward.Step())
	assert.Equal(t, "none", DirectionNone.String())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	mutations := map[string]func(*Config){
		"negative duration":  func(c *Config) { c.TransitionDuration = -time.Second },
		"negative threshold": func(c *Config) { c.WheelThreshold = -1 },
		"negative throttle":  func(c *Config) { c.WheelThrottle = -1 },
		"negative noise":     func(c *Config) { c.TouchNoiseThreshold = -1 },
		"edge buffer":        func(c *Config) { c.EdgeBuffer = 6 },
		"velocity":           func(c *Config) { c.Velocity.PerPlatform = map[string]float64{"ios": -1} },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseTouchMode(t *testing.T) {
	m, err := ParseTouchMode("Lenient")
	require.NoError(t, err)
	assert.Equal(t, TouchLenient, m)

	m, err = ParseTouchMode("")
	require.NoError(t, err)
	assert.Equal(t, TouchStrict, m)

	_, err = ParseTouchMode("wobbly")
	assert.Error(t, err)
}

func TestVelocityPolicy(t *testing.T) {
	p := DefaultVelocityPolicy()
	assert.Equal(t, 0.2, p.MinVelocity("iOS"))
	assert.Equal(t, 0.25, p.MinVelocity("Android"))
	assert.Equal(t, 0.3, p.MinVelocity("Linux"))
}
