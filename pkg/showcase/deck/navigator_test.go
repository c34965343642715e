package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNoSections)

	cfg := DefaultConfig()
	cfg.EdgeBuffer = 9
	_, err = New(testSections(), cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRequestNavigateLocksThenUnlocks(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	require.True(t, h.nav.RequestNavigate(3))
	assert.Equal(t, State{ActiveIndex: 3, Locked: true}, h.nav.State())

	h.advance(999 * time.Millisecond)
	assert.True(t, h.nav.State().Locked, "lock must hold for the whole transition")

	h.advance(time.Millisecond)
	assert.Equal(t, State{ActiveIndex: 3, Locked: false}, h.nav.State())

	require.Len(t, h.events, 2)
	assert.Equal(t, EventTransitionStarted, h.events[0].Kind)
	assert.Equal(t, 0, h.events[0].From)
	assert.Equal(t, 3, h.events[0].To)
	assert.Equal(t, TransitionSlide, h.events[0].Style)
	assert.Equal(t, time.Second, h.events[0].Duration)
	assert.Equal(t, EventTransitionEnded, h.events[1].Kind)
}

func TestRequestNavigateIgnoresInvalidTargets(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	for _, target := range []int{-1, 0, 5, 42} {
		assert.False(t, h.nav.RequestNavigate(target), "target %d", target)
	}
	assert.Equal(t, State{}, h.nav.State())
	assert.Empty(t, h.events)
	assert.Empty(t, h.announced)
}

func TestRequestNavigateDropsIntentsWhileLocked(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	require.True(t, h.nav.RequestNavigate(2))
	assert.False(t, h.nav.RequestNavigate(4))
	assert.False(t, h.nav.RequestNavigate(0))

	h.settle()
	assert.Equal(t, 2, h.nav.State().ActiveIndex, "dropped intents must not be replayed")
	assert.Zero(t, h.sched.Pending(), "no extra cooldown queued")
	assert.Len(t, h.events, 2)
}

func TestAnnouncementNamesTheNewSection(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	h.nav.RequestNavigate(1)
	require.Equal(t, []string{"Navigated to Key Capabilities section"}, h.announced)
	assert.Equal(t, h.announced[0], h.events[0].Announcement)
}

func TestCustomAnnouncement(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections(),
		WithAnnouncement(func(s Section) string { return "now: " + s.ID }))

	h.nav.RequestNavigate(4)
	assert.Equal(t, []string{"now: final"}, h.announced)
}

func TestIndicatorsFollowActiveIndex(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())
	h.nav.RequestNavigate(2)

	indicators := h.nav.Indicators()
	require.Len(t, indicators, 5)
	for i, ind := range indicators {
		assert.Equal(t, i, ind.Index)
		assert.Equal(t, sectionNames[i], ind.Name)
		assert.Equal(t, i == 2, ind.Active)
	}
}

func TestNavigateFuncMatchesRequestNavigate(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())
	navigate := h.nav.NavigateFunc()

	navigate(2)
	assert.Equal(t, State{ActiveIndex: 2, Locked: true}, h.nav.State())

	navigate(7)
	navigate(-3)
	h.settle()
	assert.Equal(t, State{ActiveIndex: 2}, h.nav.State())
}

func TestReducedMotionShortensCooldown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReducedMotion = true
	h := newHarness(t, cfg, testSections())

	require.True(t, h.nav.RequestNavigate(1))
	require.Len(t, h.events, 1)
	assert.Equal(t, TransitionFade, h.events[0].Style)
	assert.Less(t, h.events[0].Duration, time.Second)

	h.advance(cfg.ReducedTransitionDuration)
	assert.False(t, h.nav.State().Locked)
}

func TestSetReducedMotionAppliesToNextTransition(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	h.nav.SetReducedMotion(true)
	h.nav.RequestNavigate(1)
	h.advance(150 * time.Millisecond)
	assert.False(t, h.nav.State().Locked)

	h.nav.SetReducedMotion(false)
	h.nav.RequestNavigate(2)
	h.advance(150 * time.Millisecond)
	assert.True(t, h.nav.State().Locked)
	assert.Equal(t, TransitionSlide, h.events[len(h.events)-1].Style)
}

func TestWithInitialIndex(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections(), WithInitialIndex(3))
	assert.Equal(t, 3, h.nav.State().ActiveIndex)
	assert.Equal(t, "comparison", h.nav.Active().ID)

	h2 := newHarness(t, DefaultConfig(), testSections(), WithInitialIndex(12))
	assert.Equal(t, 0, h2.nav.State().ActiveIndex)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	var got []EventKind
	unsubscribe := h.nav.Subscribe(func(ev Event) { got = append(got, ev.Kind) })

	h.nav.RequestNavigate(1)
	unsubscribe()
	h.settle()

	assert.Equal(t, []EventKind{EventTransitionStarted}, got)
	assert.Len(t, h.events, 2)
}

func TestCloseCancelsPendingCooldown(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())

	h.nav.RequestNavigate(1)
	require.Equal(t, 1, h.sched.Pending())

	h.nav.Close()
	assert.Equal(t, 0, h.sched.Pending())

	h.settle()
	assert.Equal(t, State{ActiveIndex: 1, Locked: true}, h.nav.State(), "state is frozen after Close")
	assert.False(t, h.nav.RequestNavigate(2))
	assert.Len(t, h.events, 1)

	h.nav.Close()
}

func TestDefaultSchedulerIsDrainable(t *testing.T) {
	clock := newFakeClock()
	nav, err := New(testSections(), DefaultConfig(), WithClock(clock))
	require.NoError(t, err)

	loop := nav.Loop()
	require.NotNil(t, loop)
	require.True(t, nav.RequestNavigate(3))
	assert.Equal(t, 1, loop.Pending())

	clock.Advance(nav.Config().TransitionDuration)
	assert.Equal(t, 1, loop.RunDue(clock.Now()))
	assert.Equal(t, State{ActiveIndex: 3}, nav.State())
}

func TestLoopWithSuppliedScheduler(t *testing.T) {
	h := newHarness(t, DefaultConfig(), testSections())
	assert.Same(t, h.sched, h.nav.Loop())

	nav, err := New(testSections(), DefaultConfig(), WithScheduler(schedulerFunc(nil)))
	require.NoError(t, err)
	assert.Nil(t, nav.Loop())
}

type schedulerFunc func(d time.Duration, fn func()) Task

func (f schedulerFunc) AfterFunc(d time.Duration, fn func()) Task { return f(d, fn) }
