package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-hotel-registry/internal/domain/pets"
)

// manualClock junta los AfterFunc y los dispara a pedido.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// FireAll corre los timers pendientes, incluso los frenados, como haría un
// timer real que ya estaba en vuelo cuando se llamó Stop.
func (c *manualClock) FireAll() {
	c.mu.Lock()
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, t := range pending {
		t.fired = true
		t.fn()
	}
}

func (c *manualClock) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func TestRouter_StartsOnLanding(t *testing.T) {
	r := NewRouter(nil)
	assert.Equal(t, Landing, r.Current().Screen())
}

func TestRouter_DetailRequiresSelection(t *testing.T) {
	r := NewRouter(nil)

	_, err := r.Navigate(OwnerPetDetail)
	assert.ErrorIs(t, err, ErrSelectionRequired)
	_, err = r.Navigate(StaffPetDetail)
	assert.ErrorIs(t, err, ErrSelectionRequired)
	_, err = r.Navigate("settings")
	assert.ErrorIs(t, err, ErrUnknownScreen)

	_, err = r.Select(pets.Pet{ID: "1"}, Dashboard)
	assert.ErrorIs(t, err, ErrNotDetailScreen)

	assert.Equal(t, Landing, r.Current().Screen(), "failed transitions leave the view untouched")
}

func TestRouter_SelectCarriesPet(t *testing.T) {
	r := NewRouter(nil)
	_, err := r.Navigate(StaffSearch)
	require.NoError(t, err)

	tr, err := r.Select(pets.Pet{ID: "3", Name: "Rocky"}, StaffPetDetail)
	require.NoError(t, err)

	assert.True(t, tr.ScrollToTop)
	assert.Equal(t, StaffSearch, tr.From.Screen())

	dv, ok := r.Current().(DetailView)
	require.True(t, ok)
	assert.Equal(t, StaffPetDetail, dv.Screen())
	assert.Equal(t, "Rocky", dv.Pet.Name)

	tr, err = r.Navigate(StaffSearch)
	require.NoError(t, err)
	_, stillDetail := tr.To.(DetailView)
	assert.False(t, stillDetail)
}

func TestRouter_ObserversSeeEveryTransitionInOrder(t *testing.T) {
	r := NewRouter(nil)
	var seen []Screen
	r.OnTransition(func(tr Transition) { seen = append(seen, tr.To.Screen()) })

	_, _ = r.Navigate(Dashboard)
	_, _ = r.Select(pets.Pet{ID: "1"}, OwnerPetDetail)
	_, _ = r.Navigate(OwnerPetDetail) // rechazada
	_, _ = r.Navigate(AddPet)

	assert.Equal(t, []Screen{Dashboard, OwnerPetDetail, AddPet}, seen)
}

func TestScheduleNavigate_FiresWhenStillOnSource(t *testing.T) {
	clock := &manualClock{}
	r := NewRouter(clock.AfterFunc)
	_, _ = r.Navigate(AddPet)

	_, err := r.ScheduleNavigate(time.Second, AddPet, Dashboard)
	require.NoError(t, err)
	require.Equal(t, 1, clock.Len())
	assert.Equal(t, time.Second, clock.timers[0].delay)

	clock.FireAll()
	assert.Equal(t, Dashboard, r.Current().Screen())
}

func TestScheduleNavigate_NoOpAfterLeaving(t *testing.T) {
	clock := &manualClock{}
	r := NewRouter(clock.AfterFunc)
	_, _ = r.Navigate(AddPet)

	_, err := r.ScheduleNavigate(time.Second, AddPet, Dashboard)
	require.NoError(t, err)

	_, _ = r.Navigate(StaffSearch)
	clock.FireAll()
	assert.Equal(t, StaffSearch, r.Current().Screen())
}

func TestScheduleNavigate_NoOpAfterLeavingAndComingBack(t *testing.T) {
	clock := &manualClock{}
	r := NewRouter(clock.AfterFunc)
	_, _ = r.Navigate(AddPet)

	_, err := r.ScheduleNavigate(time.Second, AddPet, Dashboard)
	require.NoError(t, err)

	_, _ = r.Navigate(Landing)
	_, _ = r.Navigate(AddPet)
	clock.FireAll()
	assert.Equal(t, AddPet, r.Current().Screen())
}

func TestScheduleNavigate_Cancel(t *testing.T) {
	clock := &manualClock{}
	r := NewRouter(clock.AfterFunc)
	_, _ = r.Navigate(AddPet)

	cancel, err := r.ScheduleNavigate(time.Second, AddPet, Dashboard)
	require.NoError(t, err)
	cancel()
	cancel()

	clock.FireAll()
	assert.Equal(t, AddPet, r.Current().Screen())
}

func TestScheduleNavigate_NotOnSource(t *testing.T) {
	clock := &manualClock{}
	r := NewRouter(clock.AfterFunc)

	cancel, err := r.ScheduleNavigate(time.Second, AddPet, Dashboard)
	require.NoError(t, err)
	assert.Equal(t, 0, clock.Len())
	cancel()

	_, err = r.ScheduleNavigate(time.Second, AddPet, OwnerPetDetail)
	assert.ErrorIs(t, err, ErrSelectionRequired)
}
