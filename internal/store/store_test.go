package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/seed"
	"github.com/starford/boreacrutis/internal/snapshot"
	"github.com/starford/boreacrutis/internal/storage"
	"github.com/starford/boreacrutis/internal/testutil"
	"github.com/starford/boreacrutis/internal/workspace"
)

// countingProvider wraps Memory and counts saves, optionally failing them.
type countingProvider struct {
	*storage.Memory
	saves atomic.Int32
	fail  atomic.Bool
}

func (p *countingProvider) Save(ctx context.Context, data []byte) error {
	p.saves.Add(1)
	if p.fail.Load() {
		return errors.New("disk full")
	}
	return p.Memory.Save(ctx, data)
}

func newStore(t *testing.T) (*Store, *countingProvider) {
	t.Helper()
	p := &countingProvider{Memory: storage.NewMemory()}
	r := workspace.NewReducer(workspace.WithClock(testutil.Clock()))
	s := Open(context.Background(), p, testutil.Logger(), testutil.Epoch, WithReducer(r))
	return s, p
}

func TestOpenWithoutSnapshotUsesSeed(t *testing.T) {
	s, p := newStore(t)
	assert.Equal(t, seed.InitialState(testutil.Epoch), s.State())
	assert.Zero(t, p.saves.Load())
}

func TestDispatchPersists(t *testing.T) {
	s, p := newStore(t)
	ctx := context.Background()

	next := s.Dispatch(ctx, workspace.ToggleDarkMode{})
	assert.False(t, next.DarkMode)
	assert.Equal(t, next, s.State())

	data, err := p.Load(ctx)
	require.NoError(t, err)
	decoded, err := snapshot.Decode(data, testutil.Epoch)
	require.NoError(t, err)
	assert.False(t, decoded.DarkMode)
}

func TestDispatchSkipsUnchangedSnapshot(t *testing.T) {
	s, p := newStore(t)
	ctx := context.Background()

	s.Dispatch(ctx, workspace.SetActiveTab{TabID: domain.Ref(seed.ProfilesTabID)})
	assert.Zero(t, p.saves.Load(), "focusing the already active tab changes nothing")

	s.Dispatch(ctx, workspace.ToggleDarkMode{})
	s.Dispatch(ctx, workspace.ToggleDarkMode{})
	assert.EqualValues(t, 2, p.saves.Load())
}

func TestDispatchSurvivesSaveFailure(t *testing.T) {
	s, p := newStore(t)
	p.fail.Store(true)

	next := s.Dispatch(context.Background(), workspace.RenameTab{TabID: seed.ProfilesTabID, Name: "Renamed"})
	tab, ok := next.Tab(seed.ProfilesTabID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", tab.Name)
	assert.Equal(t, next, s.State())

	// The failed write is retried on the next change.
	p.fail.Store(false)
	s.Dispatch(context.Background(), workspace.ToggleDarkMode{})
	data, err := p.Load(context.Background())
	require.NoError(t, err)
	decoded, err := snapshot.Decode(data, testutil.Epoch)
	require.NoError(t, err)
	got, _ := decoded.Tab(seed.ProfilesTabID)
	assert.Equal(t, "Renamed", got.Name)
}

func TestOpenRestoresPersistedState(t *testing.T) {
	p := storage.NewMemory()
	ctx := context.Background()

	first := Open(ctx, p, testutil.Logger(), testutil.Epoch)
	first.Dispatch(ctx, workspace.AddTab{ModuleType: domain.ModuleJobAds, Name: "Backend hiring"})

	second := Open(ctx, p, testutil.Logger(), testutil.Epoch)
	assert.Len(t, second.State().TabsFor(domain.ModuleJobAds), 2)
}

func TestSubscribe(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var got []Change
	unsubscribe := s.Subscribe(func(c Change) {
		// Reading state from a subscriber must not deadlock.
		_ = s.State()
		got = append(got, c)
	})

	s.Dispatch(ctx, workspace.ToggleDarkMode{})
	require.Len(t, got, 1)
	assert.Equal(t, workspace.TypeToggleDarkMode, got[0].Action.Type())
	assert.False(t, got[0].State.DarkMode)

	unsubscribe()
	unsubscribe()
	s.Dispatch(ctx, workspace.ToggleDarkMode{})
	assert.Len(t, got, 1)
}

func TestStateIsACopy(t *testing.T) {
	s, _ := newStore(t)
	st := s.State()
	st.Tabs[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.State().Tabs[0].Name)
}

func TestConcurrentDispatch(t *testing.T) {
	s := New(seed.InitialState(testutil.Epoch), WithLogger(testutil.Logger()))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(ctx, workspace.ToggleDarkMode{})
		}()
	}
	wg.Wait()

	// An even number of toggles restores the seed value.
	assert.True(t, s.State().DarkMode)
}
