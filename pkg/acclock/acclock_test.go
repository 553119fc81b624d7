package acclock

import (
	"context"
	"sync"
	"testing"
	"time"

	"revqr_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_SameAccountBusy(t *testing.T) {
	set := NewSet(50 * time.Millisecond)
	ctx := context.Background()

	release, err := set.Acquire(ctx, 1)
	require.NoError(t, err)
	defer release()

	_, err = set.Acquire(ctx, 1)
	assert.ErrorIs(t, err, model.ErrBusy)
}

func TestAcquire_ReleaseUnblocks(t *testing.T) {
	set := NewSet(time.Second)
	ctx := context.Background()

	release, err := set.Acquire(ctx, 1)
	require.NoError(t, err)
	release()

	release, err = set.Acquire(ctx, 1)
	require.NoError(t, err)
	release()
}

func TestAcquire_DifferentAccountsIndependent(t *testing.T) {
	set := NewSet(50 * time.Millisecond)
	ctx := context.Background()

	release1, err := set.Acquire(ctx, 1)
	require.NoError(t, err)
	defer release1()

	release2, err := set.Acquire(ctx, 2)
	require.NoError(t, err)
	defer release2()
}

func TestAcquire_WaitsForHolder(t *testing.T) {
	set := NewSet(time.Second)
	ctx := context.Background()

	release, err := set.Acquire(ctx, 1)
	require.NoError(t, err)

	// Держатель отпускает секцию до истечения wait - ожидающий проходит
	go func() {
		time.Sleep(20 * time.Millisecond)
		release()
	}()

	release2, err := set.Acquire(ctx, 1)
	require.NoError(t, err)
	release2()
}

func TestRelease_Idempotent(t *testing.T) {
	set := NewSet(time.Second)
	ctx := context.Background()

	release, err := set.Acquire(ctx, 1)
	require.NoError(t, err)
	release()
	release()

	release, err = set.Acquire(ctx, 1)
	require.NoError(t, err)
	release()
}

func TestAcquire_CanceledContext(t *testing.T) {
	set := NewSet(time.Second)

	release, err := set.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = set.Acquire(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrBusy)
}

// Секция взаимно исключающая: счетчик под блокировкой не теряет инкрементов,
// карта блокировок опустошается после последнего release
func TestAcquire_MutualExclusion(t *testing.T) {
	set := NewSet(5 * time.Second)
	ctx := context.Background()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			release, err := set.Acquire(ctx, 7)
			if err != nil {
				return
			}
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)

	set.mu.Lock()
	assert.Empty(t, set.locks)
	set.mu.Unlock()
}
