package sync

import (
	"errors"
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexExplicitInit(t *testing.T) {
	m := &Mutex{}
	require.NoError(t, m.Init())
	require.NoError(t, m.Lock())
	require.NoError(t, m.Unlock())
	require.NoError(t, m.Free())
}

func TestMutexLockProtectsCounter(t *testing.T) {
	const threads, rounds = 32, 2000
	m := NewMutex()
	var counter int
	var wg stdsync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				if err := m.Lock(); err != nil {
					t.Errorf("lock: %v", err)
					return
				}
				counter++
				if err := m.Unlock(); err != nil {
					t.Errorf("unlock: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, threads*rounds, counter)
	require.NoError(t, m.Free())
}

func TestMutexLazyInitExactlyOnce(t *testing.T) {
	const threads = 500
	var m Mutex // statically constructed, no Init call
	before := LazyInits()

	start := make(chan struct{})
	var counter int
	var wg stdsync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := m.Lock(); err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			counter++
			if err := m.Unlock(); err != nil {
				t.Errorf("unlock: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, before+1, LazyInits(), "initialization must happen exactly once")
	require.Equal(t, threads, counter)
}

func TestMutexTryLock(t *testing.T) {
	var m Mutex
	before := LazyInits()

	ok, err := m.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, before+1, LazyInits(), "TryLock takes the lazy init path too")

	ok, err = m.TryLock()
	require.NoError(t, err)
	require.False(t, ok, "held lock must not be acquirable")

	require.NoError(t, m.Unlock())
	ok, err = m.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, m.Unlock())
}

func TestMutexUseAfterFree(t *testing.T) {
	m := NewMutex()
	require.NoError(t, m.Free())

	err := m.Lock()
	var lerr *LockError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, CodeInvalid, lerr.Code)

	_, err = m.TryLock()
	require.ErrorAs(t, err, &lerr)

	err = m.Unlock()
	require.ErrorAs(t, err, &lerr)
}

func TestMutexUnlockBeforeInit(t *testing.T) {
	var m Mutex
	err := m.Unlock()
	require.Error(t, err)
	var lerr *LockError
	require.True(t, errors.As(err, &lerr))
}

func TestMutexBlocksSecondLocker(t *testing.T) {
	m := NewMutex()
	require.NoError(t, m.Lock())

	acquired := make(chan struct{})
	go func() {
		if err := m.Lock(); err != nil {
			t.Errorf("lock: %v", err)
			return
		}
		close(acquired)
		if err := m.Unlock(); err != nil {
			t.Errorf("unlock: %v", err)
		}
	}()

	select {
	case <-acquired:
		t.Fatalf("second locker should block while lock is held")
	case <-blockProbe():
	}

	require.NoError(t, m.Unlock())

	select {
	case <-acquired:
	case <-releaseProbe():
		t.Fatalf("second locker did not acquire lock")
	}
}
