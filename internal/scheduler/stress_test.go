package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestEngineStressConcurrentEveryAndCancel(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				key := fmt.Sprintf("w%d-%d", w, i%10)
				period := time.Duration((w+i)%20+5) * time.Millisecond
				if _, err := engine.Every(key, period); err != nil {
					t.Errorf("every failed: %v", err)
					return
				}
				if i%3 == 0 {
					engine.Cancel(key)
				}
			}
		}()
	}
	wg.Wait()

	engine.mu.Lock()
	queued, registered := len(engine.queue), len(engine.jobs)
	engine.mu.Unlock()
	if queued != registered {
		t.Fatalf("queue and registry diverged: queued=%d registered=%d", queued, registered)
	}
	if registered > workers*10 {
		t.Fatalf("more jobs than keys: %d", registered)
	}

	deadline := time.After(2 * time.Second)
	for received := 0; received < 20; {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting events: received=%d dropped=%d", received, engine.Dropped())
		case ev := <-engine.C():
			if ev.Key == "" {
				t.Fatal("event without key")
			}
			received++
		}
	}
}
