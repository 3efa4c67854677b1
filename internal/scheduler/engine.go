package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("scheduler: invalid period")
	ErrStopped       = errors.New("scheduler: engine stopped")
)

// Event is one firing of the recurring job registered under Key. Seq
// identifies the registration; see Engine.Live.
type Event struct {
	Key string
	Seq uint64
	At  time.Time
}

type job struct {
	key    string
	seq    uint64
	period time.Duration
	next   time.Time
	index  int
}

type jobQueue []*job

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	return q[i].next.Before(q[j].next)
}

func (q jobQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *jobQueue) Push(x any) {
	item := x.(*job)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[0 : n-1]
	return item
}

// Engine runs keyed recurring jobs on one goroutine. Each key has at most
// one job; registering a key again replaces its job.
type Engine struct {
	mu      sync.Mutex
	queue   jobQueue
	jobs    map[string]*job
	seq     uint64
	out     chan Event
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
	now     func() time.Time
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(jobQueue, 0),
		jobs:   make(map[string]*job),
		out:    make(chan Event, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// C delivers due events. It is closed once Stop returns.
func (e *Engine) C() <-chan Event {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Every installs a job that fires every period, first one period from now.
// It returns the sequence number events of this job carry.
func (e *Engine) Every(key string, period time.Duration) (uint64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return 0, ErrStopped
	}

	e.removeLocked(key)
	e.seq++
	j := &job{key: key, seq: e.seq, period: period, next: e.now().Add(period)}
	e.jobs[key] = j
	heap.Push(&e.queue, j)
	e.signalWakeup()
	return j.seq, nil
}

// Cancel removes the job for key and reports whether one existed.
func (e *Engine) Cancel(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ok := e.removeLocked(key)
	if ok {
		e.signalWakeup()
	}
	return ok
}

func (e *Engine) Active(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.jobs[key]
	return ok
}

// Live reports whether ev came from the job currently registered for its
// key. Events buffered before a Cancel or a replacing Every are stale.
func (e *Engine) Live(ev Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	j, ok := e.jobs[ev.Key]
	return ok && j.seq == ev.Seq
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) removeLocked(key string) bool {
	j, ok := e.jobs[key]
	if !ok {
		return false
	}
	delete(e.jobs, key)
	if j.index >= 0 {
		heap.Remove(&e.queue, j.index)
	}
	return true
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := next.Sub(e.now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, ev := range e.popDue(e.now()) {
				select {
				case e.out <- ev:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return time.Time{}, false
	}
	return e.queue[0].next, true
}

// popDue emits one event per due job and reschedules it. Missed periods
// are skipped rather than replayed.
func (e *Engine) popDue(now time.Time) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Event, 0)
	for len(e.queue) > 0 {
		j := e.queue[0]
		if j.next.After(now) {
			break
		}
		out = append(out, Event{Key: j.key, Seq: j.seq, At: j.next})
		j.next = j.next.Add(j.period)
		if !j.next.After(now) {
			j.next = now.Add(j.period)
		}
		heap.Fix(&e.queue, 0)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
