package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/scheduler"
	"github.com/sandeepkv93/focusdeck/internal/storage"
	"github.com/sandeepkv93/focusdeck/internal/store"
)

const (
	KeyTimerTick     = "timer-tick"
	KeyGreeting      = "greeting"
	KeyMusicProgress = "music-progress"

	maxSessions = 500
)

// Persister loads and saves the persisted record. *storage.Store
// implements it.
type Persister interface {
	Load(ctx context.Context) (storage.Record, bool)
	Save(ctx context.Context, rec storage.Record) error
}

type Options struct {
	Persister Persister
	Notifier  Notifier
	Logger    *slog.Logger
	Clock     func() time.Time
	Rand      *rand.Rand

	AutoCycle    bool
	WorkMinutes  int
	BreakMinutes int
	Shuffle      bool

	TickInterval     time.Duration
	GreetingInterval time.Duration
	MusicInterval    time.Duration
	Buffer           int
}

func (o Options) withDefaults() Options {
	if o.Notifier == nil {
		o.Notifier = NoopNotifier{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Clock().UnixNano()))
	}
	if o.WorkMinutes <= 0 {
		o.WorkMinutes = model.PomodoroSeconds / 60
	}
	if o.BreakMinutes <= 0 {
		o.BreakMinutes = model.ShortBreakSeconds / 60
	}
	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}
	if o.GreetingInterval <= 0 {
		o.GreetingInterval = time.Minute
	}
	if o.MusicInterval <= 0 {
		o.MusicInterval = time.Second
	}
	if o.Buffer <= 0 {
		o.Buffer = 64
	}
	return o
}

// Snapshot is what the UI renders. TimerTotal is the length of the
// current countdown phase. Notice changes identity through NoticeID so a
// coalesced update never hides a new message.
type Snapshot struct {
	State      model.AppState
	Track      model.Track
	Position   int
	TimerTotal int
	Shuffle    bool
	Repeat     bool
	Stats      model.Stats
	SaveErr    error
	Notice     string
	NoticeID   uint64
}

// Runtime owns one dashboard session: the store, its recurring jobs and
// autosave.
type Runtime struct {
	opts   Options
	store  *store.Store
	engine *scheduler.Engine
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	unsub  func()

	mu         sync.Mutex
	position   int
	shuffle    bool
	repeat     bool
	sessions   []model.Session
	phase      int
	lastSaved  storage.Record
	saveErr    error
	notice     string
	noticeID   uint64
	cycleNext  store.Action
	closed     bool
	updates    chan Snapshot
	closeOnce  sync.Once
	closeError error
}

// Open restores persisted state and starts the session's jobs. A missing
// or malformed record leaves the defaults in place.
func Open(ctx context.Context, opts Options) (*Runtime, error) {
	if opts.Persister == nil {
		return nil, errors.New("dashboard: persister is required")
	}
	opts = opts.withDefaults()

	st := store.New(model.DefaultState(),
		store.WithClock(func() time.Time { return opts.Clock().UTC().Truncate(time.Millisecond) }),
		store.WithLogger(opts.Logger),
	)
	if rec, ok := opts.Persister.Load(ctx); ok {
		st.Dispatch(store.LoadFromStorage{Patch: rec.Patch()})
		opts.Logger.Info("restored persisted state")
	}
	greeting := model.GreetingFor(opts.Clock())
	st.Dispatch(store.LoadFromStorage{Patch: store.StatePatch{Greeting: &greeting}})

	runCtx, cancel := context.WithCancel(context.Background())
	r := &Runtime{
		opts:    opts,
		store:   st,
		engine:  scheduler.NewEngine(opts.Buffer),
		logger:  opts.Logger,
		ctx:     runCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		shuffle: opts.Shuffle,
		updates: make(chan Snapshot, 1),
	}
	r.lastSaved = storage.RecordFrom(st.State())
	r.engine.Start()
	if _, err := r.engine.Every(KeyGreeting, opts.GreetingInterval); err != nil {
		r.engine.Stop()
		cancel()
		return nil, fmt.Errorf("dashboard: schedule greeting: %w", err)
	}
	r.unsub = st.Subscribe(r.onChange)

	r.mu.Lock()
	r.reconcileLocked(st.State())
	r.publishLocked()
	r.mu.Unlock()

	go r.loop()
	return r, nil
}

func (r *Runtime) Dispatch(a store.Action) model.AppState {
	return r.store.Dispatch(a)
}

func (r *Runtime) State() model.AppState {
	return r.store.State()
}

func (r *Runtime) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Updates delivers the latest snapshot after each change. Only the most
// recent one is kept. The channel is closed by Close.
func (r *Runtime) Updates() <-chan Snapshot {
	return r.updates
}

func (r *Runtime) SetShuffle(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shuffle = on
	r.publishLocked()
}

func (r *Runtime) SetRepeat(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repeat = on
	r.publishLocked()
}

// NextTrack picks the track after music's current one, at random when
// shuffle is on.
func (r *Runtime) NextTrack(music model.MusicState) model.Track {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextTrackLocked(music)
}

func (r *Runtime) nextTrackLocked(music model.MusicState) model.Track {
	var rnd *rand.Rand
	if r.shuffle {
		rnd = r.opts.Rand
	}
	return model.NextTrack(music.Playlist, music.CurrentTrack, rnd)
}

func (r *Runtime) Stats() model.Stats {
	state := r.store.State()
	r.mu.Lock()
	defer r.mu.Unlock()
	return model.ComputeStats(state.Tasks, r.sessions, r.opts.Clock())
}

// Sessions returns the work sessions finished in this process.
func (r *Runtime) Sessions() []model.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Session, len(r.sessions))
	copy(out, r.sessions)
	return out
}

// Close stops every job and writes the final state.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		r.unsub()
		r.cancel()
		r.engine.Stop()
		<-r.done

		rec := storage.RecordFrom(r.store.State())
		err := r.opts.Persister.Save(context.Background(), rec)
		if err != nil {
			r.logger.Error("final save failed", "err", err)
			r.closeError = fmt.Errorf("dashboard: final save: %w", err)
		}

		r.mu.Lock()
		r.closed = true
		close(r.updates)
		r.mu.Unlock()
	})
	return r.closeError
}

func (r *Runtime) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			return
		case ev, ok := <-r.engine.C():
			if !ok {
				return
			}
			if !r.engine.Live(ev) {
				continue
			}
			r.handle(ev)
		}
	}
}

func (r *Runtime) handle(ev scheduler.Event) {
	switch ev.Key {
	case KeyTimerTick:
		r.store.Dispatch(store.TickTimer{})
		r.mu.Lock()
		next := r.cycleNext
		r.cycleNext = nil
		r.mu.Unlock()
		if next != nil {
			r.store.Dispatch(next)
		}
	case KeyGreeting:
		greeting := model.GreetingFor(r.opts.Clock())
		if greeting != r.store.State().Greeting {
			r.store.Dispatch(store.LoadFromStorage{Patch: store.StatePatch{Greeting: &greeting}})
		}
	case KeyMusicProgress:
		r.advanceMusic()
	}
}

func (r *Runtime) advanceMusic() {
	music := r.store.State().Music
	if !music.IsPlaying {
		return
	}
	track, ok := model.FindTrack(music.CurrentTrack)
	if !ok || track.Playlist != music.Playlist {
		first := model.FirstTrack(music.Playlist)
		r.store.Dispatch(store.SetMusic{Patch: store.MusicPatch{CurrentTrack: &first.ID}})
		return
	}

	r.mu.Lock()
	if r.position < track.Duration {
		r.position++
		r.publishLocked()
		r.mu.Unlock()
		return
	}
	if r.repeat {
		r.position = 0
		r.publishLocked()
		r.mu.Unlock()
		return
	}
	next := r.nextTrackLocked(music)
	if next.ID == track.ID {
		r.position = 0
		r.publishLocked()
	}
	r.mu.Unlock()

	if next.ID != track.ID {
		r.store.Dispatch(store.SetMusic{Patch: store.MusicPatch{CurrentTrack: &next.ID}})
	}
}

func (r *Runtime) onChange(prev, next model.AppState, a store.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	if prev.Music.CurrentTrack != next.Music.CurrentTrack {
		r.position = 0
	}
	switch act := a.(type) {
	case store.StartTimer:
		if next.Timer.IsActive {
			r.phase = act.Duration
		}
	case store.ResetTimer:
		r.phase = 0
	}
	if _, ok := a.(store.TickTimer); ok && timerFinished(prev.Timer, next.Timer) {
		r.completeLocked(prev.Timer, next.Timer)
	}

	// Listeners of concurrent dispatches may run out of order, so job and
	// save decisions always follow the latest state.
	current := r.store.State()
	r.reconcileLocked(current)
	r.saveLocked(current)
	r.publishLocked()
}

func timerFinished(prev, next model.TimerState) bool {
	return prev.IsActive && prev.TimeLeft > 0 && !next.IsActive && next.TimeLeft == 0
}

func (r *Runtime) completeLocked(prev, next model.TimerState) {
	now := r.opts.Clock()
	n := Notification{Title: "Break over", Body: "Time to get back to work.", Level: "info"}
	if !prev.IsBreak {
		r.sessions = append(r.sessions, model.Session{CompletedAt: now, Seconds: r.phase})
		if len(r.sessions) > maxSessions {
			r.sessions = r.sessions[len(r.sessions)-maxSessions:]
		}
		n = Notification{Title: "Focus session complete", Body: "Nice work. Take a short break.", Level: "success"}
	}
	r.setNoticeLocked(n.Title)
	r.logger.Info("timer finished", "break", prev.IsBreak, "seconds", r.phase)
	if err := r.opts.Notifier.Send(n); err != nil {
		r.logger.Warn("desktop notification failed", "err", err)
	}

	if !r.opts.AutoCycle || prev.Type != model.TimerPomodoro {
		return
	}
	minutes := r.opts.WorkMinutes
	if next.IsBreak {
		minutes = r.opts.BreakMinutes
	}
	r.cycleNext = store.StartTimer{Duration: model.MinutesToSeconds(minutes), Type: model.TimerPomodoro}
}

func (r *Runtime) reconcileLocked(state model.AppState) {
	r.ensureJob(KeyTimerTick, r.opts.TickInterval, state.Timer.Running())
	r.ensureJob(KeyMusicProgress, r.opts.MusicInterval, state.Music.IsPlaying)
}

// ensureJob keeps the job for key registered exactly when want holds.
func (r *Runtime) ensureJob(key string, period time.Duration, want bool) {
	active := r.engine.Active(key)
	switch {
	case want && !active:
		if _, err := r.engine.Every(key, period); err != nil && !errors.Is(err, scheduler.ErrStopped) {
			r.logger.Error("schedule job", "key", key, "err", err)
		}
	case !want && active:
		r.engine.Cancel(key)
	}
}

func (r *Runtime) saveLocked(state model.AppState) {
	rec := storage.RecordFrom(state)
	if reflect.DeepEqual(rec, r.lastSaved) {
		return
	}
	if err := r.opts.Persister.Save(r.ctx, rec); err != nil {
		r.logger.Warn("autosave failed", "err", err)
		if r.saveErr == nil {
			r.setNoticeLocked("autosave failed: " + err.Error())
		}
		r.saveErr = err
		return
	}
	r.lastSaved = rec
	r.saveErr = nil
}

func (r *Runtime) setNoticeLocked(text string) {
	r.notice = text
	r.noticeID++
}

func (r *Runtime) snapshotLocked() Snapshot {
	state := r.store.State()
	track, _ := model.FindTrack(state.Music.CurrentTrack)
	return Snapshot{
		State:      state,
		Track:      track,
		Position:   r.position,
		TimerTotal: max(r.phase, state.Timer.TimeLeft),
		Shuffle:    r.shuffle,
		Repeat:     r.repeat,
		Stats:      model.ComputeStats(state.Tasks, r.sessions, r.opts.Clock()),
		SaveErr:    r.saveErr,
		Notice:     r.notice,
		NoticeID:   r.noticeID,
	}
}

func (r *Runtime) publishLocked() {
	if r.closed {
		return
	}
	snap := r.snapshotLocked()
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- snap:
	default:
	}
}
