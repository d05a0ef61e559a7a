package chest

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single chest resolution.
const DefaultTimeout = 3 * time.Second

// DefaultBuffer is the number of undrained results kept before the oldest is dropped.
const DefaultBuffer = 32

// Result is one resolved chest, tagged with the epoch of the game that
// requested it.
type Result struct {
	Epoch     uint64
	RequestID uuid.UUID
	PlayerID  string
	Reward    Reward
	Err       error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(dp *Dispatcher) {
		if d > 0 {
			dp.timeout = d
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(dp *Dispatcher) {
		dp.logger = l
	}
}

// WithRecorder persists each resolution.
func WithRecorder(r Recorder) Option {
	return func(dp *Dispatcher) {
		dp.recorder = r
	}
}

// WithBuffer sets the result buffer size.
func WithBuffer(n int) Option {
	return func(dp *Dispatcher) {
		if n > 0 {
			dp.buffer = n
		}
	}
}

// Dispatcher resolves chests in the background. The game loop calls
// Request when a chest is caught and Drain once per tick; it never blocks
// on the resolver.
type Dispatcher struct {
	resolver Resolver
	recorder Recorder
	logger   *log.Logger
	timeout  time.Duration
	buffer   int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	pending []Result
	dropped int
	closed  bool
}

// NewDispatcher creates a dispatcher backed by resolver.
func NewDispatcher(resolver Resolver, opts ...Option) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		resolver: resolver,
		timeout:  DefaultTimeout,
		buffer:   DefaultBuffer,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	d.logger = d.logger.WithPrefix("chest")
	return d
}

// Request starts resolving a chest for playerID on behalf of the game in
// epoch. The returned id tags the eventual Result.
func (d *Dispatcher) Request(epoch uint64, playerID string) uuid.UUID {
	id := uuid.New()

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return id
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		d.deliver(d.resolve(epoch, id, playerID))
	}()
	return id
}

func (d *Dispatcher) resolve(epoch uint64, id uuid.UUID, playerID string) Result {
	res := Result{Epoch: epoch, RequestID: id, PlayerID: playerID}

	if d.resolver == nil {
		res.Err = ErrNoResolver
		d.logger.Warn("chest resolved without resolver", "player", playerID, "epoch", epoch)
		return res
	}

	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()

	reward, err := d.resolver.Resolve(ctx, playerID)
	if err != nil {
		res.Err = err
		d.logger.Warn("chest resolution failed", "player", playerID, "epoch", epoch, "error", err)
		return res
	}
	res.Reward = reward
	d.logger.Debug("chest resolved", "player", playerID, "epoch", epoch, "reward", reward)

	if d.recorder != nil {
		if err := d.recorder.RecordChestOpening(playerID, string(reward)); err != nil {
			d.logger.Warn("could not record chest", "player", playerID, "error", err)
		}
	}
	return res
}

func (d *Dispatcher) deliver(res Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if len(d.pending) >= d.buffer {
		d.pending = d.pending[1:]
		d.dropped++
		d.logger.Warn("chest result dropped", "buffer", d.buffer)
	}
	d.pending = append(d.pending, res)
}

// Drain returns every result delivered since the previous call, in
// delivery order. It never blocks on outstanding requests.
func (d *Dispatcher) Drain() []Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return nil
	}
	out := d.pending
	d.pending = nil
	return out
}

// Dropped reports how many results were discarded because nobody drained them.
func (d *Dispatcher) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Wait blocks until all outstanding requests have delivered.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close cancels outstanding requests and waits for them to finish.
// Results arriving after Close are discarded.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.cancel()
	d.wg.Wait()
}
