package synth

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/faiface/beep"
	"github.com/rapidmidiex/notedrill/pitch"
)

const DefaultQueueSize = 64

var ErrNotRunning = errors.New("audio engine is not running")

type (
	// Output is where rendered buffers go. Open is called once per Engine
	// start and reports the device's channel count. Schedule must not stop
	// buffers scheduled earlier, so successive notes overlap.
	Output interface {
		Open(sr beep.SampleRate) (channels int, err error)
		Schedule(b *Buffer) error
		Close() error
	}

	Status int

	// Engine owns the playback pipeline. A single worker goroutine renders
	// requested notes in submission order and hands them to the Output; no
	// other goroutine touches the Output while the engine runs.
	Engine struct {
		out       Output
		voice     Voice
		queueSize int
		log       *log.Logger

		// life serializes Start and Stop, mu guards the fields below it.
		life     sync.Mutex
		mu       sync.Mutex
		status   Status
		err      error
		channels int
		queue    chan request
		wg       sync.WaitGroup

		dropped atomic.Int64
	}

	EngineOption func(*Engine)

	request struct {
		number int
		note   pitch.Note
	}
)

const (
	StatusIdle Status = iota
	StatusStarting
	StatusRunning
	StatusFailed
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusStarting:
		return "starting"
	case StatusRunning:
		return "running"
	case StatusFailed:
		return "failed"
	case StatusStopped:
		return "stopped"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func WithVoice(v Voice) EngineOption {
	return func(e *Engine) { e.voice = v }
}

// WithQueueSize sets how many requests may wait for the worker before Play
// starts dropping them.
func WithQueueSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.queueSize = n
		}
	}
}

func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

func NewEngine(out Output, opts ...EngineOption) *Engine {
	e := &Engine{
		out:       out,
		voice:     DefaultVoice(),
		queueSize: DefaultQueueSize,
		log:       log.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start opens the output and starts the audio worker. Calling Start on a
// running engine does nothing. If the output cannot be opened the engine is
// marked failed and Play stays silent until a later Start succeeds. Start
// and Stop are serialized; Play is dropped while the output is opening.
func (e *Engine) Start() error {
	e.life.Lock()
	defer e.life.Unlock()

	e.mu.Lock()
	if e.status == StatusRunning {
		e.mu.Unlock()
		return nil
	}
	e.status = StatusStarting
	e.mu.Unlock()

	// Device I/O happens outside mu so Play never waits on it.
	channels, err := e.out.Open(e.voice.SampleRate)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.status = StatusFailed
		e.err = fmt.Errorf("open output: %w", err)
		e.log.Printf("synth: %v; playback disabled", e.err)
		return e.err
	}
	if channels < 1 {
		channels = 1
	}

	e.status = StatusRunning
	e.err = nil
	e.channels = channels
	e.queue = make(chan request, e.queueSize)

	e.wg.Add(1)
	go e.run(e.queue, channels)

	e.log.Printf("synth: started, %d Hz, %d channels", e.voice.SampleRate, channels)
	return nil
}

// Stop waits for queued notes to be handed to the output, then closes it. A
// Start issued meanwhile waits until the output is closed.
func (e *Engine) Stop() error {
	e.life.Lock()
	defer e.life.Unlock()

	e.mu.Lock()
	if e.status != StatusRunning {
		e.mu.Unlock()
		return nil
	}
	e.status = StatusStopped
	close(e.queue)
	e.queue = nil
	e.mu.Unlock()

	e.wg.Wait()
	if err := e.out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// Play asks the worker to render n and schedule it. It never blocks; when
// the engine is not running, or the queue is full, the request is dropped
// and logged.
func (e *Engine) Play(n pitch.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning {
		e.dropped.Add(1)
		e.log.Printf("synth: drop %s: %v (%s)", n, ErrNotRunning, e.status)
		return
	}

	select {
	case e.queue <- request{number: n.Number(), note: n}:
	default:
		e.dropped.Add(1)
		e.log.Printf("synth: drop %s: queue full", n)
	}
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Err returns the error from the last failed Start, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Channels returns the channel count reported by the output.
func (e *Engine) Channels() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.channels
}

// Dropped returns how many Play requests were not scheduled.
func (e *Engine) Dropped() int64 {
	return e.dropped.Load()
}

func (e *Engine) run(queue <-chan request, channels int) {
	defer e.wg.Done()
	for req := range queue {
		buf := e.voice.Render(Frequency(req.number), channels)
		buf.Number = req.number
		if err := e.out.Schedule(buf); err != nil {
			e.log.Printf("synth: schedule %s: %v", req.note, err)
		}
	}
}
