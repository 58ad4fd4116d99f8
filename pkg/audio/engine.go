package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/statecast"
	"github.com/dmitrymomot/statecast/core/logger"
)

// DeviceState is the value the engine broadcasts through its statecast
// graph: the driver client identity, the current sample rate, and whether
// processing is live.
type DeviceState struct {
	Client     string
	SampleRate int
	Running    bool
}

// Hooks are optional lifecycle callbacks, invoked on the control goroutine
// around startup and shutdown, in this order: PreInit before the device is
// opened, PostInit after ports are connected and processing is enabled,
// PreExit before the device is closed, PostExit after the state graph is
// torn down.
type Hooks struct {
	PreInit  func()
	PostInit func()
	PreExit  func()
	PostExit func()
}

// Stage is one step of the per-period processing pipeline. Stages run in
// registration order inside the driver's process callback, so Run must be
// real-time safe: it must not allocate, block, or log.
type Stage struct {
	Name string
	Run  func(frames int)
}

// Engine owns an audio device client and a statecast graph. It drives the
// device through its lifecycle, runs the registered processing stages inside
// the driver callback, and broadcasts DeviceState changes (startup, sample
// rate, shutdown) to every subscriber attached to its relay.
//
// All graph mutation and all broadcasts are confined to the control
// goroutine: the one that calls Start, Close, and Run/Pump. Driver callbacks
// only enqueue notifications.
type Engine struct {
	dev    Device
	cfg    Config
	log    *slog.Logger
	hooks  Hooks
	stages []Stage

	relay  *statecast.Relay[DeviceState]
	source *statecast.Source[DeviceState]

	client string
	state  DeviceState

	// gate is the processing switch: driver periods are ignored until ports
	// are wired, and again after shutdown begins.
	gate atomic.Bool

	// events carries driver notifications to the control goroutine.
	events  chan func() error
	dropped atomic.Int64

	started bool
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger configures structured logging for the engine. Default is a
// discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithHooks installs the lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithStage appends a processing stage to the per-period pipeline.
func WithStage(name string, run func(frames int)) Option {
	return func(e *Engine) {
		if run != nil {
			e.stages = append(e.stages, Stage{Name: name, Run: run})
		}
	}
}

// New creates an engine around the given device. The engine's relay exists
// from this point, so subscribers can attach before the device is started
// and observe the very first DeviceState broadcast.
func New(dev Device, opts ...Option) *Engine {
	e := &Engine{
		dev: dev,
		cfg: Config{
			ClientName:  "statecast",
			Inputs:      2,
			Outputs:     2,
			EventBuffer: 64,
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.client = fmt.Sprintf("%s-%s", e.cfg.ClientName, uuid.NewString()[:8])
	e.relay = statecast.NewRelay[DeviceState]()
	e.source = statecast.NewSource(e.relay)
	if e.cfg.EventBuffer <= 0 {
		e.cfg.EventBuffer = 64
	}
	e.events = make(chan func() error, e.cfg.EventBuffer)
	return e
}

// Relay returns the relay carrying the engine's DeviceState broadcasts.
// Attach subscribers here, on the control goroutine.
func (e *Engine) Relay() *statecast.Relay[DeviceState] {
	return e.relay
}

// ClientName returns the unique driver client name the engine registers
// under.
func (e *Engine) ClientName() string {
	return e.client
}

// State returns the last broadcast DeviceState.
func (e *Engine) State() DeviceState {
	return e.state
}

// Start opens and activates the device, registers and connects its ports,
// enables processing, and broadcasts the initial running DeviceState. The
// hook order mirrors the device lifecycle: PreInit fires before the driver
// client exists, PostInit after processing is live.
func (e *Engine) Start() error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.started {
		return ErrAlreadyStarted
	}

	if e.hooks.PreInit != nil {
		e.hooks.PreInit()
	}

	rate, err := e.dev.Open(e.client)
	if err != nil {
		return fmt.Errorf("audio: open device client: %w", err)
	}
	e.log.Info("device client opened",
		logger.Component("audio"),
		logger.Client(e.client),
		logger.SampleRate(rate),
	)

	if err := e.dev.Start(Callbacks{
		Process:    e.onProcess,
		SampleRate: e.onSampleRate,
		Shutdown:   e.onShutdown,
	}); err != nil {
		_ = e.dev.Close()
		return fmt.Errorf("audio: activate device client: %w", err)
	}

	if err := e.dev.RegisterPorts(e.cfg.Inputs, e.cfg.Outputs); err != nil {
		_ = e.dev.Close()
		return fmt.Errorf("audio: register ports: %w", err)
	}
	if err := e.dev.ConnectPhysical(); err != nil {
		_ = e.dev.Close()
		return fmt.Errorf("audio: connect physical ports: %w", err)
	}
	e.log.Info("ports connected, enabling processing",
		logger.Component("audio"),
		logger.Count("inputs", e.cfg.Inputs),
		logger.Count("outputs", e.cfg.Outputs),
	)

	e.gate.Store(true)
	e.started = true
	e.state = DeviceState{Client: e.client, SampleRate: rate, Running: true}
	e.source.Broadcast(e.state)

	if e.hooks.PostInit != nil {
		e.hooks.PostInit()
	}
	return nil
}

// Run blocks on the control goroutine, applying driver notifications as they
// arrive, until the context is done or the driver shuts the client down
// (ErrDeviceShutdown). Subscribers attached to the engine's relay observe
// broadcasts from inside this call.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-e.events:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

// Pump applies all currently queued driver notifications without blocking
// and returns the first error, if any. It is the non-blocking alternative to
// Run for callers that already own a loop.
func (e *Engine) Pump() error {
	for {
		select {
		case fn := <-e.events:
			if err := fn(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Dropped reports how many driver notifications were discarded because the
// event queue was full.
func (e *Engine) Dropped() int64 {
	return e.dropped.Load()
}

// Close stops processing, closes the device, broadcasts the final stopped
// DeviceState, and tears down the state graph: the source detaches from the
// relay and the relay orphans its subscribers, which keep the last state
// they saw. Close is idempotent.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.hooks.PreExit != nil {
		e.hooks.PreExit()
	}

	var err error
	if e.started {
		e.gate.Store(false)
		if cerr := e.dev.Close(); cerr != nil {
			err = fmt.Errorf("audio: close device client: %w", cerr)
		}
		e.state.Running = false
		e.source.Broadcast(e.state)
		e.started = false
	}
	e.log.Info("engine closed",
		logger.Component("audio"),
		logger.Client(e.client),
		logger.Error(err),
	)

	e.source.Close()
	e.relay.Close()

	if e.hooks.PostExit != nil {
		e.hooks.PostExit()
	}
	return err
}

// onProcess runs on the driver's processing context.
func (e *Engine) onProcess(frames int) {
	if !e.gate.Load() {
		return
	}
	for _, stage := range e.stages {
		stage.Run(frames)
	}
}

// onSampleRate runs on the driver's processing context; the broadcast
// happens later, on the control goroutine.
func (e *Engine) onSampleRate(hz int) {
	e.enqueue(func() error {
		if hz == e.state.SampleRate {
			return nil
		}
		e.state.SampleRate = hz
		e.log.Info("sample rate changed",
			logger.Component("audio"),
			logger.SampleRate(hz),
		)
		e.source.Broadcast(e.state)
		return nil
	})
}

// onShutdown runs on the driver's processing context.
func (e *Engine) onShutdown() {
	e.gate.Store(false)
	e.enqueue(func() error {
		e.log.Warn("device shut down from driver side",
			logger.Component("audio"),
			logger.Client(e.client),
		)
		e.state.Running = false
		e.source.Broadcast(e.state)
		return ErrDeviceShutdown
	})
}

// enqueue hands a notification to the control goroutine. The driver thread
// must never block, so a full queue drops the notification.
func (e *Engine) enqueue(fn func() error) {
	select {
	case e.events <- fn:
	default:
		e.dropped.Add(1)
	}
}
