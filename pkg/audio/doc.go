// Package audio integrates an audio device driver with a statecast graph.
// It is the frontend side of the statecast contract: the engine owns the
// driver client and the state graph, and everything the driver reports
// (startup, sample-rate changes, shutdown) reaches subscribers as plain
// DeviceState broadcasts.
//
// # Architecture
//
//	driver callbacks (processing context)
//	        │ enqueue only
//	        ▼
//	event queue ──► control goroutine (Run/Pump) ──► Source.Broadcast
//	                                                      │
//	                                          Relay ──► Subscribers
//
// The statecast core is single-threaded by contract, so the engine confines
// every broadcast and every graph mutation to one control goroutine. Driver
// callbacks, which arrive on the driver's own thread, only enqueue
// notifications; a full queue drops them rather than blocking the
// processing context.
//
// # Usage
//
//	cfg, err := audio.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine := audio.New(device,
//	    audio.WithConfig(cfg),
//	    audio.WithLogger(logger.New(logger.WithDevelopment("tapedeck"))),
//	    audio.WithStage("synth", synth.Process),
//	    audio.WithStage("effects", effects.Process),
//	)
//	defer engine.Close()
//
//	// React to device state from the control goroutine.
//	meter := statecast.NewSubscriber(engine.Relay(),
//	    statecast.WithHookFunc(func(s audio.DeviceState) {
//	        fmt.Printf("%s: %d Hz, running=%v\n", s.Client, s.SampleRate, s.Running)
//	    }))
//	defer meter.Close()
//
//	if err := engine.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//	    log.Fatal(err)
//	}
//
// # Processing stages
//
// Stages registered with WithStage run in order inside the driver's process
// callback, gated off until ports are connected and after shutdown begins.
// Stage functions execute on the driver's real-time thread and must not
// allocate or block.
//
// # Testing
//
// StubDevice stands in for a real driver: it records the engine's calls and
// exposes FireProcess, FireSampleRate, and FireShutdown so tests can drive
// the callback side by hand, then apply the queued notifications with Pump.
package audio
