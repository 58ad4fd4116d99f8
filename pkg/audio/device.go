package audio

// Callbacks are the functions a Device invokes from its own processing
// context. They run on the driver's thread, not on the engine's control
// goroutine; implementations must not touch the state graph directly.
type Callbacks struct {
	// Process is invoked once per period with the frame count.
	Process func(frames int)
	// SampleRate is invoked when the driver changes the sample rate.
	SampleRate func(hz int)
	// Shutdown is invoked when the driver terminates the client.
	Shutdown func()
}

// Device abstracts an audio driver client (a JACK client, a test double).
// The engine drives it through the same sequence the underlying drivers
// expect: Open, Start with callbacks, RegisterPorts, ConnectPhysical, and
// finally Close.
type Device interface {
	// Open creates the driver client under the given name and returns the
	// current sample rate.
	Open(clientName string) (sampleRate int, err error)

	// Start activates the client; from this point the device may invoke the
	// callbacks from its processing context.
	Start(cb Callbacks) error

	// RegisterPorts creates the client's input and output ports.
	RegisterPorts(inputs, outputs int) error

	// ConnectPhysical wires the registered ports to the machine's physical
	// capture and playback ports.
	ConnectPhysical() error

	// Close deactivates and destroys the client. No callbacks fire after
	// Close returns.
	Close() error
}
