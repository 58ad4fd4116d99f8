package audio

import "fmt"

// StubDevice is an in-memory Device for tests and examples. It records the
// calls the engine makes and lets the test fire driver callbacks by hand.
// The zero value is usable and reports a 48000 Hz sample rate.
type StubDevice struct {
	// Rate is the sample rate Open reports; 0 means 48000.
	Rate int

	// OpenErr, StartErr, PortsErr, ConnectErr inject failures into the
	// corresponding calls.
	OpenErr    error
	StartErr   error
	PortsErr   error
	ConnectErr error

	// Recorded state, readable by tests after driving the engine.
	ClientName string
	Inputs     int
	Outputs    int
	Opened     bool
	Started    bool
	Closed     bool

	cb Callbacks
}

// Open implements Device.
func (d *StubDevice) Open(clientName string) (int, error) {
	if d.OpenErr != nil {
		return 0, d.OpenErr
	}
	d.ClientName = clientName
	d.Opened = true
	if d.Rate == 0 {
		d.Rate = 48000
	}
	return d.Rate, nil
}

// Start implements Device.
func (d *StubDevice) Start(cb Callbacks) error {
	if d.StartErr != nil {
		return d.StartErr
	}
	if !d.Opened {
		return fmt.Errorf("stub device: start before open")
	}
	d.cb = cb
	d.Started = true
	return nil
}

// RegisterPorts implements Device.
func (d *StubDevice) RegisterPorts(inputs, outputs int) error {
	if d.PortsErr != nil {
		return d.PortsErr
	}
	d.Inputs = inputs
	d.Outputs = outputs
	return nil
}

// ConnectPhysical implements Device.
func (d *StubDevice) ConnectPhysical() error {
	return d.ConnectErr
}

// Close implements Device.
func (d *StubDevice) Close() error {
	d.Started = false
	d.Closed = true
	return nil
}

// FireProcess simulates a driver period callback.
func (d *StubDevice) FireProcess(frames int) {
	if d.cb.Process != nil {
		d.cb.Process(frames)
	}
}

// FireSampleRate simulates a driver sample-rate change.
func (d *StubDevice) FireSampleRate(hz int) {
	d.Rate = hz
	if d.cb.SampleRate != nil {
		d.cb.SampleRate(hz)
	}
}

// FireShutdown simulates the driver terminating the client.
func (d *StubDevice) FireShutdown() {
	if d.cb.Shutdown != nil {
		d.cb.Shutdown()
	}
}
