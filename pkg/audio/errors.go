package audio

import "errors"

var (
	// ErrAlreadyStarted is returned when Start is called on a running engine.
	ErrAlreadyStarted = errors.New("audio: engine already started")

	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("audio: engine closed")

	// ErrDeviceShutdown is returned by Run and Pump after the driver has
	// terminated the client from its side.
	ErrDeviceShutdown = errors.New("audio: device shut down")
)
