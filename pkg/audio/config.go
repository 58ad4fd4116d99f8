package audio

import "github.com/dmitrymomot/statecast/core/config"

// Config holds the engine's tunables, loaded from the environment.
type Config struct {
	// ClientName is the prefix for the driver client name; a short unique
	// suffix is appended so multiple instances can coexist on one driver.
	ClientName string `env:"AUDIO_CLIENT_NAME" envDefault:"statecast"`

	// Inputs and Outputs are the port counts registered with the driver.
	Inputs  int `env:"AUDIO_INPUTS" envDefault:"2"`
	Outputs int `env:"AUDIO_OUTPUTS" envDefault:"2"`

	// EventBuffer bounds the queue between the driver's processing context
	// and the control goroutine. Notifications beyond it are dropped rather
	// than blocking the driver thread.
	EventBuffer int `env:"AUDIO_EVENT_BUFFER" envDefault:"64"`
}

// LoadConfig reads Config from the environment (and .env, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	err := config.Load(&cfg)
	return cfg, err
}
