// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/statecast/core/config"
//
//	type EngineConfig struct {
//		ClientName string `env:"AUDIO_CLIENT_NAME" envDefault:"statecast"`
//		Inputs     int    `env:"AUDIO_INPUTS" envDefault:"2"`
//		Outputs    int    `env:"AUDIO_OUTPUTS" envDefault:"2"`
//	}
//
//	func main() {
//		var cfg EngineConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 EngineConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 EngineConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LogConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&EngineConfig{})
//	config.MustLoad(&LogConfig{})
package config
