package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config has the settings for the host tools. Command line flags override these
type Config struct {
	SerialPort string `env:"SERIAL_PORT"`
	BaudRate   int    `env:"BAUD_RATE" envDefault:"115200"`

	// RunlogAddr is where the monitor posts completed runs. Runs are not recorded when empty
	RunlogAddr string `env:"RUNLOG_ADDR"`
	// RunlogListen is the address the run log API listens on
	RunlogListen string `env:"RUNLOG_LISTEN" envDefault:":8080"`

	// Verbose makes the simulated panel print every button change
	Verbose bool `env:"VERBOSE" envDefault:"false"`
}

// NewFromEnv reads the Config from environment variables
func NewFromEnv() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config from environment: %w", err)
	}

	if cfg.BaudRate <= 0 {
		return Config{}, fmt.Errorf("invalid baud rate: %d", cfg.BaudRate)
	}

	return cfg, nil
}
