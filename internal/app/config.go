package app

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = 3000

// EnvPort names the environment variable that overrides DefaultPort.
const EnvPort = "PORT"

// ErrInvalidPort is returned for a port outside 0..65535 or not a number.
var ErrInvalidPort = errors.New("invalid port")

// Config holds initialization parameters for the App.
type Config struct {
	Host string // bind host; empty binds every interface
	Port int    // 0 picks a free port
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{Port: DefaultPort}
}

// ConfigFromEnv resolves Config from the environment. lookup is usually
// os.LookupEnv; tests pass a map-backed function.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	raw, ok := lookup(EnvPort)
	if !ok || strings.TrimSpace(raw) == "" {
		return cfg, nil
	}
	port, err := ParsePort(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvPort, err)
	}
	cfg.Port = port
	return cfg, nil
}

// ParsePort parses a TCP port number.
func ParsePort(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	port, err := strconv.Atoi(s)
	if err != nil || port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w %q", ErrInvalidPort, raw)
	}
	return port, nil
}

// Validate checks the port range.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// Addr returns the host:port string to listen on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
