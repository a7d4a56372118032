// Package config resolves the listener settings from the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// PortEnv names the environment variable holding the listening port.
	PortEnv = "PORT"
	// DefaultPort is used when PORT is unset or empty.
	DefaultPort uint16 = 3000
	// LoopbackHost is the only interface the server binds.
	LoopbackHost = "127.0.0.1"
)

// ErrBadPort reports a PORT value that is not a decimal integer in [1, 65535].
var ErrBadPort = errors.New("invalid port")

// BindConfig describes where the server listens. It is built once at startup.
type BindConfig struct {
	Port uint16
}

// Addr returns the loopback host:port pair to listen on.
func (c BindConfig) Addr() string {
	return net.JoinHostPort(LoopbackHost, strconv.FormatUint(uint64(c.Port), 10))
}

// Load builds the BindConfig from getenv, usually os.Getenv.
func Load(getenv func(string) string) (BindConfig, error) {
	port, err := ResolvePort(getenv)
	if err != nil {
		return BindConfig{}, err
	}
	return BindConfig{Port: port}, nil
}

// ResolvePort reads PORT. Unset or empty yields DefaultPort.
func ResolvePort(getenv func(string) string) (uint16, error) {
	raw := strings.TrimSpace(getenv(PortEnv))
	if raw == "" {
		return DefaultPort, nil
	}
	// ParseUint rejects signs, so "+80" and "-1" fail here along with hex and fractions.
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %s=%q must be an integer between 1 and 65535", ErrBadPort, PortEnv, raw)
	}
	return uint16(n), nil
}

// LoadDotEnv loads variables from the given files (default ".env") into the
// process environment. Variables that are already set win, and missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
