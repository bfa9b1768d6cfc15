package session

import "time"

// DefaultTTL is the sliding-window session lifetime used when none is
// configured: ten days measured from the most recently minted token.
const DefaultTTL = 240 * time.Hour

// Config holds session configuration loaded from the environment.
type Config struct {
	// Secret is the process-wide token signing key, read once at startup.
	Secret string `env:"SESSION_SECRET,required"`

	// TTL is the logical expiry applied to each minted token.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"240h"`
}

// DefaultConfig returns a Config with the default TTL and the given secret.
func DefaultConfig(secret string) Config {
	return Config{
		Secret: secret,
		TTL:    DefaultTTL,
	}
}
