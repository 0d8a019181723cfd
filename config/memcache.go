package config

import (
	"fmt"
	"time"
)

// MemcacheConfig ...
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`

	// RetrySeconds between reconnect attempts of a broken connection
	RetrySeconds int `mapstructure:"retry_seconds"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conns returns at least one connection
func (c MemcacheConfig) Conns() int {
	if c.NumConns > 0 {
		return c.NumConns
	}
	return 1
}

// RetryDuration defaults to 10 seconds
func (c MemcacheConfig) RetryDuration() time.Duration {
	if c.RetrySeconds > 0 {
		return time.Duration(c.RetrySeconds) * time.Second
	}
	return 10 * time.Second
}
