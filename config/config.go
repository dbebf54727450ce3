// Package config loads hashid codec settings from a TOML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kanengo/kuid/hashidx"
	"github.com/pelletier/go-toml/v2"
)

const (
	EnvSalt      = "KUID_SALT"
	EnvMinLength = "KUID_MIN_LENGTH"
)

type Config struct {
	Salt       string `toml:"salt"`
	Alphabet   string `toml:"alphabet"`   // empty selects hashidx.DefaultAlphabet
	Separators string `toml:"separators"` // empty selects hashidx.DefaultSeparators
	MinLength  int    `toml:"min_length"`
	Batch      Batch  `toml:"batch"`
	Cache      Cache  `toml:"cache"`
}

type Batch struct {
	Concurrency int `toml:"concurrency"` // 0 = GOMAXPROCS
}

type Cache struct {
	Size int `toml:"size"` // 0 disables decode caching
}

func Default() *Config {
	return &Config{}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from KUID_SALT and KUID_MIN_LENGTH when set.
func (c *Config) ApplyEnv() error {
	if salt, ok := os.LookupEnv(EnvSalt); ok {
		c.Salt = salt
	}
	if v, ok := os.LookupEnv(EnvMinLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinLength, err)
		}
		c.MinLength = n
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("min_length must not be negative, got %d", c.MinLength)
	}
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("batch.concurrency must not be negative, got %d", c.Batch.Concurrency)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	return nil
}

func (c *Config) Builder() hashidx.Builder {
	b := hashidx.NewBuilder().Salt(c.Salt).Length(c.MinLength)
	if c.Alphabet != "" {
		b = b.Alphabet(c.Alphabet)
	}
	if c.Separators != "" {
		b = b.Separators(c.Separators)
	}
	return b
}
