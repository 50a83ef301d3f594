// internal/config/config.go

// Package config loads the bot's settings from the environment, optionally
// overlaid with .env files, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Environment keys.
const (
	EnvNumSamples   = "SCHNAPSEN_NUM_SAMPLES"
	EnvDepth        = "SCHNAPSEN_DEPTH"
	EnvInnerSamples = "SCHNAPSEN_INNER_SAMPLES"
	EnvInnerDepth   = "SCHNAPSEN_INNER_DEPTH"
	EnvWorkers      = "SCHNAPSEN_WORKERS"
	EnvSeed         = "SCHNAPSEN_SEED"
	EnvModelDir     = "SCHNAPSEN_MODEL_DIR"
	EnvRedisAddr    = "SCHNAPSEN_REDIS_ADDR"
	EnvRedisPrefix  = "SCHNAPSEN_REDIS_PREFIX"
	EnvLogLevel     = "SCHNAPSEN_LOG_LEVEL"
	EnvLogFormat    = "SCHNAPSEN_LOG_FORMAT"
)

// Config holds the adaptive bot's settings.
type Config struct {
	NumSamples   int    // determinizations per candidate move
	Depth        int    // tricks per rollout
	InnerSamples int    // samples of the lookahead self policy
	InnerDepth   int    // depth of the lookahead self policy
	Workers      int    // parallel rollouts; 1 runs sequentially
	Seed         uint64 // 0 picks a time based seed

	ModelDir    string
	RedisAddr   string // non-empty selects the Redis model store
	RedisPrefix string

	LogLevel  string
	LogFormat string // text or json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		NumSamples:   12,
		Depth:        6,
		InnerSamples: 8,
		InnerDepth:   5,
		Workers:      1,
		ModelDir:     "ML_models",
		RedisPrefix:  "schnapsen:model:",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads the configuration. Values from files are applied first and the
// process environment overrides them; files that do not exist are skipped.
func Load(files ...string) (Config, error) {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	fileVals := map[string]string{}
	if len(present) > 0 {
		vals, err := godotenv.Read(present...)
		if err != nil {
			return Config{}, fmt.Errorf("reading env files: %w", err)
		}
		fileVals = vals
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// FromLookup builds a Config from lookup, falling back to Default for
// missing keys, and validates it.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{EnvNumSamples, &c.NumSamples},
		{EnvDepth, &c.Depth},
		{EnvInnerSamples, &c.InnerSamples},
		{EnvInnerDepth, &c.InnerDepth},
		{EnvWorkers, &c.Workers},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, f.key, v)
		}
		*f.dst = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalid, EnvSeed, v)
		}
		c.Seed = seed
	}
	strs := []struct {
		key string
		dst *string
	}{
		{EnvModelDir, &c.ModelDir},
		{EnvRedisAddr, &c.RedisAddr},
		{EnvRedisPrefix, &c.RedisPrefix},
		{EnvLogLevel, &c.LogLevel},
		{EnvLogFormat, &c.LogFormat},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok && v != "" {
			*f.dst = v
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{EnvNumSamples, c.NumSamples},
		{EnvDepth, c.Depth},
		{EnvInnerSamples, c.InnerSamples},
		{EnvInnerDepth, c.InnerDepth},
		{EnvWorkers, c.Workers},
	}
	for _, p := range positive {
		if p.v < 1 {
			return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalid, p.name, p.v)
		}
	}
	if c.RedisAddr == "" && c.ModelDir == "" {
		return fmt.Errorf("%w: one of %s or %s is required", ErrInvalid, EnvModelDir, EnvRedisAddr)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvLogLevel, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalid, EnvLogFormat, c.LogFormat)
	}
	return nil
}

// NewLogger builds a logrus logger with the configured level and format.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
