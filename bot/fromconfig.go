package bot

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/jason-s-yu/schnapsen/internal/config"
	"github.com/jason-s-yu/schnapsen/internal/telemetry"
	"github.com/jason-s-yu/schnapsen/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// FromConfig builds an RdeepML from loaded settings: it opens the model
// store (Redis when an address is set, the model directory otherwise),
// loads the opponent classifier and wires logging and metrics. reg may be
// nil to disable metrics. Call Close on the result when done.
func FromConfig(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*RdeepML, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	log := cfg.NewLogger()

	var metrics *telemetry.Metrics
	if reg != nil {
		metrics = telemetry.NewMetrics(reg)
	}

	var (
		store  model.Store
		closer io.Closer
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store, closer = model.NewRedisStore(client, cfg.RedisPrefix), client
		log.WithField("addr", cfg.RedisAddr).Info("Using redis model store")
	} else {
		store = model.NewFileStore(cfg.ModelDir)
		log.WithField("dir", cfg.ModelDir).Info("Using file model store")
	}

	knn, err := store.LoadClassifier(ctx)
	metrics.ModelLoaded(model.ClassifierName, err)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("loading opponent classifier: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithFields(logrus.Fields{
		"samples": cfg.NumSamples,
		"depth":   cfg.Depth,
		"workers": cfg.Workers,
		"seed":    seed,
	}).Info("Adaptive bot configured")

	r, err := NewRdeepML(Config{
		NumSamples:   cfg.NumSamples,
		Depth:        cfg.Depth,
		Workers:      cfg.Workers,
		Rand:         rand.New(rand.NewPCG(seed, seed>>1^0x9e3779b97f4a7c15)),
		Classifier:   NewOpponentClassifier(knn),
		Policies:     NewModelPolicies(store, log, metrics),
		InnerSamples: cfg.InnerSamples,
		InnerDepth:   cfg.InnerDepth,
		Logger:       log,
		Metrics:      metrics,
	})
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	r.closer = closer
	return r, nil
}
