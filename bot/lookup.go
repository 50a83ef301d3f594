package bot

import (
	"context"
	"fmt"
	"sync"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/internal/telemetry"
	"github.com/jason-s-yu/schnapsen/model"
	"github.com/sirupsen/logrus"
)

// PolicyLookup returns the policy that imitates an archetype.
type PolicyLookup interface {
	Lookup(ctx context.Context, a Archetype) (engine.Bot, error)
}

// ModelPolicies loads one behavioural model per archetype from a store and
// caches the resulting policies. A missing model is an error; no other
// archetype is substituted.
type ModelPolicies struct {
	store   model.Store
	log     logrus.FieldLogger
	metrics *telemetry.Metrics

	mu    sync.Mutex
	cache map[Archetype]*MLPlayingBot
}

// NewModelPolicies returns a lookup over store. log and metrics may be nil.
func NewModelPolicies(store model.Store, log logrus.FieldLogger, metrics *telemetry.Metrics) *ModelPolicies {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ModelPolicies{
		store:   store,
		log:     log,
		metrics: metrics,
		cache:   make(map[Archetype]*MLPlayingBot),
	}
}

func (l *ModelPolicies) Lookup(ctx context.Context, a Archetype) (engine.Bot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.cache[a]; ok {
		return b, nil
	}
	name := a.ModelName()
	m, err := l.store.LoadBehaviourModel(ctx, name)
	l.metrics.ModelLoaded(name, err)
	if err != nil {
		return nil, fmt.Errorf("loading policy for %s: %w", a, err)
	}
	l.log.WithFields(logrus.Fields{"archetype": a.String(), "model": name}).Info("Loaded behaviour model")

	b := NewMLPlayingBot(m)
	l.cache[a] = b
	return b, nil
}
