package bot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	engine "github.com/jason-s-yu/schnapsen/engine"
	"github.com/jason-s-yu/schnapsen/engine/agent"
	"github.com/jason-s-yu/schnapsen/internal/config"
	"github.com/jason-s-yu/schnapsen/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644))
}

// modelDir writes a classifier that always answers Lookahead and flat
// behavioural models for every archetype.
func modelDir(t *testing.T) string {
	dir := t.TempDir()
	writeModel(t, dir, model.ClassifierName, model.KNN{
		K:       1,
		Samples: [][]float32{make([]float32, agent.InputDim)},
		Labels:  []int{int(ArchetypeLookahead)},
	})
	for a := ArchetypeRandom; a < numArchetypes; a++ {
		writeModel(t, dir, a.ModelName(), flatMLP(agent.InputDim))
	}
	return dir
}

func testSettings(dir string) config.Config {
	cfg := config.Default()
	cfg.ModelDir = dir
	cfg.NumSamples, cfg.Depth = 2, 2
	cfg.InnerSamples, cfg.InnerDepth = 1, 1
	cfg.Seed = 7
	cfg.LogLevel = "panic"
	return cfg
}

func TestFromConfig_FileStore(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := FromConfig(context.Background(), testSettings(modelDir(t)), reg)
	require.NoError(t, err)
	defer r.Close()

	rng := newTestRand(17)
	res, err := engine.PlayGame(r, NewRandBot(rng), rng)
	require.NoError(t, err)
	assert.Contains(t, []uint8{0, 1}, res.Winner)

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "schnapsen_model_loads_total")
	assert.Contains(t, names, "schnapsen_bot_decisions_total")
}

func TestFromConfig_MissingClassifier(t *testing.T) {
	_, err := FromConfig(context.Background(), testSettings(t.TempDir()), nil)
	assert.ErrorIs(t, err, model.ErrModelNotFound)
}

func TestFromConfig_InvalidSettings(t *testing.T) {
	cfg := testSettings(modelDir(t))
	cfg.Depth = 0
	_, err := FromConfig(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
