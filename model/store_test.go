package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	knnDoc = `{"k":1,"samples":[[0],[1]],"labels":[0,1]}`
	mlpDoc = `{"layers":[{"weights":[[2]],"bias":[0]}]}`
)

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ClassifierName+".json"), []byte(knnDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bully_model.json"), []byte(mlpDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken_model.json"), []byte(`{`), 0o644))

	s := NewFileStore(dir)
	ctx := context.Background()

	c, err := s.LoadClassifier(ctx)
	require.NoError(t, err)
	label, err := c.Predict([]float32{0.9})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	m, err := s.LoadBehaviourModel(ctx, "bully_model")
	require.NoError(t, err)
	p, err := m.WinProbability([]float32{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)

	_, err = s.LoadBehaviourModel(ctx, "rdeep_model")
	assert.ErrorIs(t, err, ErrModelNotFound)

	_, err = s.LoadBehaviourModel(ctx, "broken_model")
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestFileStore_MissingClassifier(t *testing.T) {
	_, err := NewFileStore(t.TempDir()).LoadClassifier(context.Background())
	assert.ErrorIs(t, err, ErrModelNotFound)
}

// fakeRedis serves fixed values the way a redis client would.
type fakeRedis struct {
	values map[string]string
	err    error
	keys   []string
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func TestRedisStore(t *testing.T) {
	fake := &fakeRedis{values: map[string]string{
		"schnapsen:model:" + ClassifierName: knnDoc,
		"schnapsen:model:random_model":      mlpDoc,
	}}
	s := NewRedisStore(fake, "schnapsen:model:")
	ctx := context.Background()

	c, err := s.LoadClassifier(ctx)
	require.NoError(t, err)
	label, err := c.Predict([]float32{0.1})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	m, err := s.LoadBehaviourModel(ctx, "random_model")
	require.NoError(t, err)
	p, err := m.WinProbability([]float32{1})
	require.NoError(t, err)
	assert.Greater(t, p, 0.5)

	_, err = s.LoadBehaviourModel(ctx, "2ndBot_model")
	assert.ErrorIs(t, err, ErrModelNotFound)

	assert.Equal(t, []string{
		"schnapsen:model:" + ClassifierName,
		"schnapsen:model:random_model",
		"schnapsen:model:2ndBot_model",
	}, fake.keys)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	boom := errors.New("connection refused")
	s := NewRedisStore(&fakeRedis{err: boom}, "")

	_, err := s.LoadClassifier(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrModelNotFound)
}
