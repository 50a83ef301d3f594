package model

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// FileStore reads models from <Dir>/<name>.json.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{Dir: dir} }

func (s *FileStore) read(name string) ([]byte, error) {
	path := filepath.Join(s.Dir, name+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", name, err)
	}
	return data, nil
}

func (s *FileStore) LoadClassifier(ctx context.Context) (Classifier, error) {
	data, err := s.read(ClassifierName)
	if err != nil {
		return nil, err
	}
	knn, err := DecodeKNN(data)
	if err != nil {
		return nil, err
	}
	return knn, nil
}

func (s *FileStore) LoadBehaviourModel(ctx context.Context, name string) (BehaviourModel, error) {
	data, err := s.read(name)
	if err != nil {
		return nil, err
	}
	mlp, err := DecodeMLP(data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	return mlp, nil
}

// RedisGetter is the subset of a redis client the store needs. Both
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore reads model documents stored as string values under
// <Prefix><name>.
type RedisStore struct {
	client RedisGetter
	Prefix string
}

// NewRedisStore wraps client. prefix is prepended to every model name.
func NewRedisStore(client RedisGetter, prefix string) *RedisStore {
	return &RedisStore{client: client, Prefix: prefix}
}

func (s *RedisStore) read(ctx context.Context, name string) ([]byte, error) {
	key := s.Prefix + name
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: redis key %s", ErrModelNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading model %s from redis: %w", name, err)
	}
	return data, nil
}

func (s *RedisStore) LoadClassifier(ctx context.Context) (Classifier, error) {
	data, err := s.read(ctx, ClassifierName)
	if err != nil {
		return nil, err
	}
	knn, err := DecodeKNN(data)
	if err != nil {
		return nil, err
	}
	return knn, nil
}

func (s *RedisStore) LoadBehaviourModel(ctx context.Context, name string) (BehaviourModel, error) {
	data, err := s.read(ctx, name)
	if err != nil {
		return nil, err
	}
	mlp, err := DecodeMLP(data)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	return mlp, nil
}
