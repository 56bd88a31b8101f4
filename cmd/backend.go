package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamsieve/spam-classifier/pkg/classifier"
	"github.com/hamsieve/spam-classifier/pkg/config"
	"github.com/hamsieve/spam-classifier/pkg/storage"
)

// errNoModel is reported when the configured backend holds no model yet.
var errNoModel = errors.New("no trained model found")

// loadModel reads the model from the configured storage backend.
func loadModel(cfg *config.Config) (*classifier.Model, error) {
	switch cfg.Model.Backend {
	case "file":
		model, err := classifier.LoadModel(cfg.Model.File.Path)
		if errors.Is(err, classifier.ErrModelNotFound) {
			return nil, fmt.Errorf("%w at %s (run 'hamsieve train' first)", errNoModel, cfg.Model.File.Path)
		}
		return model, err
	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisStoreConfig())
		if err != nil {
			return nil, err
		}
		defer store.Close()

		model, err := store.LoadModel(context.Background(), cfg.Model.Redis.ModelName)
		if errors.Is(err, storage.ErrModelNotFound) {
			return nil, fmt.Errorf("%w named %q in Redis (run 'hamsieve train' first)", errNoModel, cfg.Model.Redis.ModelName)
		}
		return model, err
	default:
		return nil, fmt.Errorf("unknown model backend %q", cfg.Model.Backend)
	}
}

// saveModel writes the model to the configured storage backend.
func saveModel(cfg *config.Config, model *classifier.Model) error {
	switch cfg.Model.Backend {
	case "file":
		return classifier.SaveModel(model, cfg.Model.File.Path)
	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisStoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()
		return store.SaveModel(context.Background(), cfg.Model.Redis.ModelName, model)
	default:
		return fmt.Errorf("unknown model backend %q", cfg.Model.Backend)
	}
}

// modelLocation describes where the configured backend keeps the model.
func modelLocation(cfg *config.Config) string {
	if cfg.Model.Backend == "redis" {
		return fmt.Sprintf("redis model %q at %s", cfg.Model.Redis.ModelName, cfg.Model.Redis.RedisURL)
	}
	return cfg.Model.File.Path
}
