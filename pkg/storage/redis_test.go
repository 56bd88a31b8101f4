package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hamsieve/spam-classifier/pkg/classifier"
	"github.com/hamsieve/spam-classifier/pkg/freq"
)

func testRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	config := DefaultRedisConfig()
	config.KeyPrefix = "hamsieve:test:model"
	config.DatabaseNum = 1

	store, err := NewRedisStore(config)
	if err != nil {
		t.Skipf("Redis not available, skipping: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisSaveLoadRoundTrip(t *testing.T) {
	store := testRedisStore(t)
	ctx := context.Background()

	orig := classifier.FromMaps(
		freq.FromText("hello there how are you 😊"),
		freq.FromText("free offer act now free"),
	)

	if err := store.SaveModel(ctx, "roundtrip", orig); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	defer store.DeleteModel(ctx, "roundtrip")

	loaded, err := store.LoadModel(ctx, "roundtrip")
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	if !reflect.DeepEqual(orig.Ham().Counts(), loaded.Ham().Counts()) {
		t.Errorf("ham map mismatch: %v vs %v", orig.Ham().Counts(), loaded.Ham().Counts())
	}
	if !reflect.DeepEqual(orig.Spam().Counts(), loaded.Spam().Counts()) {
		t.Errorf("spam map mismatch: %v vs %v", orig.Spam().Counts(), loaded.Spam().Counts())
	}
}

func TestRedisSaveReplacesPrevious(t *testing.T) {
	store := testRedisStore(t)
	ctx := context.Background()

	first := classifier.FromMaps(freq.FromText("old ham"), freq.FromText("old spam"))
	if err := store.SaveModel(ctx, "replace", first); err != nil {
		t.Fatal(err)
	}
	defer store.DeleteModel(ctx, "replace")

	second := classifier.FromMaps(freq.FromText("fresh ham words"), freq.FromText("fresh spam words"))
	if err := store.SaveModel(ctx, "replace", second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadModel(ctx, "replace")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(second.Ham().Counts(), loaded.Ham().Counts()) {
		t.Errorf("expected replaced model, got %v", loaded.Ham().Counts())
	}
}

func TestRedisLoadModelNotFound(t *testing.T) {
	store := testRedisStore(t)

	_, err := store.LoadModel(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestRedisDeleteModel(t *testing.T) {
	store := testRedisStore(t)
	ctx := context.Background()

	model := classifier.FromMaps(freq.FromText("some ham"), freq.FromText("some spam"))
	if err := store.SaveModel(ctx, "deleteme", model); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteModel(ctx, "deleteme"); err != nil {
		t.Fatalf("DeleteModel failed: %v", err)
	}

	if _, err := store.LoadModel(ctx, "deleteme"); !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound after delete, got %v", err)
	}
}
