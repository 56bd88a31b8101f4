package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

// ErrModelNotFound is returned by LoadModel when no model exists at the
// given path.
var ErrModelNotFound = errors.New("model not found")

// snapshot is the on-disk JSON layout. Counts round-trip exactly; SavedAt is
// informational only.
type snapshot struct {
	Ham     map[string]int64 `json:"ham"`
	Spam    map[string]int64 `json:"spam"`
	SavedAt time.Time        `json:"saved_at"`
}

// SaveModel writes the model to path as JSON, replacing any existing file.
func SaveModel(m *Model, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	snap := snapshot{
		Ham:     m.ham.Counts(),
		Spam:    m.spam.Counts(),
		SavedAt: time.Now().UTC(),
	}
	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode model: %v", err)
	}
	return nil
}

// LoadModel reads a model back from path. A missing file yields
// ErrModelNotFound; malformed content yields a decode error. In either case
// no model is returned, never a partially-initialized one.
func LoadModel(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to open model file: %v", err)
	}
	defer file.Close()

	var snap snapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode model: %v", err)
	}

	ham, err := freq.FromCounts(snap.Ham)
	if err != nil {
		return nil, fmt.Errorf("malformed ham counts: %v", err)
	}
	spam, err := freq.FromCounts(snap.Spam)
	if err != nil {
		return nil, fmt.Errorf("malformed spam counts: %v", err)
	}

	return FromMaps(ham, spam), nil
}
