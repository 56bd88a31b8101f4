package corpus

import (
	"sync"

	"github.com/hamsieve/spam-classifier/pkg/classifier"
)

// ValidationResult summarizes a validation run over one labeled directory.
type ValidationResult struct {
	Correct int
	Total   int
}

// Accuracy returns the fraction of correctly classified documents, zero when
// nothing was scored.
func (r ValidationResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Validate scores every readable file under dir with the model and counts
// how many scores the isCorrect predicate accepts. Files are scored
// concurrently; the model is read-only during scoring so no locking is
// needed. onScore, when non-nil, is called for every scored file.
func Validate(model *classifier.Model, dir string, workers int, isCorrect func(p float64) bool, onScore func(path string, p float64)) (ValidationResult, error) {
	paths, err := listFiles(dir)
	if err != nil {
		return ValidationResult{}, err
	}

	var (
		result ValidationResult
		mu     sync.Mutex
	)

	forEachFile(paths, workers, func(path string) {
		text, err := readText(path)
		if err != nil {
			return
		}
		p := model.TextSpamProbability(text)

		mu.Lock()
		defer mu.Unlock()
		result.Total++
		if isCorrect(p) {
			result.Correct++
		}
		if onScore != nil {
			onScore(path, p)
		}
	})

	return result, nil
}
