// Package corpus ingests training and validation documents from the
// filesystem. Every file is treated as one raw UTF-8 text blob; building the
// per-file frequency maps is fanned out over a bounded worker pool and the
// partial maps are folded together with the commutative merge.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

// DirStats reports what a directory ingestion run processed.
type DirStats struct {
	Files   int
	Skipped int
}

// FromFile builds a frequency map from a single text file.
func FromFile(path string) (*freq.Map, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	return freq.FromText(text), nil
}

// FromDir builds one frequency map from every regular file under dir,
// recursively. Files are read and tokenized concurrently by workers
// goroutines (NumCPU when workers <= 0), one private map per file, and the
// partial maps are combined with a parallel pairwise reduction. Unreadable
// or non-UTF-8 files are skipped and counted, not fatal. The result is
// independent of worker scheduling because the merge is commutative and
// associative.
func FromDir(dir string, workers int) (*freq.Map, DirStats, error) {
	paths, err := listFiles(dir)
	if err != nil {
		return nil, DirStats{}, err
	}

	var (
		stats    DirStats
		partials []*freq.Map
		mu       sync.Mutex
	)

	forEachFile(paths, workers, func(path string) {
		fm, err := FromFile(path)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			stats.Skipped++
			return
		}
		stats.Files++
		partials = append(partials, fm)
	})

	return freq.ReduceParallel(partials), stats, nil
}

// listFiles collects every regular file under dir.
func listFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %v", dir, err)
	}
	return paths, nil
}

// forEachFile runs fn over paths on a bounded worker pool.
func forEachFile(paths []string, workers int, fn func(path string)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				fn(path)
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
}

// readText reads a file and rejects content that is not valid UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %v", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}
	return string(data), nil
}
