package classifier

import (
	"fmt"
	"io"
	"sort"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

// WordStats contains per-word training statistics.
type WordStats struct {
	Word       string  `json:"word"`
	SpamCount  int64   `json:"spam_count"`
	HamCount   int64   `json:"ham_count"`
	SpamFreq   float64 `json:"spam_freq"`
	HamFreq    float64 `json:"ham_freq"`
	Spamminess float64 `json:"spamminess"`
}

// Info contains aggregate information about a trained model.
type Info struct {
	TotalSpamWords int64 `json:"total_spam_words"`
	TotalHamWords  int64 `json:"total_ham_words"`
	SpamVocabulary int   `json:"spam_vocabulary"`
	HamVocabulary  int   `json:"ham_vocabulary"`
	VocabularySize int   `json:"vocabulary_size"`
}

// Info returns aggregate statistics about the model's training data.
func (m *Model) Info() Info {
	vocab := m.spam.Len()
	m.ham.Each(func(word string, _ int64) {
		if m.spam.Count(word) == 0 {
			vocab++
		}
	})

	return Info{
		TotalSpamWords: m.spam.TotalCount(),
		TotalHamWords:  m.ham.TotalCount(),
		SpamVocabulary: m.spam.Len(),
		HamVocabulary:  m.ham.Len(),
		VocabularySize: vocab,
	}
}

// WordStats returns training statistics for a single word, or nil when the
// word was never seen in either class. Spamminess is the word's spam
// fraction: 0 means purely ham, 1 purely spam.
func (m *Model) WordStats(word string) *WordStats {
	spamFreq, spamOK := m.spam.WordFrequency(word)
	hamFreq, hamOK := m.ham.WordFrequency(word)
	if !spamOK && !hamOK {
		return nil
	}

	tokens := freq.Tokenize(word)
	if len(tokens) != 1 {
		return nil
	}
	canonical := tokens[0]

	stats := &WordStats{
		Word:      canonical,
		SpamCount: m.spam.Count(canonical),
		HamCount:  m.ham.Count(canonical),
		SpamFreq:  spamFreq,
		HamFreq:   hamFreq,
	}
	if spamFreq+hamFreq > 0 {
		stats.Spamminess = spamFreq / (spamFreq + hamFreq)
	}
	return stats
}

// TopSpamWords returns up to limit words ranked by descending spamminess.
func (m *Model) TopSpamWords(limit int) []*WordStats {
	words := m.collectStats(m.spam)
	sort.Slice(words, func(i, j int) bool {
		if words[i].Spamminess != words[j].Spamminess {
			return words[i].Spamminess > words[j].Spamminess
		}
		if words[i].SpamCount != words[j].SpamCount {
			return words[i].SpamCount > words[j].SpamCount
		}
		return words[i].Word < words[j].Word
	})
	return truncateStats(words, limit)
}

// TopHamWords returns up to limit words ranked by ascending spamminess.
func (m *Model) TopHamWords(limit int) []*WordStats {
	words := m.collectStats(m.ham)
	sort.Slice(words, func(i, j int) bool {
		if words[i].Spamminess != words[j].Spamminess {
			return words[i].Spamminess < words[j].Spamminess
		}
		if words[i].HamCount != words[j].HamCount {
			return words[i].HamCount > words[j].HamCount
		}
		return words[i].Word < words[j].Word
	})
	return truncateStats(words, limit)
}

// collectStats builds stats for every word of one class map.
func (m *Model) collectStats(class *freq.Map) []*WordStats {
	var words []*WordStats
	class.Each(func(word string, _ int64) {
		if stats := m.WordStats(word); stats != nil {
			words = append(words, stats)
		}
	})
	return words
}

func truncateStats(words []*WordStats, limit int) []*WordStats {
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// PrintStats writes a human-readable model report.
func (m *Model) PrintStats(w io.Writer) {
	info := m.Info()

	fmt.Fprintf(w, "🧠 Word Frequency Classifier Model\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Training Data:\n")
	fmt.Fprintf(w, "  Spam words: %d\n", info.TotalSpamWords)
	fmt.Fprintf(w, "  Ham words: %d\n", info.TotalHamWords)
	fmt.Fprintf(w, "  Spam vocabulary: %d\n", info.SpamVocabulary)
	fmt.Fprintf(w, "  Ham vocabulary: %d\n", info.HamVocabulary)
	fmt.Fprintf(w, "  Combined vocabulary: %d\n", info.VocabularySize)

	fmt.Fprintf(w, "\n📈 Top Spam Words:\n")
	for i, word := range m.TopSpamWords(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, word.Word, word.Spamminess, word.SpamCount, word.HamCount)
	}

	fmt.Fprintf(w, "\n📉 Top Ham Words:\n")
	for i, word := range m.TopHamWords(10) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess, %d/%d)\n",
			i+1, word.Word, word.Spamminess, word.SpamCount, word.HamCount)
	}

	fmt.Fprintf(w, "\n")
}
