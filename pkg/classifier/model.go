// Package classifier implements Naive-Bayes-style spam scoring on top of two
// word-frequency maps, one trained on spam and one on ham.
package classifier

import (
	"math"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

// logOddsCap bounds a single token's log-odds contribution. A token whose
// local spam fraction rounds to exactly 0 or 1 would otherwise contribute
// ±Inf and could poison the running sum with NaN; capped terms still drive
// the final probability to the corresponding extreme.
const logOddsCap = 700.0

// Model scores text against a spam-trained and a ham-trained frequency map.
// Once assembled it is read-only, so it may be shared across goroutines.
type Model struct {
	spam *freq.Map
	ham  *freq.Map
}

// New returns an untrained model with two empty frequency maps.
func New() *Model {
	return &Model{
		spam: freq.New(),
		ham:  freq.New(),
	}
}

// FromMaps assembles a model from a ham-trained and a spam-trained map.
// The maps are consumed by the model.
func FromMaps(ham, spam *freq.Map) *Model {
	return New().AddHam(ham).AddSpam(spam)
}

// AddSpam merges a frequency map built from known spam into the model and
// returns the model for chaining. Merge order does not matter.
func (m *Model) AddSpam(fm *freq.Map) *Model {
	m.spam = m.spam.Merge(fm)
	return m
}

// AddHam merges a frequency map built from known ham into the model and
// returns the model for chaining.
func (m *Model) AddHam(fm *freq.Map) *Model {
	m.ham = m.ham.Merge(fm)
	return m
}

// Spam returns the spam-trained frequency map.
func (m *Model) Spam() *freq.Map {
	return m.spam
}

// Ham returns the ham-trained frequency map.
func (m *Model) Ham() *freq.Map {
	return m.ham
}

// TextSpamProbability returns the probability, in [0,1], that text is spam.
//
// The text is tokenized with the same rules used at training time. Each
// token known to both maps contributes the log-odds of its local spam
// fraction p = spam/(spam+ham); tokens missing from either map carry no
// evidence and are skipped. The accumulated sum n is mapped through the
// logistic transform 1/(1+e^n), so spam-leaning tokens push the result
// toward 1 and ham-leaning tokens toward 0. With no matched tokens at all
// the result is exactly 0.5: no evidence, maximum uncertainty.
func (m *Model) TextSpamProbability(text string) float64 {
	var n float64
	for _, token := range freq.Tokenize(text) {
		spamFreq, ok := m.spam.WordFrequency(token)
		if !ok {
			continue
		}
		hamFreq, ok := m.ham.WordFrequency(token)
		if !ok {
			continue
		}

		p := spamFreq / (spamFreq + hamFreq)
		term := math.Log(1-p) - math.Log(p)
		if term > logOddsCap {
			term = logOddsCap
		} else if term < -logOddsCap {
			term = -logOddsCap
		}
		n += term
	}

	return 1 / (1 + math.Exp(n))
}
