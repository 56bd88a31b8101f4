package classifier

import (
	"math"
	"testing"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

func TestTextSpamProbabilityBounds(t *testing.T) {
	model := FromMaps(
		freq.FromText("hello how are you today meeting"),
		freq.FromText("free offer act now hello winner"),
	)

	texts := []string{
		"hello free offer",
		"how are you",
		"act now winner hello",
		"completely unrelated words here",
		"",
		"😊😊😊",
	}
	for _, text := range texts {
		p := model.TextSpamProbability(text)
		if p < 0 || p > 1 {
			t.Errorf("probability %f outside [0,1] for %q", p, text)
		}
		if math.IsNaN(p) {
			t.Errorf("probability is NaN for %q", text)
		}
	}
}

func TestTextSpamProbabilitySharedWord(t *testing.T) {
	// "spam" appears in both classes, so the score must stay strictly
	// inside (0,1).
	model := FromMaps(
		freq.FromText("spam ham"),
		freq.FromText("spam spam spam spam ham"),
	)

	p := model.TextSpamProbability("spam")
	if p <= 0 || p >= 1 {
		t.Errorf("expected probability strictly within (0,1), got %f", p)
	}
	// The word is four times likelier in spam, so it should lean spammy.
	if p <= 0.5 {
		t.Errorf("expected spam-leaning probability, got %f", p)
	}
}

func TestTextSpamProbabilityZeroEvidence(t *testing.T) {
	model := FromMaps(
		freq.FromText("hello there"),
		freq.FromText("free offer"),
	)

	cases := []string{
		"",
		"unrelated vocabulary entirely",
		"hello",      // ham-only word: skipped, no evidence
		"free offer", // spam-only words: skipped, no evidence
	}
	for _, text := range cases {
		if p := model.TextSpamProbability(text); p != 0.5 {
			t.Errorf("expected exactly 0.5 for %q, got %f", text, p)
		}
	}
}

func TestTextSpamProbabilityEmptyModel(t *testing.T) {
	if p := New().TextSpamProbability("anything at all"); p != 0.5 {
		t.Errorf("expected 0.5 from untrained model, got %f", p)
	}
}

func TestTextSpamProbabilityHamLeaning(t *testing.T) {
	model := FromMaps(
		freq.FromText("meeting meeting meeting meeting report"),
		freq.FromText("meeting report report report report"),
	)

	p := model.TextSpamProbability("meeting")
	if p >= 0.5 {
		t.Errorf("expected ham-leaning probability, got %f", p)
	}
}

func TestTextSpamProbabilityExtremeRatioIsFinite(t *testing.T) {
	// The ham frequency is so small that the local spam fraction rounds to
	// exactly 1.0; the log-odds term must saturate instead of going NaN.
	ham, err := freq.FromCounts(map[string]int64{
		"X":      1,
		"FILLER": 200_000_000_000_000_000,
	})
	if err != nil {
		t.Fatal(err)
	}
	spam, err := freq.FromCounts(map[string]int64{"X": 1})
	if err != nil {
		t.Fatal(err)
	}

	p := FromMaps(ham, spam).TextSpamProbability("x")
	if math.IsNaN(p) {
		t.Fatal("probability is NaN at extreme frequency ratio")
	}
	if p < 0.99 || p > 1 {
		t.Errorf("expected saturated spam probability, got %f", p)
	}
}

func TestBuilderOrderIndependent(t *testing.T) {
	a := New().
		AddSpam(freq.FromText("free offer")).
		AddHam(freq.FromText("hello there")).
		AddSpam(freq.FromText("act now"))
	b := New().
		AddSpam(freq.FromText("act now free offer")).
		AddHam(freq.FromText("hello there"))

	texts := []string{"free hello", "act now", "hello there offer"}
	for _, text := range texts {
		pa := a.TextSpamProbability(text)
		pb := b.TextSpamProbability(text)
		if pa != pb {
			t.Errorf("builder order changed score for %q: %f vs %f", text, pa, pb)
		}
	}
}

func TestFromMapsMatchesBuilder(t *testing.T) {
	ham := "hello there how are you"
	spam := "free offer act now"

	a := FromMaps(freq.FromText(ham), freq.FromText(spam))
	b := New().AddHam(freq.FromText(ham)).AddSpam(freq.FromText(spam))

	if pa, pb := a.TextSpamProbability("hello free"), b.TextSpamProbability("hello free"); pa != pb {
		t.Errorf("FromMaps and builder disagree: %f vs %f", pa, pb)
	}
}
