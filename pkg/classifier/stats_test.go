package classifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hamsieve/spam-classifier/pkg/freq"
)

func statsTestModel() *Model {
	return FromMaps(
		freq.FromText("hello hello world meeting money"),
		freq.FromText("free free free offer money"),
	)
}

func TestInfo(t *testing.T) {
	info := statsTestModel().Info()

	if info.TotalSpamWords != 5 {
		t.Errorf("expected 5 spam words, got %d", info.TotalSpamWords)
	}
	if info.TotalHamWords != 5 {
		t.Errorf("expected 5 ham words, got %d", info.TotalHamWords)
	}
	if info.SpamVocabulary != 3 {
		t.Errorf("expected spam vocabulary 3, got %d", info.SpamVocabulary)
	}
	if info.HamVocabulary != 4 {
		t.Errorf("expected ham vocabulary 4, got %d", info.HamVocabulary)
	}
	// FREE, OFFER, MONEY, HELLO, WORLD, MEETING
	if info.VocabularySize != 6 {
		t.Errorf("expected combined vocabulary 6, got %d", info.VocabularySize)
	}
}

func TestWordStats(t *testing.T) {
	model := statsTestModel()

	stats := model.WordStats("money")
	if stats == nil {
		t.Fatal("expected stats for shared word")
	}
	if stats.Word != "MONEY" {
		t.Errorf("expected canonical word MONEY, got %q", stats.Word)
	}
	if stats.SpamCount != 1 || stats.HamCount != 1 {
		t.Errorf("expected counts 1/1, got %d/%d", stats.SpamCount, stats.HamCount)
	}
	if stats.Spamminess != 0.5 {
		t.Errorf("expected spamminess 0.5, got %f", stats.Spamminess)
	}

	if model.WordStats("nonexistent") != nil {
		t.Error("expected nil stats for unseen word")
	}
	if model.WordStats("two words") != nil {
		t.Error("expected nil stats for multi-word input")
	}
}

func TestWordStatsOneSided(t *testing.T) {
	model := statsTestModel()

	free := model.WordStats("free")
	if free == nil {
		t.Fatal("expected stats for spam-only word")
	}
	if free.Spamminess != 1.0 {
		t.Errorf("expected spamminess 1.0 for spam-only word, got %f", free.Spamminess)
	}

	hello := model.WordStats("hello")
	if hello == nil {
		t.Fatal("expected stats for ham-only word")
	}
	if hello.Spamminess != 0.0 {
		t.Errorf("expected spamminess 0.0 for ham-only word, got %f", hello.Spamminess)
	}
}

func TestTopWords(t *testing.T) {
	model := statsTestModel()

	top := model.TopSpamWords(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 top spam words, got %d", len(top))
	}
	if top[0].Spamminess < top[1].Spamminess {
		t.Error("top spam words not sorted by descending spamminess")
	}
	if top[0].Word != "FREE" {
		t.Errorf("expected FREE as most spammy word, got %q", top[0].Word)
	}

	topHam := model.TopHamWords(2)
	if len(topHam) != 2 {
		t.Fatalf("expected 2 top ham words, got %d", len(topHam))
	}
	if topHam[0].Spamminess > topHam[1].Spamminess {
		t.Error("top ham words not sorted by ascending spamminess")
	}
	if topHam[0].Word != "HELLO" {
		t.Errorf("expected HELLO as most hammy word, got %q", topHam[0].Word)
	}
}

func TestTopWordsNoLimit(t *testing.T) {
	model := statsTestModel()
	all := model.TopSpamWords(0)
	if len(all) != 3 {
		t.Errorf("expected all 3 spam-map words, got %d", len(all))
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	statsTestModel().PrintStats(&buf)

	out := buf.String()
	for _, want := range []string{"Spam words: 5", "Ham words: 5", "FREE", "HELLO"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
