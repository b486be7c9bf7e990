package knowledge_test

import (
	"strings"
	"testing"

	"github.com/conciergeai/conciergeai/internal/knowledge"
)

func TestRetrieveKeywordMatch(t *testing.T) {
	s := knowledge.NewStore(nil)

	queries := []string{
		"how much is shipping?",
		"when will my order ship",
		"what is the delivery time",
	}
	for _, q := range queries {
		got := s.Retrieve(q)
		if !strings.Contains(got, "standard shipping takes 3-5 business days") {
			t.Errorf("Retrieve(%q) should include the shipping chunk, got %q", q, got)
		}
	}
}

func TestRetrieveCaseInsensitive(t *testing.T) {
	s := knowledge.NewStore(nil)

	upper := s.Retrieve("SHIPPING cost?")
	lower := s.Retrieve("shipping cost?")
	if upper != lower {
		t.Errorf("retrieval should be case-insensitive:\nupper: %q\nlower: %q", upper, lower)
	}
	if upper == knowledge.NoMatchFallback {
		t.Error("'SHIPPING cost?' should match the shipping chunk")
	}
}

func TestRetrieveNoMatch(t *testing.T) {
	s := knowledge.NewStore(nil)

	for _, q := range []string{"quantum entanglement", ""} {
		if got := s.Retrieve(q); got != knowledge.NoMatchFallback {
			t.Errorf("Retrieve(%q) = %q, want exact fallback", q, got)
		}
	}
}

func TestRetrieveMultipleMatchesKeepStoreOrder(t *testing.T) {
	s := knowledge.NewStore([]knowledge.Chunk{
		{Text: "first chunk", Keywords: []string{"alpha"}},
		{Text: "second chunk", Keywords: []string{"beta"}},
		{Text: "third chunk", Keywords: []string{"alpha", "beta"}},
	})

	got := s.Retrieve("tell me about alpha and beta")
	want := "first chunk" + knowledge.ContextDelimiter + "second chunk" + knowledge.ContextDelimiter + "third chunk"
	if got != want {
		t.Errorf("Retrieve = %q, want %q", got, want)
	}
}

func TestRetrieveChunkTextContainsQuery(t *testing.T) {
	s := knowledge.NewStore([]knowledge.Chunk{
		{Text: "Our loyalty program grants one point per dollar.", Keywords: []string{"rewards"}},
	})

	// No keyword matches, but the chunk text contains the query.
	got := s.Retrieve("loyalty program")
	if !strings.Contains(got, "one point per dollar") {
		t.Errorf("text-substring match failed, got %q", got)
	}
}
