// Package knowledge holds the static reference texts the assistant grounds
// its answers in, with lightweight keyword retrieval over them.
package knowledge

import "strings"

// Chunk is a unit of reference text tagged with keywords for retrieval.
type Chunk struct {
	Text     string
	Keywords []string
}

// ContextDelimiter separates concatenated chunks in retrieved context.
const ContextDelimiter = "\n---\n"

// NoMatchFallback is returned when no chunk matches the query.
const NoMatchFallback = "No specific information found in the knowledge base. Rely on general knowledge to answer."

// Store is an immutable, read-only chunk collection loaded once at startup.
type Store struct {
	chunks []Chunk
}

func NewStore(chunks []Chunk) *Store {
	if chunks == nil {
		chunks = DefaultChunks
	}
	return &Store{chunks: chunks}
}

// Retrieve returns the concatenated text of every chunk relevant to query.
// A chunk matches when any of its keywords appears in the lower-cased query,
// or when the chunk's own text contains the query as a substring. Matches
// keep store order; there is no ranking. An empty query matches nothing and
// yields the fallback.
func (s *Store) Retrieve(query string) string {
	lower := strings.ToLower(query)

	var matched []string
	for _, c := range s.chunks {
		if s.matches(c, lower) {
			matched = append(matched, c.Text)
		}
	}

	if len(matched) == 0 {
		return NoMatchFallback
	}
	return strings.Join(matched, ContextDelimiter)
}

func (s *Store) matches(c Chunk, lowerQuery string) bool {
	if lowerQuery == "" {
		return false
	}
	for _, kw := range c.Keywords {
		if strings.Contains(lowerQuery, strings.ToLower(kw)) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(c.Text), lowerQuery)
}

// Len reports how many chunks are loaded, for the startup summary log.
func (s *Store) Len() int {
	return len(s.chunks)
}
