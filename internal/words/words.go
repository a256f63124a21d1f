// Package words splits input text into the lowercase word list that drives
// color aggregation.
package words

import (
	"sort"
	"strings"
)

// Tokenizer splits text into words, dropping blacklisted ones.
// A Tokenizer is read-only after construction and safe for concurrent use.
type Tokenizer struct {
	blacklist map[string]struct{}
}

// NewTokenizer returns a Tokenizer that drops every word in blacklist.
// Blacklist entries are matched case-insensitively.
func NewTokenizer(blacklist []string) *Tokenizer {
	t := &Tokenizer{blacklist: make(map[string]struct{}, len(blacklist))}
	for _, w := range blacklist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			t.blacklist[w] = struct{}{}
		}
	}
	return t
}

// Words lowercases text, splits it on single spaces and trims each token.
// Empty and blacklisted tokens are dropped. When sorted is true the result is
// ordered by byte value, which for UTF-8 is code-point order.
func (t *Tokenizer) Words(text string, sorted bool) []string {
	raw := strings.Split(strings.ToLower(text), " ")
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" || t.Blacklisted(w) {
			continue
		}
		words = append(words, w)
	}

	if sorted {
		sort.Strings(words)
	}
	return words
}

// Blacklisted reports whether word is filtered out by t.
func (t *Tokenizer) Blacklisted(word string) bool {
	if t == nil {
		return false
	}
	_, ok := t.blacklist[strings.ToLower(word)]
	return ok
}

// Blacklist returns the normalized blacklist in sorted order.
func (t *Tokenizer) Blacklist() []string {
	if t == nil {
		return []string{}
	}
	out := make([]string, 0, len(t.blacklist))
	for w := range t.blacklist {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
