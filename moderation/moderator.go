// Package moderation censors forbidden words in chat content before it is
// broadcast. Matching runs on a normalized view of the text (lowercased,
// leet speak folded, punctuation stripped) so trivial obfuscation like
// "b.a.d" or "b4d" still hits the automaton.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// mapping ties each rune of the normalized text back to its position in the
// original, so matched spans can be censored in place.
type mapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized word list.
func NewModerator(words []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, len(words))
	for i, w := range words {
		patterns[i] = normalize([]rune(w)).normalized
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, replacement: replacement}, nil
}

// Censor replaces every character of each matched span with the replacement
// rune, preserving length and spacing. It also reports how many spans hit.
func (m *Moderator) Censor(content string) (string, int) {
	runes := []rune(content)
	view := normalize(runes)
	if len(view.normalized) == 0 {
		return content, 0
	}

	spans := m.matcher.MultiPatternSearch(view.normalized, false)
	if len(spans) == 0 {
		return content, 0
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(view.origIdx) {
			continue
		}
		for i := view.origIdx[start]; i <= view.origIdx[end-1]; i++ {
			runes[i] = m.replacement
		}
	}
	return string(runes), len(spans)
}

func normalize(input []rune) mapping {
	out := mapping{
		normalized: make([]rune, 0, len(input)),
		origIdx:    make([]int, 0, len(input)),
	}
	for i, r := range input {
		r = foldLeet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out.normalized = append(out.normalized, unicode.ToLower(r))
		out.origIdx = append(out.origIdx, i)
	}
	return out
}

// foldLeet maps common leet speak substitutions back to plain letters.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
