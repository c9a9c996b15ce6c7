package lexical

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

const minTokenRunes = 3

// Extractor derives deduplicated keywords from text.
type Extractor struct {
	provider *Provider
}

// NewExtractor returns an Extractor using the provider's lemmatizer.
func NewExtractor(p *Provider) *Extractor {
	return &Extractor{provider: p}
}

// Keywords returns the sorted, deduplicated keywords of text. Alphabetic tokens
// longer than two characters are grouped by base form and each group is
// reported by the first lowercased word seen for it, so every keyword occurs
// in text verbatim.
func (e *Extractor) Keywords(text string) []string {
	set := e.KeywordSet(text)
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// KeywordSet is Keywords as a set.
func (e *Extractor) KeywordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range e.surfaceForms(text) {
		set[word] = struct{}{}
	}
	return set
}

// surfaceForms maps each base form in text to the first word that produced it.
func (e *Extractor) surfaceForms(text string) map[string]string {
	forms := make(map[string]string)
	if strings.TrimSpace(text) == "" {
		return forms
	}

	lem := e.lemmatizer()
	rest := norm.NFKC.String(text)
	state := -1
	var word string
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if !isKeywordToken(word) {
			continue
		}
		lower := strings.ToLower(word)
		base := lem.Lemma(lower)
		if base == "" {
			continue
		}
		if _, seen := forms[base]; !seen {
			forms[base] = lower
		}
	}
	return forms
}

// LemmatizerName reports which lemmatizer the extractor ended up with.
func (e *Extractor) LemmatizerName() string {
	return e.lemmatizer().Name()
}

func (e *Extractor) lemmatizer() Lemmatizer {
	if e == nil || e.provider == nil {
		return Identity()
	}
	return e.provider.Lemmatizer()
}

func isKeywordToken(word string) bool {
	n := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= minTokenRunes
}
