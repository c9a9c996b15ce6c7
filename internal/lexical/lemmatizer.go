// Package lexical derives keyword lists from free text.
package lexical

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kljensen/snowball"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/logger"
)

const (
	SnowballLemmatizerName = "snowball"
	IdentityLemmatizerName = "identity"

	defaultLanguage = "english"
)

// Lemmatizer reduces a lowercased token to its base form.
type Lemmatizer interface {
	Lemma(token string) string
	Name() string
}

type identity struct{}

// Identity returns the lemmatizer that keeps tokens unchanged.
func Identity() Lemmatizer { return identity{} }

func (identity) Lemma(token string) string { return token }
func (identity) Name() string              { return IdentityLemmatizerName }

type stemmer struct {
	language string
}

// NewSnowball returns a snowball stemmer for language after checking that the
// language is supported.
func NewSnowball(language string) (Lemmatizer, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = defaultLanguage
	}
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, fmt.Errorf("init snowball stemmer for %q: %w", language, err)
	}
	return stemmer{language: language}, nil
}

func (s stemmer) Lemma(token string) string {
	stem, err := snowball.Stem(token, s.language, true)
	if err != nil || stem == "" {
		return token
	}
	return stem
}

func (stemmer) Name() string { return SnowballLemmatizerName }

// Provider hands out a lemmatizer initialised on first use. If the stemmer
// cannot be built the identity lemmatizer is used for the provider's lifetime.
type Provider struct {
	build  func() (Lemmatizer, error)
	logger *zap.Logger

	once       sync.Once
	lemmatizer Lemmatizer
}

// NewProvider returns a Provider backed by the snowball stemmer for language.
func NewProvider(language string, l *zap.Logger) *Provider {
	return NewProviderWith(func() (Lemmatizer, error) { return NewSnowball(language) }, l)
}

// NewProviderWith returns a Provider using a custom builder.
func NewProviderWith(build func() (Lemmatizer, error), l *zap.Logger) *Provider {
	return &Provider{build: build, logger: logger.OrNop(l)}
}

// Lemmatizer returns the active lemmatizer.
func (p *Provider) Lemmatizer() Lemmatizer {
	p.once.Do(func() {
		lem, err := p.safeBuild()
		if err != nil {
			p.logger.Warn("lemmatizer unavailable, using plain tokens", zap.Error(err))
			lem = Identity()
		}
		p.lemmatizer = lem
	})
	return p.lemmatizer
}

func (p *Provider) safeBuild() (lem Lemmatizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			lem, err = nil, fmt.Errorf("lemmatizer builder panicked: %v", r)
		}
	}()
	if p.build == nil {
		return nil, errors.New("no lemmatizer builder configured")
	}
	lem, err = p.build()
	if err == nil && lem == nil {
		err = errors.New("lemmatizer builder returned nil")
	}
	return lem, err
}
