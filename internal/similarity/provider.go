package similarity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/logger"
)

// LoadResult is the outcome of a Loader call. A non-nil Err makes the
// provider fall back to TF-IDF.
type LoadResult struct {
	Engine Engine
	Err    error
}

// Loader builds the preferred engine. It is called at most once per Provider.
type Loader func(ctx context.Context) LoadResult

var errNoEngine = errors.New("loader returned no engine")

// Provider selects the similarity engine on first use and keeps it for its lifetime.
type Provider struct {
	load   Loader
	logger *zap.Logger

	once   sync.Once
	engine Engine
}

// NewProvider returns a Provider that initialises through load.
// A nil load always yields the TF-IDF engine.
func NewProvider(load Loader, l *zap.Logger) *Provider {
	return &Provider{
		load:   load,
		logger: logger.OrNop(l),
	}
}

// Engine returns the active engine, initialising it on the first call.
func (p *Provider) Engine(ctx context.Context) Engine {
	p.once.Do(func() {
		p.engine = p.init(ctx)
	})
	return p.engine
}

// Similarity delegates to the active engine.
func (p *Provider) Similarity(ctx context.Context, a, b string) float64 {
	return p.Engine(ctx).Similarity(ctx, a, b)
}

// Name reports the active engine name.
func (p *Provider) Name() string {
	return p.Engine(context.Background()).Name()
}

func (p *Provider) init(ctx context.Context) Engine {
	if p.load == nil {
		p.logger.Info("similarity engine selected", logger.CommonFields(TFIDFEngineName, "")...)
		return NewTFIDF()
	}

	res := safeLoad(ctx, p.load)
	if res.Err == nil && res.Engine == nil {
		res.Err = errNoEngine
	}
	if res.Err != nil {
		p.logger.Warn("similarity model unavailable, falling back to tf-idf",
			append(logger.CommonFields(TFIDFEngineName, ""), zap.Error(res.Err))...,
		)
		return NewTFIDF()
	}

	p.logger.Info("similarity engine selected", logger.CommonFields(res.Engine.Name(), modelOf(res.Engine))...)
	return res.Engine
}

func safeLoad(ctx context.Context, load Loader) (res LoadResult) {
	defer func() {
		if r := recover(); r != nil {
			res = LoadResult{Err: fmt.Errorf("loader panicked: %v", r)}
		}
	}()
	return load(ctx)
}

func modelOf(e Engine) string {
	if m, ok := e.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}
