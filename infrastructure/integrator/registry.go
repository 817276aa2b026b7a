package integrator

import (
	"fmt"

	"github.com/vfg2006/ad-insights-api/internal/domain"
)

// Registry resolve o adapter de cada provider. Adicionar um provider novo é
// registrar mais uma variante, sem tocar no orquestrador
type Registry struct {
	fetchers map[domain.Provider]InsightFetcher
	sources  map[domain.Provider]TokenSource
}

func NewRegistry() *Registry {
	return &Registry{
		fetchers: make(map[domain.Provider]InsightFetcher),
		sources:  make(map[domain.Provider]TokenSource),
	}
}

// RegisterFetcher registra a capacidade de busca de insights de um provider
func (r *Registry) RegisterFetcher(fetcher InsightFetcher) {
	r.fetchers[fetcher.Provider()] = fetcher
}

// RegisterSource registra a capacidade OAuth de um provider
func (r *Registry) RegisterSource(source TokenSource) {
	r.sources[source.Provider()] = source
}

// Fetcher devolve o adapter de insights do provider ou ErrUnknownProvider
func (r *Registry) Fetcher(provider domain.Provider) (InsightFetcher, error) {
	fetcher, ok := r.fetchers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return fetcher, nil
}

// Source devolve a capacidade OAuth do provider ou ErrUnknownProvider
func (r *Registry) Source(provider domain.Provider) (TokenSource, error) {
	source, ok := r.sources[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return source, nil
}
