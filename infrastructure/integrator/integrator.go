package integrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ad-insights-api/internal/domain"
)

var (
	// ErrUnknownProvider indica uma conta cujo provider não tem adapter
	// registrado. Falha rápida, sem chamada externa e sem linha de audit log
	ErrUnknownProvider = errors.New("provider sem adapter registrado")

	// ErrAuthorization indica que o provider rejeitou a troca de código ou o
	// refresh de token; nunca é retentado automaticamente
	ErrAuthorization = errors.New("autorização rejeitada pelo provider")

	// ErrTokenRefreshUnsupported indica que a combinação provider/conta não
	// tem mecanismo de refresh; o chamador deve refazer o fluxo OAuth
	ErrTokenRefreshUnsupported = errors.New("refresh de token não suportado para este provider")

	// ErrProviderRequest indica falha na chamada HTTP ao provider ou status
	// não-2xx; sempre registrada no audit log antes de propagar
	ErrProviderRequest = errors.New("erro na requisição ao provider")
)

// RequestError carrega o status HTTP de uma resposta não-2xx de provider
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// Unwrap permite errors.Is(err, ErrProviderRequest)
func (e *RequestError) Unwrap() error {
	return ErrProviderRequest
}

// StatusCodeFromError extrai o status HTTP de um erro de adapter para o
// audit log; 500 quando a falha não tem resposta (timeout, rede)
func StatusCodeFromError(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 500
}

// InsightFetcher é a capacidade uniforme de busca de insights que cada
// provider implementa: janela fixa de lookback, níveis de campanha e anúncio,
// conversão de unidades e taxonomia de conversões resolvidas internamente.
// Toda chamada, com sucesso ou falha, grava exatamente uma linha de audit log
type InsightFetcher interface {
	Provider() domain.Provider
	FetchInsights(ctx context.Context, account *domain.LinkedAccount) ([]*domain.ProviderInsight, error)
}

// TokenGrant é o resultado normalizado de uma troca de código ou refresh
type TokenGrant struct {
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *time.Time
}

// AdvertiserIdentity é uma identidade de anunciante resolvida durante o OAuth.
// Uma única autorização pode render várias (ex.: lista de ad accounts do Meta)
type AdvertiserIdentity struct {
	ExternalID string
	Name       string
}

// TokenSource é a capacidade OAuth de cada provider: troca de código de
// autorização e, quando o provider suporta, refresh de token
type TokenSource interface {
	Provider() domain.Provider
	ExchangeCode(ctx context.Context, code string) (*TokenGrant, []AdvertiserIdentity, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenGrant, error)
}

// ExpiryFromSeconds converte um expires_in em segundos para um instante
// absoluto; zero ou negativo vira nulo (token sem expiração)
func ExpiryFromSeconds(expiresIn int64) *time.Time {
	if expiresIn <= 0 {
		return nil
	}

	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	return &expiresAt
}
