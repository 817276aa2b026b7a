package linking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

// Linker gerencia o ciclo de vida das contas vinculadas: troca de código
// OAuth, renovação transparente de tokens e desconexão
type Linker interface {
	ObtainToken(ctx context.Context, provider domain.Provider, code, userID string) ([]*domain.LinkedAccount, error)
	EnsureFreshToken(ctx context.Context, account *domain.LinkedAccount) (string, error)
	GetAccount(userID, accountID string) (*domain.LinkedAccount, error)
	GetUserAccounts(userID string) ([]*domain.LinkedAccount, error)
	Disconnect(userID, accountID string) error
}

type service struct {
	registry    *integrator.Registry
	accountRepo repository.LinkedAccountRepository
}

func NewService(registry *integrator.Registry, accountRepo repository.LinkedAccountRepository) Linker {
	return &service{
		registry:    registry,
		accountRepo: accountRepo,
	}
}

// ObtainToken completa o fluxo OAuth do provider e vincula uma conta por
// identidade de anunciante resolvida. Uma autorização pode render várias
// contas; reconectar a mesma identidade atualiza os tokens em vez de duplicar
func (s *service) ObtainToken(ctx context.Context, provider domain.Provider, code, userID string) ([]*domain.LinkedAccount, error) {
	source, err := s.registry.Source(provider)
	if err != nil {
		return nil, err
	}

	grant, identities, err := source.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.LinkedAccount, 0, len(identities))
	if len(identities) == 0 {
		// o provider não resolveu a identidade no momento da autorização;
		// a conta fica com o ID externo nulo até ser resolvido
		account, err := newLinkedAccount(userID, provider, nil, grant)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	for i := range identities {
		externalID := identities[i].ExternalID
		account, err := newLinkedAccount(userID, provider, &externalID, grant)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := s.accountRepo.SaveOrUpdate(accounts); err != nil {
		return nil, err
	}

	linked, err := s.reloadLinked(userID, provider, accounts)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"provider": provider,
		"accounts": len(linked),
	}).Info("linking: contas vinculadas com sucesso")

	return linked, nil
}

// EnsureFreshToken devolve o token de acesso vigente, renovando-o uma única
// vez quando expirado. Sem data de expiração o token é tratado como válido.
// A renovação atualiza a conta em vigor, nunca cria linha nova
func (s *service) EnsureFreshToken(ctx context.Context, account *domain.LinkedAccount) (string, error) {
	if !account.TokenExpired(time.Now()) {
		return account.AccessToken, nil
	}

	if account.RefreshToken == nil {
		return "", ErrTokenRefreshUnsupported
	}

	source, err := s.registry.Source(account.Provider)
	if err != nil {
		return "", err
	}

	grant, err := source.RefreshToken(ctx, *account.RefreshToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"provider":   account.Provider,
			"error":      err.Error(),
		}).Error("linking: erro ao renovar token; conta mantém o último token conhecido")
		return "", err
	}

	if err := s.accountRepo.UpdateToken(account.ID, grant.AccessToken, grant.RefreshToken, grant.ExpiresAt); err != nil {
		return "", err
	}

	account.AccessToken = grant.AccessToken
	account.ExpiresAt = grant.ExpiresAt
	if grant.RefreshToken != nil {
		account.RefreshToken = grant.RefreshToken
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"provider":   account.Provider,
	}).Info("linking: token renovado com sucesso")

	return account.AccessToken, nil
}

// GetAccount busca uma conta do usuário; conta de outro usuário é tratada
// como inexistente
func (s *service) GetAccount(userID, accountID string) (*domain.LinkedAccount, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil || account.UserID != userID {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (s *service) GetUserAccounts(userID string) ([]*domain.LinkedAccount, error) {
	return s.accountRepo.ListByUser(userID)
}

// Disconnect remove a conta vinculada; os insights e logs associados caem
// em cascata
func (s *service) Disconnect(userID, accountID string) error {
	if _, err := s.GetAccount(userID, accountID); err != nil {
		return err
	}

	return s.accountRepo.Delete(accountID)
}

// reloadLinked recarrega as contas persistidas para devolver as linhas
// canônicas; em uma reconexão o ID gerado aqui é descartado em favor do
// ID da linha pré-existente
func (s *service) reloadLinked(userID string, provider domain.Provider, saved []*domain.LinkedAccount) ([]*domain.LinkedAccount, error) {
	all, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(saved))
	for _, account := range saved {
		wanted[keyOf(account.ExternalAdvertiserID)] = true
	}

	linked := make([]*domain.LinkedAccount, 0, len(saved))
	for _, account := range all {
		if account.Provider == provider && wanted[keyOf(account.ExternalAdvertiserID)] {
			linked = append(linked, account)
		}
	}

	return linked, nil
}

func keyOf(externalID *string) string {
	if externalID == nil {
		return ""
	}
	return *externalID
}

func newLinkedAccount(userID string, provider domain.Provider, externalID *string, grant *integrator.TokenGrant) (*domain.LinkedAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &domain.LinkedAccount{
		ID:                   id,
		UserID:               userID,
		Provider:             provider,
		ExternalAdvertiserID: externalID,
		AccessToken:          grant.AccessToken,
		RefreshToken:         grant.RefreshToken,
		ExpiresAt:            grant.ExpiresAt,
	}, nil
}
