package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
)

// Syncer orquestra as passadas de sincronização: percorre as contas
// vinculadas, renova tokens, busca insights e persiste de forma idempotente.
// A falha de uma conta nunca derruba a passada
type Syncer interface {
	SyncAll(ctx context.Context) ([]*domain.SyncResult, error)
	SyncAccountByID(ctx context.Context, accountID string) (*domain.SyncResult, error)
}

type service struct {
	cfg          *config.Config
	registry     *integrator.Registry
	linker       linking.Linker
	accountRepo  repository.LinkedAccountRepository
	campaignRepo repository.CampaignInsightRepository
	adRepo       repository.AdInsightRepository
}

func NewService(
	cfg *config.Config,
	registry *integrator.Registry,
	linker linking.Linker,
	accountRepo repository.LinkedAccountRepository,
	campaignRepo repository.CampaignInsightRepository,
	adRepo repository.AdInsightRepository,
) Syncer {
	return &service{
		cfg:          cfg,
		registry:     registry,
		linker:       linker,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
	}
}

// SyncAll executa uma passada completa sobre todas as contas vinculadas.
// Erros por conta são capturados e devolvidos no resultado estruturado;
// apenas a falha ao listar as contas é fatal para a passada
func (s *service) SyncAll(ctx context.Context) ([]*domain.SyncResult, error) {
	accounts, err := s.accountRepo.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas vinculadas: %w", err)
	}

	logrus.WithField("accounts", len(accounts)).Info("sync: iniciando passada de sincronização")

	results := make([]*domain.SyncResult, 0, len(accounts))
	for _, account := range accounts {
		result := s.syncAccount(ctx, account)
		if !result.Success {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"provider":   account.Provider,
				"error":      result.Error,
			}).Error("sync: conta falhou; seguindo para a próxima")
		}
		results = append(results, result)
	}

	logrus.WithField("accounts", len(accounts)).Info("sync: passada de sincronização concluída")

	return results, nil
}

// SyncAccountByID reexecuta o mesmo pipeline para uma única conta
func (s *service) SyncAccountByID(ctx context.Context, accountID string) (*domain.SyncResult, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, linking.ErrAccountNotFound
	}

	return s.syncAccount(ctx, account), nil
}

// syncAccount processa uma conta do início ao fim: token, busca,
// normalização e persistência, sob um limite de tempo próprio. Qualquer erro
// é capturado na fronteira da conta e convertido em resultado de falha
func (s *service) syncAccount(ctx context.Context, account *domain.LinkedAccount) *domain.SyncResult {
	timeout := time.Duration(s.cfg.Sync.AccountTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := &domain.SyncResult{
		AccountID: account.ID,
		Provider:  account.Provider,
	}

	processed, err := s.runPipeline(ctx, account)
	if err != nil {
		syncErr := &SyncError{AccountID: account.ID, Provider: account.Provider, Err: err}
		result.Error = syncErr.Error()
		return result
	}

	result.Success = true
	result.RecordsProcessed = processed

	return result
}

func (s *service) runPipeline(ctx context.Context, account *domain.LinkedAccount) (int, error) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"provider":   account.Provider,
	})

	fetcher, err := s.registry.Fetcher(account.Provider)
	if err != nil {
		return 0, err
	}

	logger.WithField("state", domain.SyncStatePending).Debug("sync: conta selecionada para sincronização")

	if _, err := s.linker.EnsureFreshToken(ctx, account); err != nil {
		return 0, err
	}

	logger.WithField("state", domain.SyncStateFetching).Debug("sync: buscando insights no provider")

	insights, err := fetcher.FetchInsights(ctx, account)
	if err != nil {
		return 0, err
	}

	logger.WithFields(logrus.Fields{
		"state":   domain.SyncStateNormalizing,
		"records": len(insights),
	}).Debug("sync: normalizando e persistindo insights")

	processed := 0
	for _, insight := range insights {
		if err := s.persistInsight(account, insight); err != nil {
			return processed, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		processed++
	}

	logger.WithFields(logrus.Fields{
		"state":   domain.SyncStatePersisted,
		"records": processed,
	}).Info("sync: conta sincronizada com sucesso")

	return processed, nil
}

func (s *service) persistInsight(account *domain.LinkedAccount, insight *domain.ProviderInsight) error {
	switch insight.Level {
	case domain.InsightLevelAd:
		return s.adRepo.SaveOrUpdate(BuildAdInsight(account, insight))
	default:
		return s.campaignRepo.SaveOrUpdate(BuildCampaignInsight(account, insight))
	}
}
