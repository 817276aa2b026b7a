package insighting

import (
	"time"

	"github.com/vfg2006/ad-insights-api/infrastructure/repository"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
)

// Insighter expõe as leituras de insights já sincronizados e do audit log.
// Toda leitura valida que a conta pertence ao usuário
type Insighter interface {
	GetCampaignInsights(userID, accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error)
	GetAdInsights(userID, accountID string, startDate, endDate time.Time) ([]*domain.AdInsight, error)
	ListApiRequestLogs(userID, accountID string, limit uint64) ([]*domain.ApiRequestLog, error)
}

type service struct {
	linker       linking.Linker
	campaignRepo repository.CampaignInsightRepository
	adRepo       repository.AdInsightRepository
	logRepo      repository.ApiRequestLogRepository
}

func NewService(
	linker linking.Linker,
	campaignRepo repository.CampaignInsightRepository,
	adRepo repository.AdInsightRepository,
	logRepo repository.ApiRequestLogRepository,
) Insighter {
	return &service{
		linker:       linker,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		logRepo:      logRepo,
	}
}

func (s *service) GetCampaignInsights(userID, accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error) {
	if _, err := s.linker.GetAccount(userID, accountID); err != nil {
		return nil, err
	}

	return s.campaignRepo.GetByDateRange(accountID, startDate, endDate)
}

func (s *service) GetAdInsights(userID, accountID string, startDate, endDate time.Time) ([]*domain.AdInsight, error) {
	if _, err := s.linker.GetAccount(userID, accountID); err != nil {
		return nil, err
	}

	return s.adRepo.GetByDateRange(accountID, startDate, endDate)
}

// ListApiRequestLogs lista o audit log das chamadas externas; com accountID
// vazio devolve as entradas mais recentes de todas as contas do usuário
func (s *service) ListApiRequestLogs(userID, accountID string, limit uint64) ([]*domain.ApiRequestLog, error) {
	if accountID != "" {
		if _, err := s.linker.GetAccount(userID, accountID); err != nil {
			return nil, err
		}
		return s.logRepo.ListByAccount(accountID, limit)
	}

	accounts, err := s.linker.GetUserAccounts(userID)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		allowed[account.ID] = true
	}

	entries, err := s.logRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.ApiRequestLog, 0, len(entries))
	for _, entry := range entries {
		if allowed[entry.AccountID] {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}
