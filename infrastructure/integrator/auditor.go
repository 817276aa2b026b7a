package integrator

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/repository"
	"github.com/vfg2006/ad-insights-api/internal/domain"
)

// Auditor grava o registro de auditoria de chamadas externas. Falha na
// gravação nunca derruba a operação que a originou, apenas gera log
type Auditor struct {
	requestLogRepo repository.ApiRequestLogRepository
}

func NewAuditor(requestLogRepo repository.ApiRequestLogRepository) *Auditor {
	return &Auditor{
		requestLogRepo: requestLogRepo,
	}
}

// RecordSuccess grava uma linha de auditoria para uma chamada bem-sucedida
func (a *Auditor) RecordSuccess(provider domain.Provider, accountID, endpoint, method string, startedAt time.Time, summary any) {
	a.record(provider, accountID, endpoint, method, 200, startedAt, summary)
}

// RecordFailure grava uma linha de auditoria para uma chamada com falha,
// extraindo o status HTTP do erro quando disponível
func (a *Auditor) RecordFailure(provider domain.Provider, accountID, endpoint, method string, startedAt time.Time, err error) {
	summary := map[string]string{"error": err.Error()}
	a.record(provider, accountID, endpoint, method, StatusCodeFromError(err), startedAt, summary)
}

func (a *Auditor) record(provider domain.Provider, accountID, endpoint, method string, statusCode int, startedAt time.Time, summary any) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		logrus.WithError(err).Warn("audit: erro ao serializar resumo da resposta")
		summaryJSON = []byte("{}")
	}

	entry := &domain.ApiRequestLog{
		Provider:        provider,
		AccountID:       accountID,
		Endpoint:        endpoint,
		Method:          method,
		StatusCode:      statusCode,
		DurationMs:      time.Since(startedAt).Milliseconds(),
		ResponseSummary: summaryJSON,
	}

	if err := a.requestLogRepo.Save(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"provider":   provider,
			"account_id": accountID,
			"endpoint":   endpoint,
			"error":      err.Error(),
		}).Error("audit: erro ao gravar registro de requisição")
	}
}
