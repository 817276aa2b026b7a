package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/syncing"
)

// ErrSyncAlreadyRunning indica que uma passada completa já está em andamento
var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

// InsightSyncConfig representa a configuração do agendador de sincronização
type InsightSyncConfig struct {
	IntervalMinutes     int
	StartupDelaySeconds int
	LookbackDays        int
	SyncEnabled         bool
}

// InsightSyncService agenda e executa as passadas de sincronização de
// insights. A passada periódica e a execução pós-inicialização invocam o
// mesmo ponto de entrada do orquestrador
type InsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSyncConfig
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncResults     []*domain.SyncResult
}

// NewInsightSyncService cria uma nova instância do serviço de sincronização
func NewInsightSyncService(syncer syncing.Syncer, appConfig *config.Config) *InsightSyncService {
	insightConfig := InsightSyncConfig{
		IntervalMinutes:     appConfig.Sync.IntervalMinutes,
		StartupDelaySeconds: appConfig.Sync.StartupDelaySeconds,
		LookbackDays:        appConfig.Sync.LookbackDays,
		SyncEnabled:         appConfig.Sync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes":      insightConfig.IntervalMinutes,
		"startup_delay_seconds": insightConfig.StartupDelaySeconds,
		"lookback_days":         insightConfig.LookbackDays,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de insights carregada")

	return &InsightSyncService{
		scheduler:   scheduler,
		config:      insightConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador: uma execução única após o atraso de
// inicialização e a execução periódica no intervalo configurado
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).Info("Iniciando agendador de sincronização de insights")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().Do(func() {
		s.runSyncPass(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	// Execução inicial após o atraso de inicialização, pelo mesmo ponto de
	// entrada da execução periódica
	go func() {
		delay := time.Duration(s.config.StartupDelaySeconds) * time.Second
		select {
		case <-time.After(delay):
			logrus.Info("Executando sincronização inicial de insights")
			s.runSyncPass(ctx)
		case <-ctx.Done():
		}
	}()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// runSyncPass executa uma passada completa, ignorando o gatilho quando outra
// passada ainda está em andamento
func (s *InsightSyncService) runSyncPass(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startedAt := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startedAt
	s.syncMutex.Unlock()

	results, err := s.syncer.SyncAll(ctx)
	if err != nil {
		// falha de passada não é fatal; o próximo tick agendado executa
		logrus.WithError(err).Error("Erro na passada de sincronização de insights")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncResults = results
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startedAt).String(),
		"accounts":  len(results),
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	}).Info("Passada de sincronização de insights concluída")
}

// TriggerManualSync executa uma sincronização sob demanda. Com accountID a
// passada cobre apenas aquela conta; vazio, todas as contas vinculadas.
// O resultado estruturado permite ao chamador repetir só as contas que falharam
func (s *InsightSyncService) TriggerManualSync(ctx context.Context, accountID string) ([]*domain.SyncResult, error) {
	if accountID != "" {
		result, err := s.syncer.SyncAccountByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return []*domain.SyncResult{result}, nil
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização manual de insights")

	s.syncMutex.Lock()
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	results, err := s.syncer.SyncAll(ctx)
	if err != nil {
		return nil, err
	}

	s.syncMutex.Lock()
	s.lastSyncResults = results
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	return results, nil
}

// GetStatus retorna o estado atual do agendador. Todo o estado mutável é
// copiado sob o mutex, pois a passada de sincronização o atualiza em outra
// goroutine
func (s *InsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	results := s.lastSyncResults
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_minutes":  s.config.IntervalMinutes,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_sync_results":      results,
	}
}
