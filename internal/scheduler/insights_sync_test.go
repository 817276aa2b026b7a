package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-insights-api/internal/config"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(syncer *mocks.MockSyncer) *InsightSyncService {
	return NewInsightSyncService(syncer, &config.Config{
		Sync: config.Sync{
			Enabled:             true,
			IntervalMinutes:     60,
			StartupDelaySeconds: 1,
			LookbackDays:        30,
		},
	})
}

func TestInsightSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(syncer)

	t.Run("Sem accountID sincroniza todas as contas", func(t *testing.T) {
		expected := []*domain.SyncResult{
			{AccountID: "ACC001", Success: true, RecordsProcessed: 10},
			{AccountID: "ACC002", Success: false, Error: "quota excedida"},
		}

		syncer.EXPECT().
			SyncAll(gomock.Any()).
			Return(expected, nil)

		results, err := service.TriggerManualSync(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, expected, results)
	})

	t.Run("Com accountID sincroniza apenas a conta informada", func(t *testing.T) {
		syncer.EXPECT().
			SyncAccountByID(gomock.Any(), "ACC001").
			Return(&domain.SyncResult{AccountID: "ACC001", Success: true}, nil)

		results, err := service.TriggerManualSync(context.Background(), "ACC001")

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "ACC001", results[0].AccountID)
	})

	t.Run("Passada completa em andamento rejeita novo gatilho completo", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		results, err := service.TriggerManualSync(context.Background(), "")

		assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
		assert.Nil(t, results)

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})

	t.Run("Sincronização de conta única não é bloqueada pela passada em andamento", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		syncer.EXPECT().
			SyncAccountByID(gomock.Any(), "ACC001").
			Return(&domain.SyncResult{AccountID: "ACC001", Success: true}, nil)

		results, err := service.TriggerManualSync(context.Background(), "ACC001")

		assert.NoError(t, err)
		assert.Len(t, results, 1)

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})

	t.Run("Erro da passada é propagado ao chamador", func(t *testing.T) {
		syncer.EXPECT().
			SyncAll(gomock.Any()).
			Return(nil, errors.New("conexão recusada"))

		results, err := service.TriggerManualSync(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, results)
	})
}

func TestInsightSyncService_RunSyncPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(syncer)

	t.Run("Passada registra os resultados no estado do agendador", func(t *testing.T) {
		results := []*domain.SyncResult{
			{AccountID: "ACC001", Success: true},
		}

		syncer.EXPECT().
			SyncAll(gomock.Any()).
			Return(results, nil)

		service.runSyncPass(context.Background())

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, results, status["last_sync_results"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Gatilho com passada em andamento é ignorado sem chamar o orquestrador", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		service.runSyncPass(context.Background())

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})
}

// Passadas em andamento atualizam o estado consultado pelo GetStatus em outra
// goroutine; o teste exercita ambos em paralelo para o detector de corrida
func TestInsightSyncService_GetStatusDuranteSincronizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := mocks.NewMockSyncer(ctrl)
	service := newTestService(syncer)

	syncer.EXPECT().
		SyncAll(gomock.Any()).
		Return([]*domain.SyncResult{{AccountID: "ACC001", Success: true}}, nil).
		AnyTimes()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			service.runSyncPass(context.Background())
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			status := service.GetStatus()
			assert.Contains(t, status, "last_sync_results")
		}
	}()

	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestInsightSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncer := mocks.NewMockSyncer(ctrl)
	service := NewInsightSyncService(syncer, &config.Config{
		Sync: config.Sync{Enabled: false},
	})

	// desabilitado, o Start não agenda nada nem toca no orquestrador
	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
}

func TestInsightSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockSyncer(ctrl))

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 60, status["sync_interval_minutes"])
	assert.Equal(t, 30, status["sync_lookback_days"])
	assert.Equal(t, false, status["sync_running"])
}
