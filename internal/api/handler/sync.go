package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/internal/scheduler"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
	"github.com/vfg2006/ad-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ad-insights-api/pkg/middleware"
)

type TriggerSyncRequest struct {
	AccountID string `json:"account_id"`
}

// TriggerSync dispara uma sincronização manual. Com account_id no corpo, a
// passada cobre apenas aquela conta do usuário; sem, todas as contas. O
// resultado traz o desfecho por conta para o chamador repetir só as falhas
func TriggerSync(syncService *scheduler.InsightSyncService, linker linking.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req TriggerSyncRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		}

		if req.AccountID != "" {
			// validar a posse da conta antes de sincronizar
			if _, err := linker.GetAccount(claims.UserID, req.AccountID); err != nil {
				handleLinkingError(w, err)
				return
			}
		}

		results, err := syncService.TriggerManualSync(r.Context(), req.AccountID)
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrSyncAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sincronização já em andamento", nil)
			case errors.Is(err, linking.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta vinculada não encontrada", nil)
			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro na passada de sincronização", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"results": results,
		})
	}
}

// SyncStatus retorna o estado atual do agendador de sincronização
func SyncStatus(syncService *scheduler.InsightSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(syncService.GetStatus())
	}
}
