package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ad-insights-api/pkg/middleware"
	"github.com/vfg2006/ad-insights-api/pkg/utils"
)

const (
	defaultRangeDays = 30
	defaultLogLimit  = 100
)

// GetCampaignInsights lista os insights de campanha da conta no período
// informado via start_date/end_date (padrão: últimos 30 dias)
func GetCampaignInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")

		startDate, endDate, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		insights, err := service.GetCampaignInsights(claims.UserID, accountID, startDate, endDate)
		if err != nil {
			handleLinkingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"insights": insights,
		})
	}
}

// GetAdInsights lista os insights de anúncio da conta no período informado
func GetAdInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")

		startDate, endDate, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Datas inválidas; use o formato YYYY-MM-DD", nil)
			return
		}

		insights, err := service.GetAdInsights(claims.UserID, accountID, startDate, endDate)
		if err != nil {
			handleLinkingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"insights": insights,
		})
	}
}

// ListApiRequestLogs lista o audit log das chamadas aos providers; aceita
// account_id e limit como query params
func ListApiRequestLogs(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accountID := r.URL.Query().Get("account_id")

		limit := uint64(defaultLogLimit)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.ListApiRequestLogs(claims.UserID, accountID, limit)
		if err != nil {
			logrus.Error(err)
			handleLinkingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"logs": entries,
		})
	}
}

func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	endDate := utils.Midnight(time.Now())
	startDate := endDate.AddDate(0, 0, -defaultRangeDays)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = *parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = *parsed
	}

	return startDate, endDate, nil
}
