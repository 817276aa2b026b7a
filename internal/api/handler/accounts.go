package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-insights-api/infrastructure/integrator"
	"github.com/vfg2006/ad-insights-api/internal/domain"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
	"github.com/vfg2006/ad-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ad-insights-api/pkg/middleware"
)

type ConnectProviderRequest struct {
	Code string `json:"code"`
}

// ConnectProvider completa o fluxo OAuth de um provider e vincula as contas
// de anunciante autorizadas ao usuário logado
func ConnectProvider(service linking.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		provider := domain.Provider(params.ByName("provider"))
		if !provider.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, "Provider não suportado", map[string]string{
				"provider": provider.String(),
			})
			return
		}

		var req ConnectProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização é obrigatório", nil)
			return
		}

		accounts, err := service.ObtainToken(r.Context(), provider, req.Code, claims.UserID)
		if err != nil {
			handleLinkingError(w, err)
			return
		}

		responses := make([]*domain.LinkedAccountResponse, 0, len(accounts))
		for _, account := range accounts {
			responses = append(responses, account.ToResponse())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": responses,
		})
	}
}

// ListAccounts lista as contas vinculadas do usuário logado, sem os tokens
func ListAccounts(service linking.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accounts, err := service.GetUserAccounts(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas vinculadas", nil)
			return
		}

		responses := make([]*domain.LinkedAccountResponse, 0, len(accounts))
		for _, account := range accounts {
			responses = append(responses, account.ToResponse())
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": responses,
		})
	}
}

// DisconnectAccount remove a conta vinculada e, em cascata, seus insights
func DisconnectAccount(service linking.Linker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")

		if err := service.Disconnect(claims.UserID, accountID); err != nil {
			handleLinkingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleLinkingError converte erros de vinculação na resposta padronizada
func handleLinkingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, linking.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta vinculada não encontrada", nil)
	case errors.Is(err, integrator.ErrUnknownProvider):
		apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, "Provider não suportado", nil)
	case errors.Is(err, integrator.ErrTokenRefreshUnsupported):
		apiErrors.WriteError(w, apiErrors.ErrReauthRequired, "Conta precisa ser reautorizada", nil)
	case errors.Is(err, integrator.ErrAuthorization):
		apiErrors.WriteError(w, apiErrors.ErrProviderAuthFailed, "Provider rejeitou a autorização", nil)
	case errors.Is(err, integrator.ErrProviderRequest):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro na comunicação com o provider", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
