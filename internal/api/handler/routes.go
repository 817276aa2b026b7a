package handler

import (
	"net/http"

	"github.com/vfg2006/ad-insights-api/internal/api/handler/router"
	"github.com/vfg2006/ad-insights-api/internal/scheduler"
	"github.com/vfg2006/ad-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-insights-api/internal/usecases/linking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Accounts(service linking.Linker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/providers/:provider/connect",
			Method:  http.MethodPost,
			Handler: ConnectProvider(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DisconnectAccount(service),
		},
	}
}

func Sync(syncService *scheduler.InsightSyncService, linker linking.Linker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(syncService, linker),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: SyncStatus(syncService),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/insights/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
		{
			Path:    "/v1/accounts/:id/insights/ads",
			Method:  http.MethodGet,
			Handler: GetAdInsights(service),
		},
		{
			Path:    "/v1/logs/api-requests",
			Method:  http.MethodGet,
			Handler: ListApiRequestLogs(service),
		},
	}
}
