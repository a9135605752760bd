package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/account"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/campaigning"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/detecting"
	"github.com/vfg2006/marketing-copilot-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(service detecting.InsightReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights",
			Method:      http.MethodGet,
			Handler:     ListInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/:id/dismiss",
			Method:      http.MethodPost,
			Handler:     DismissInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/sync",
			Method:      http.MethodGet,
			Handler:     SyncAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     CampaignList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns/:campaignId/metrics",
			Method:      http.MethodGet,
			Handler:     CampaignMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns/:campaignId/pause",
			Method:      http.MethodPost,
			Handler:     PauseCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
