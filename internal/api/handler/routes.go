package handler

import (
	"net/http"

	"github.com/vfg2006/app-store-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-api/internal/usecases/assisting"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/app-store-api/internal/usecases/detecting"
	"github.com/vfg2006/app-store-api/internal/usecases/insighting"
	"github.com/vfg2006/app-store-api/internal/usecases/moderating"
	"github.com/vfg2006/app-store-api/internal/usecases/onboarding"
	"github.com/vfg2006/app-store-api/internal/usecases/promoting"
	"github.com/vfg2006/app-store-api/internal/usecases/publishing"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
	"github.com/vfg2006/app-store-api/internal/usecases/scanning"
	"github.com/vfg2006/app-store-api/pkg/metrics"
	"github.com/vfg2006/app-store-api/pkg/middleware"
)

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
			Public:  true,
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
			Public:  true,
		},
	}
}

func Authentication(service authenticating.Authenticator, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
			Public:  true,
		},
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
			Public:  true,
		},
		{
			Path:    "/v1/auth/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:        "/v1/admin/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
	}
}

func Listings(
	publisher publishing.Publisher,
	feed ranking.RankingService,
	authorizer authenticating.Authorizer,
	maxUploadBytes int64,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/apps",
			Method:  http.MethodGet,
			Handler: GetStoreFeed(feed),
			Public:  true,
		},
		{
			Path:    "/v1/apps",
			Method:  http.MethodPost,
			Handler: SubmitListing(publisher, maxUploadBytes),
		},
		{
			Path:    "/v1/apps/:id",
			Method:  http.MethodGet,
			Handler: GetListing(publisher),
			Public:  true,
		},
		{
			Path:    "/v1/apps/:id",
			Method:  http.MethodPut,
			Handler: UpdateListing(publisher, authorizer),
		},
		{
			Path:    "/v1/apps/:id",
			Method:  http.MethodDelete,
			Handler: DeleteListing(publisher, authorizer),
		},
		{
			Path:    "/v1/apps/:id/download",
			Method:  http.MethodPost,
			Handler: RegisterDownload(publisher),
			Public:  true,
		},
		{
			Path:    "/v1/developers/:id/apps",
			Method:  http.MethodGet,
			Handler: ListDeveloperListings(publisher, authorizer),
		},
	}
}

func Admin(moderator moderating.Moderator, stats insighting.StatsProvider, authorizer authenticating.Authorizer) []router.Route {
	adminOnly := []router.Middleware{middleware.AdminOnly(authorizer)}

	return []router.Route{
		{
			Path:        "/v1/admin/apps",
			Method:      http.MethodGet,
			Handler:     ListListingsByStatus(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/publish",
			Method:      http.MethodPost,
			Handler:     PublishListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/unpublish",
			Method:      http.MethodPost,
			Handler:     UnpublishListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/promote",
			Method:      http.MethodPost,
			Handler:     PromoteListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/apps/:id/unpromote",
			Method:      http.MethodPost,
			Handler:     UnpromoteListing(moderator),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/stats",
			Method:      http.MethodGet,
			Handler:     GetAdminStats(stats),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/admin/dashboard",
			Method:      http.MethodGet,
			Handler:     GetAdminDashboard(stats),
			Middlewares: adminOnly,
		},
	}
}

func Promotions(service promoting.CampaignManager, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/promotions",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:        "/v1/admin/promotions/:id/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleCampaign(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:    "/v1/promotions",
			Method:  http.MethodGet,
			Handler: ListActiveCampaigns(service),
			Public:  true,
		},
		{
			Path:    "/v1/apps/:id/promotions",
			Method:  http.MethodGet,
			Handler: ListAppCampaigns(service),
		},
	}
}

func Developers(service onboarding.Onboarder, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/developers",
			Method:  http.MethodPost,
			Handler: RegisterDeveloper(service),
		},
		{
			Path:        "/v1/admin/developers",
			Method:      http.MethodGet,
			Handler:     ListDevelopers(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:        "/v1/admin/developers/:id/status",
			Method:      http.MethodPost,
			Handler:     UpdateDeveloperStatus(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
	}
}

// AI limita as chamadas por usuário, cada chamada custa uma requisição ao provedor
func AI(service assisting.Assistant, limiter *middleware.RateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ai/metadata",
			Method:      http.MethodPost,
			Handler:     GenerateMetadata(service),
			Middlewares: []router.Middleware{limiter.Handler("/v1/ai/metadata")},
		},
		{
			Path:        "/v1/ai/chatbot",
			Method:      http.MethodPost,
			Handler:     SupportChatbot(service),
			Middlewares: []router.Middleware{limiter.Handler("/v1/ai/chatbot")},
		},
	}
}

func Security(scanner scanning.Scanner, detector detecting.CloneDetector, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/security/virus-scan",
			Method:  http.MethodPost,
			Handler: SubmitVirusScan(scanner),
		},
		{
			Path:    "/v1/security/virus-scan/:id",
			Method:  http.MethodGet,
			Handler: GetVirusScan(scanner),
		},
		{
			Path:    "/v1/security/clone-check",
			Method:  http.MethodPost,
			Handler: CloneCheck(detector),
		},
		{
			Path:        "/v1/admin/security-log",
			Method:      http.MethodPost,
			Handler:     LogSecurityEvent(scanner),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:        "/v1/admin/security-log",
			Method:      http.MethodGet,
			Handler:     ListSecurityEvents(scanner),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
	}
}

func Insights(service insighting.SnapshotRecorder, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/insights",
			Method:      http.MethodGet,
			Handler:     GetLatestInsight(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:        "/v1/admin/insights",
			Method:      http.MethodPost,
			Handler:     RecordInsight(service),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
	}
}

func CronJobs(services CronJobServices, authorizer authenticating.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []router.Middleware{middleware.AdminOnly(authorizer)},
		},
	}
}
