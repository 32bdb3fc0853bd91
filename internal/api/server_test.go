package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/api/handler"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	rankingmocks "github.com/vfg2006/app-store-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/app-store-api/pkg/log"
	"github.com/vfg2006/app-store-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestServer(t *testing.T, authenticator *authmocks.MockAuthenticator, feed *rankingmocks.MockRankingService) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		Upload: config.Upload{MaxUploadMB: 1},
	}

	srv, err := New(
		cfg,
		Services{Authenticator: authenticator, Feed: feed},
		handler.CronJobServices{},
		middleware.NewRateLimiter(1, 1),
		map[string]handler.Pinger{},
	)
	require.NoError(t, err)

	return srv.Handler()
}

func TestServer_PublicFeedWithCors(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := rankingmocks.NewMockRankingService(ctrl)
	feed.EXPECT().GetStoreFeed(gomock.Any()).Return([]domain.ListingSummary{{ID: "a"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/apps", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	newTestServer(t, authmocks.NewMockAuthenticator(ctrl), feed).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderCorrelationID))
}

func TestServer_ProtectedRouteWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	newTestServer(t, authmocks.NewMockAuthenticator(ctrl), rankingmocks.NewMockRankingService(ctrl)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ValidTokenReachesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)

	authenticator.EXPECT().ValidateToken("jwt-token").Return(&domain.Claims{UserID: 7, UserRole: domain.RoleUser}, nil)
	authenticator.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer jwt-token")
	rec := httptest.NewRecorder()

	newTestServer(t, authenticator, rankingmocks.NewMockRankingService(ctrl)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
