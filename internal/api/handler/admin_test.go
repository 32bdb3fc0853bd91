package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	insightmocks "github.com/vfg2006/app-store-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/app-store-api/internal/usecases/moderating"
	moderatingmocks "github.com/vfg2006/app-store-api/internal/usecases/moderating/mocks"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	moderator  *moderatingmocks.MockModerator
	stats      *insightmocks.MockStatsProvider
	authorizer *authmocks.MockAuthorizer
}

func newAdminMocks(t *testing.T) adminMocks {
	ctrl := gomock.NewController(t)
	return adminMocks{
		moderator:  moderatingmocks.NewMockModerator(ctrl),
		stats:      insightmocks.NewMockStatsProvider(ctrl),
		authorizer: authmocks.NewMockAuthorizer(ctrl),
	}
}

func (m adminMocks) routes() []router.Route {
	return Admin(m.moderator, m.stats, m.authorizer)
}

func (m adminMocks) allowAdmin() {
	m.authorizer.EXPECT().RequireAdmin(gomock.Any(), 1).Return(nil)
}

func TestPromoteListing(t *testing.T) {
	expiresAt := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		setupMock    func(m adminMocks)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "promove por sete dias com rank 2",
			body: `{"days":7,"rank":2}`,
			setupMock: func(m adminMocks) {
				m.moderator.EXPECT().Promote(gomock.Any(), "abc", 7, 2).Return(expiresAt, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "dias inválidos",
			body: `{"days":0,"rank":2}`,
			setupMock: func(m adminMocks) {
				m.moderator.EXPECT().Promote(gomock.Any(), "abc", 0, 2).Return(time.Time{}, moderating.ErrInvalidDays)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
		{
			name: "rank negativo",
			body: `{"days":3,"rank":-1}`,
			setupMock: func(m adminMocks) {
				m.moderator.EXPECT().Promote(gomock.Any(), "abc", 3, -1).Return(time.Time{}, moderating.ErrInvalidRank)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
		{
			name: "app inexistente",
			body: `{"days":3,"rank":0}`,
			setupMock: func(m adminMocks) {
				m.moderator.EXPECT().Promote(gomock.Any(), "abc", 3, 0).Return(time.Time{}, moderating.ErrListingNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrListingNotFound,
		},
		{
			name:         "corpo inválido",
			body:         `{"days":"sete"}`,
			setupMock:    func(m adminMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAdminMocks(t)
			m.allowAdmin()
			tt.setupMock(m)

			rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/promote", jsonBody(tt.body), adminClaims())

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, rec).Code)
				return
			}

			resp := decodeResponse[map[string]any](t, rec)
			assert.Equal(t, "abc", resp["id"])
			assert.Equal(t, true, resp["promoted"])
			assert.Equal(t, float64(2), resp["promotion_rank"])
			assert.Equal(t, expiresAt.Format(time.RFC3339), resp["promotion_expires_at"])
		})
	}
}

func TestPromoteListing_RequiresAdmin(t *testing.T) {
	m := newAdminMocks(t)
	m.authorizer.EXPECT().RequireAdmin(gomock.Any(), 7).
		Return(authenticating.NewUserAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, 7, ""))

	rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/promote", jsonBody(`{"days":7}`), userClaims(7))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
}

func TestUnpromoteListing(t *testing.T) {
	m := newAdminMocks(t)
	m.allowAdmin()
	m.moderator.EXPECT().Unpromote(gomock.Any(), "abc").Return(nil)

	rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/unpromote", nil, adminClaims())

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse[map[string]any](t, rec)
	assert.Equal(t, false, resp["promoted"])
}

func TestModerationActions(t *testing.T) {
	t.Run("aprovar", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().Approve(gomock.Any(), "abc").Return(nil)

		rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/approve", nil, adminClaims())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejeitar com motivo", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().Reject(gomock.Any(), "abc", "Ícone com marca de terceiros").Return(nil)

		rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/reject",
			jsonBody(`{"reason":"Ícone com marca de terceiros"}`), adminClaims())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejeitar sem motivo", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().Reject(gomock.Any(), "abc", "").Return(moderating.ErrMissingReason)

		rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/reject", nil, adminClaims())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("despublicar app inexistente", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().Unpublish(gomock.Any(), "nada").Return(moderating.ErrListingNotFound)

		rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/nada/unpublish", nil, adminClaims())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("publicar", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().Publish(gomock.Any(), "abc").Return(nil)

		rec := serve(t, m.routes(), http.MethodPost, "/v1/admin/apps/abc/publish", nil, adminClaims())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListListingsByStatus(t *testing.T) {
	t.Run("status inválido", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/apps?status=deleted", nil, adminClaims())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filtra por pendentes", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()

		pending := domain.ListingStatusPending
		m.moderator.EXPECT().ListByStatus(gomock.Any(), &pending).
			Return([]domain.ListingSummary{{ID: "a"}}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/apps?status=pending", nil, adminClaims())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeResponse[[]domain.ListingSummary](t, rec), 1)
	})

	t.Run("sem filtro", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.moderator.EXPECT().ListByStatus(gomock.Any(), gomock.Nil()).Return(nil, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/apps", nil, adminClaims())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminStatsAndDashboard(t *testing.T) {
	t.Run("estatísticas", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.stats.EXPECT().Stats(gomock.Any()).Return(&domain.AdminStats{Users: 10, Apps: 4}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/stats", nil, adminClaims())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.AdminStats{Users: 10, Apps: 4}, decodeResponse[domain.AdminStats](t, rec))
	})

	t.Run("painel com falha no banco", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.stats.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("timeout"))

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/dashboard", nil, adminClaims())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})

	t.Run("painel", func(t *testing.T) {
		m := newAdminMocks(t)
		m.allowAdmin()
		m.stats.EXPECT().Dashboard(gomock.Any()).Return([]domain.ListingSummary{{ID: "a"}, {ID: "b"}}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/admin/dashboard", nil, adminClaims())

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse[map[string][]domain.ListingSummary](t, rec)
		assert.Len(t, resp["latest_apps"], 2)
	})
}
