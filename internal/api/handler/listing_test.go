package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-api/internal/domain"
	authmocks "github.com/vfg2006/app-store-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/app-store-api/internal/usecases/publishing"
	publishingmocks "github.com/vfg2006/app-store-api/internal/usecases/publishing/mocks"
	"github.com/vfg2006/app-store-api/internal/usecases/ranking"
	rankingmocks "github.com/vfg2006/app-store-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type listingMocks struct {
	publisher  *publishingmocks.MockPublisher
	feed       *rankingmocks.MockRankingService
	authorizer *authmocks.MockAuthorizer
}

func newListingMocks(t *testing.T) listingMocks {
	ctrl := gomock.NewController(t)
	return listingMocks{
		publisher:  publishingmocks.NewMockPublisher(ctrl),
		feed:       rankingmocks.NewMockRankingService(ctrl),
		authorizer: authmocks.NewMockAuthorizer(ctrl),
	}
}

func (m listingMocks) routes() []router.Route {
	return Listings(m.publisher, m.feed, m.authorizer, 10<<20)
}

func TestGetStoreFeed(t *testing.T) {
	rank := 2
	expiresAt := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	t.Run("devolve a vitrine na ordem do ranking", func(t *testing.T) {
		m := newListingMocks(t)
		m.feed.EXPECT().GetStoreFeed(gomock.Any()).Return([]domain.ListingSummary{
			{ID: "destaque", Promoted: true, PromotionRank: &rank, PromotionExpiresAt: &expiresAt, Published: true},
			{ID: "recente", Published: true},
		}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/apps", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		feed := decodeResponse[[]domain.ListingSummary](t, rec)
		require.Len(t, feed, 2)
		assert.Equal(t, "destaque", feed[0].ID)
		assert.True(t, feed[0].Promoted)
		assert.Equal(t, "recente", feed[1].ID)
		assert.False(t, feed[1].Promoted)
	})

	t.Run("dados inconsistentes viram erro interno", func(t *testing.T) {
		m := newListingMocks(t)
		m.feed.EXPECT().GetStoreFeed(gomock.Any()).Return(nil, ranking.ErrInvalidInput)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/apps", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
	})
}

func TestGetListing(t *testing.T) {
	t.Run("encontrado", func(t *testing.T) {
		m := newListingMocks(t)
		m.publisher.EXPECT().Get(gomock.Any(), "abc123").Return(&domain.Listing{ID: "abc123", Name: "Meu App"}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/apps/abc123", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Meu App", decodeResponse[domain.Listing](t, rec).Name)
	})

	t.Run("inexistente", func(t *testing.T) {
		m := newListingMocks(t)
		m.publisher.EXPECT().Get(gomock.Any(), "nada").
			Return(nil, publishing.NewListingError(publishing.ErrListingNotFound, apiErrors.ErrListingNotFound, "nada"))

		rec := serve(t, m.routes(), http.MethodGet, "/v1/apps/nada", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrListingNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("falha no banco não expõe detalhes", func(t *testing.T) {
		m := newListingMocks(t)
		m.publisher.EXPECT().Get(gomock.Any(), "abc123").
			Return(nil, publishing.NewListingError(errors.New("pq: connection refused"), apiErrors.ErrDatabaseOperation, ""))

		rec := serve(t, m.routes(), http.MethodGet, "/v1/apps/abc123", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestSubmitListing(t *testing.T) {
	t.Run("envia o arquivo e os metadados", func(t *testing.T) {
		m := newListingMocks(t)
		m.publisher.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.SubmitListingRequest) (*domain.Listing, error) {
				assert.Equal(t, 7, req.OwnerID)
				assert.Equal(t, "Meu App", req.Name)
				assert.Equal(t, "com.exemplo.app", req.PackageID)
				assert.Equal(t, "meu-app.apk", req.FileName)
				assert.Equal(t, int64(4), req.Size)

				content, err := io.ReadAll(req.File)
				require.NoError(t, err)
				assert.Equal(t, "PK\x03\x04", string(content))

				return &domain.Listing{ID: "novo", Status: domain.ListingStatusPending}, nil
			})

		body, contentType := multipartBody(t, map[string]string{
			"name":       "Meu App",
			"package_id": "com.exemplo.app",
			"category":   "tools",
		}, "file", "meu-app.apk", []byte("PK\x03\x04"))

		rec := serveWithContentType(t, m.routes(), http.MethodPost, "/v1/apps", body, contentType, userClaims(7))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.ListingStatusPending, decodeResponse[domain.Listing](t, rec).Status)
	})

	t.Run("sem arquivo", func(t *testing.T) {
		m := newListingMocks(t)

		body, contentType := multipartBody(t, map[string]string{"name": "Meu App"}, "", "", nil)

		rec := serveWithContentType(t, m.routes(), http.MethodPost, "/v1/apps", body, contentType, userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("extensão recusada", func(t *testing.T) {
		m := newListingMocks(t)
		m.publisher.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, publishing.NewListingError(publishing.ErrInvalidFile, apiErrors.ErrInvalidFile, "Apenas arquivos .apk ou .aab são aceitos"))

		body, contentType := multipartBody(t, map[string]string{"name": "x", "package_id": "y"}, "file", "virus.exe", []byte("MZ"))

		rec := serveWithContentType(t, m.routes(), http.MethodPost, "/v1/apps", body, contentType, userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFile, decodeAPIError(t, rec).Code)
	})

	t.Run("sem usuário no contexto", func(t *testing.T) {
		m := newListingMocks(t)

		body, contentType := multipartBody(t, nil, "file", "a.apk", []byte("x"))

		rec := serveWithContentType(t, m.routes(), http.MethodPost, "/v1/apps", body, contentType, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateListing(t *testing.T) {
	t.Run("desenvolvedor edita o próprio app", func(t *testing.T) {
		m := newListingMocks(t)
		name := "Novo nome"

		m.authorizer.EXPECT().CurrentRole(gomock.Any(), 7).Return(domain.RoleDeveloper, nil)
		m.publisher.EXPECT().
			Update(gomock.Any(), domain.Actor{UserID: 7}, "abc123", domain.UpdateListingRequest{Name: &name}).
			Return(&domain.Listing{ID: "abc123", Name: name, Status: domain.ListingStatusPending}, nil)

		rec := serve(t, m.routes(), http.MethodPut, "/v1/apps/abc123", jsonBody(`{"name":"Novo nome"}`), userClaims(7))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.ListingStatusPending, decodeResponse[domain.Listing](t, rec).Status)
	})

	t.Run("app de outro desenvolvedor", func(t *testing.T) {
		m := newListingMocks(t)

		m.authorizer.EXPECT().CurrentRole(gomock.Any(), 8).Return(domain.RoleUser, nil)
		m.publisher.EXPECT().Update(gomock.Any(), domain.Actor{UserID: 8}, "abc123", gomock.Any()).
			Return(nil, publishing.NewListingError(publishing.ErrNotOwner, apiErrors.ErrInsufficientPrivilege, ""))

		rec := serve(t, m.routes(), http.MethodPut, "/v1/apps/abc123", jsonBody(`{"category":"games"}`), userClaims(8))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		m := newListingMocks(t)
		m.authorizer.EXPECT().CurrentRole(gomock.Any(), 7).Return(domain.RoleDeveloper, nil)

		rec := serve(t, m.routes(), http.MethodPut, "/v1/apps/abc123", jsonBody(`{"name":123}`), userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteListing_AsAdmin(t *testing.T) {
	m := newListingMocks(t)

	m.authorizer.EXPECT().CurrentRole(gomock.Any(), 1).Return(domain.RoleAdmin, nil)
	m.publisher.EXPECT().Delete(gomock.Any(), domain.Actor{UserID: 1, IsAdmin: true}, "abc123").Return(nil)

	rec := serve(t, m.routes(), http.MethodDelete, "/v1/apps/abc123", nil, adminClaims())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDownload(t *testing.T) {
	m := newListingMocks(t)
	m.publisher.EXPECT().RegisterDownload(gomock.Any(), "abc123").Return("http://files/apps/uploads/a.apk", nil)

	rec := serve(t, m.routes(), http.MethodPost, "/v1/apps/abc123/download", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://files/apps/uploads/a.apk", decodeResponse[map[string]string](t, rec)["file_url"])
}

func TestListDeveloperListings(t *testing.T) {
	t.Run("id inválido", func(t *testing.T) {
		m := newListingMocks(t)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/developers/abc/apps", nil, userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("próprio desenvolvedor", func(t *testing.T) {
		m := newListingMocks(t)
		m.authorizer.EXPECT().CurrentRole(gomock.Any(), 7).Return(domain.RoleDeveloper, nil)
		m.publisher.EXPECT().ListByDeveloper(gomock.Any(), domain.Actor{UserID: 7}, 7).
			Return([]domain.Listing{{ID: "a"}, {ID: "b"}}, nil)

		rec := serve(t, m.routes(), http.MethodGet, "/v1/developers/7/apps", nil, userClaims(7))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeResponse[[]domain.Listing](t, rec), 2)
	})

	t.Run("perfil indisponível", func(t *testing.T) {
		m := newListingMocks(t)
		m.authorizer.EXPECT().CurrentRole(gomock.Any(), 7).Return(domain.Role(""), errors.New("timeout"))

		rec := serve(t, m.routes(), http.MethodGet, "/v1/developers/7/apps", nil, userClaims(7))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
