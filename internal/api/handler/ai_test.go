package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/assisting"
	assistingmocks "github.com/vfg2006/app-store-api/internal/usecases/assisting/mocks"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestGenerateMetadata(t *testing.T) {
	t.Run("conteúdo gerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := assistingmocks.NewMockAssistant(ctrl)

		service.EXPECT().GenerateMetadata(gomock.Any(), domain.AIMetadataRequest{
			AppName:     "Lanterna",
			Category:    "tools",
			Permissions: []string{"CAMERA"},
		}).Return(&domain.AIMetadataResponse{
			Status:      domain.ListingStatusPending,
			AIGenerated: true,
			Content:     "Uma lanterna simples.",
		}, nil)

		rec := serve(t, AI(service, middleware.NewRateLimiter(10, 10)), http.MethodPost, "/v1/ai/metadata",
			jsonBody(`{"app_name":"Lanterna","category":"tools","permissions":["CAMERA"]}`), userClaims(7))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse[domain.AIMetadataResponse](t, rec)
		assert.True(t, resp.AIGenerated)
		assert.Equal(t, domain.ListingStatusPending, resp.Status)
	})

	t.Run("sem nome do app", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := assistingmocks.NewMockAssistant(ctrl)

		service.EXPECT().GenerateMetadata(gomock.Any(), gomock.Any()).Return(nil, assisting.ErrMissingAppName)

		rec := serve(t, AI(service, middleware.NewRateLimiter(10, 10)), http.MethodPost, "/v1/ai/metadata", jsonBody(`{}`), userClaims(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("falha no provedor não vaza detalhes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := assistingmocks.NewMockAssistant(ctrl)

		service.EXPECT().GenerateMetadata(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: %v", assisting.ErrUpstream, "status 401: invalid api key sk-123"))

		rec := serve(t, AI(service, middleware.NewRateLimiter(10, 10)), http.MethodPost, "/v1/ai/metadata",
			jsonBody(`{"app_name":"Lanterna"}`), userClaims(7))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
		assert.NotContains(t, rec.Body.String(), "sk-123")
	})
}

func TestSupportChatbot_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := assistingmocks.NewMockAssistant(ctrl)

	service.EXPECT().Explain(gomock.Any(), domain.ChatbotRequest{ErrorMessage: "INSTALL_FAILED_NO_MATCHING_ABIS"}).
		Return(&domain.ChatbotResponse{Reply: "O APK não tem binários para a arquitetura do aparelho."}, nil).
		Times(1)

	routes := AI(service, middleware.NewRateLimiter(0.001, 1))
	body := `{"error_message":"INSTALL_FAILED_NO_MATCHING_ABIS"}`

	first := serve(t, routes, http.MethodPost, "/v1/ai/chatbot", jsonBody(body), userClaims(7))
	require.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, decodeResponse[domain.ChatbotResponse](t, first).Reply)

	second := serve(t, routes, http.MethodPost, "/v1/ai/chatbot", jsonBody(body), userClaims(7))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, apiErrors.ErrTooManyRequests, decodeAPIError(t, second).Code)
}
