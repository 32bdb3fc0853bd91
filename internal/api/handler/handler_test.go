package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-store-api/internal/api/handler/router"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/pkg/apiErrors"
	"github.com/vfg2006/app-store-api/pkg/log"
	"github.com/vfg2006/app-store-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

// serve executa a requisição pelo router real, com as claims já no contexto quando informadas
func serve(t *testing.T, routes []router.Route, method, target string, body io.Reader, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()
	return serveWithContentType(t, routes, method, target, body, "application/json", claims)
}

func serveWithContentType(t *testing.T, routes []router.Route, method, target string, body io.Reader, contentType string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// multipartBody monta um formulário com um arquivo e os campos informados
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func userClaims(id int) *domain.Claims {
	return &domain.Claims{UserID: id, UserRole: domain.RoleUser}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}
}
