package virustotal

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
)

var (
	ErrNotConfigured   = errors.New("integração com VirusTotal não configurada")
	ErrMissingAnalysis = errors.New("resposta do VirusTotal sem identificador de análise")
)

type Scanner interface {
	SubmitURL(ctx context.Context, fileURL string) (string, error)
	GetAnalysis(ctx context.Context, analysisID string) (*domain.ScanAnalysis, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.VirusTotal) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// SubmitURL envia a URL do arquivo para análise e devolve o identificador da análise
func (c *Client) SubmitURL(ctx context.Context, fileURL string) (string, error) {
	form := url.Values{}
	form.Set("url", fileURL)

	body, err := c.do(ctx, http.MethodPost, "/urls", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return "", err
	}

	analysisID := gjson.GetBytes(body, "data.id").String()
	if analysisID == "" {
		return "", ErrMissingAnalysis
	}

	return analysisID, nil
}

func (c *Client) GetAnalysis(ctx context.Context, analysisID string) (*domain.ScanAnalysis, error) {
	body, err := c.do(ctx, http.MethodGet, "/analyses/"+url.PathEscape(analysisID), nil, "")
	if err != nil {
		return nil, err
	}

	attributes := gjson.GetBytes(body, "data.attributes")

	return &domain.ScanAnalysis{
		Status:     attributes.Get("status").String(),
		Malicious:  int(attributes.Get("stats.malicious").Int()),
		Suspicious: int(attributes.Get("stats.suspicious").Int()),
		Harmless:   int(attributes.Get("stats.harmless").Int()),
		Undetected: int(attributes.Get("stats.undetected").Int()),
	}, nil
}

func (c *Client) do(ctx context.Context, method, resource string, payload io.Reader, contentType string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, gjson.GetBytes(body, "error.message").String())
	}

	return body, nil
}
