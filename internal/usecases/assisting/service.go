package assisting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/integrator/openai"
	"github.com/vfg2006/app-store-api/internal/domain"
)

const (
	metadataSystemPrompt = "You are an App Store AI assistant."
	chatbotSystemPrompt  = "You are a support assistant for developers publishing apps. Explain errors in simple terms and suggest how to fix them."
)

var (
	ErrMissingAppName      = errors.New("app_name é obrigatório")
	ErrMissingErrorMessage = errors.New("error_message é obrigatório")
	ErrUpstream            = errors.New("falha no provedor de IA")
)

type Assistant interface {
	GenerateMetadata(ctx context.Context, req domain.AIMetadataRequest) (*domain.AIMetadataResponse, error)
	Explain(ctx context.Context, req domain.ChatbotRequest) (*domain.ChatbotResponse, error)
}

type Service struct {
	completer openai.Completer
}

func NewService(completer openai.Completer) *Service {
	return &Service{
		completer: completer,
	}
}

// GenerateMetadata pede ao modelo descrição, tags e resumo de privacidade.
// O conteúdo gerado volta como pendente, pois ainda passa pela moderação
func (s *Service) GenerateMetadata(ctx context.Context, req domain.AIMetadataRequest) (*domain.AIMetadataResponse, error) {
	if strings.TrimSpace(req.AppName) == "" {
		return nil, ErrMissingAppName
	}

	content, err := s.completer.Complete(ctx, metadataSystemPrompt, metadataPrompt(req))
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao gerar metadados para o app %s", req.AppName)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &domain.AIMetadataResponse{
		Status:      "PENDING",
		AIGenerated: true,
		Content:     content,
	}, nil
}

func metadataPrompt(req domain.AIMetadataRequest) string {
	permissions := "none"
	if len(req.Permissions) > 0 {
		permissions = strings.Join(req.Permissions, ", ")
	}

	category := req.Category
	if category == "" {
		category = "uncategorized"
	}

	return fmt.Sprintf(
		"Generate a store description, a list of search tags and a short privacy summary for the app %q "+
			"in the category %q. It requests the following permissions: %s.",
		req.AppName, category, permissions,
	)
}

func (s *Service) Explain(ctx context.Context, req domain.ChatbotRequest) (*domain.ChatbotResponse, error) {
	if strings.TrimSpace(req.ErrorMessage) == "" {
		return nil, ErrMissingErrorMessage
	}

	reply, err := s.completer.Complete(ctx, chatbotSystemPrompt, req.ErrorMessage)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar o assistente de suporte")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &domain.ChatbotResponse{Reply: reply}, nil
}
