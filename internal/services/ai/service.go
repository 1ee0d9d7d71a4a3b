package ai

import (
	"context"

	"github.com/contentflowhq/contentflow-backend/internal/config"
	"github.com/contentflowhq/contentflow-backend/internal/models"
)

const defaultCount = 5

// Service exposes the AI proxy operations. It resolves credentials per
// caller, builds the operation prompt, calls the model once, and shapes
// the reply. Nothing is persisted.
type Service struct {
	client *Client
	keys   KeyStore
}

// NewService creates a new AI proxy service. keys may be nil, in which
// case only the shared operator key is used.
func NewService(cfg *config.AnthropicConfig, keys KeyStore) *Service {
	return &Service{
		client: NewClient(cfg),
		keys:   keys,
	}
}

// GenerateIdeas produces content ideas for a business description
func (s *Service) GenerateIdeas(ctx context.Context, userID string, req *models.GenerateIdeasRequest) ([]models.GeneratedIdea, error) {
	if req.Count <= 0 {
		req.Count = defaultCount
	}

	apiKey, err := s.resolveCredential(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, apiKey, buildIdeasPrompt(req), maxTokensDefault)
	if err != nil {
		return nil, err
	}

	return extractIdeas(raw, req), nil
}

// GenerateHooks produces opening hooks for a topic
func (s *Service) GenerateHooks(ctx context.Context, userID string, req *models.GenerateHooksRequest) ([]string, error) {
	if req.Count <= 0 {
		req.Count = defaultCount
	}

	apiKey, err := s.resolveCredential(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, apiKey, buildHooksPrompt(req), maxTokensHooks)
	if err != nil {
		return nil, err
	}

	return extractHooks(raw, req.Topic), nil
}

// GenerateOutline produces a structured outline for a topic and hook
func (s *Service) GenerateOutline(ctx context.Context, userID string, req *models.GenerateOutlineRequest) (*models.GeneratedOutline, error) {
	apiKey, err := s.resolveCredential(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, apiKey, buildOutlinePrompt(req), maxTokensDefault)
	if err != nil {
		return nil, err
	}

	return extractOutline(raw, req.Topic), nil
}

// TransformText applies an expand/condense/improve/rephrase operation.
// The model reply is returned verbatim, no JSON extraction.
func (s *Service) TransformText(ctx context.Context, userID string, req *models.TextOperationRequest) (string, error) {
	prompt, err := buildTextOperationPrompt(req)
	if err != nil {
		return "", err
	}

	apiKey, err := s.resolveCredential(userID)
	if err != nil {
		return "", err
	}

	return s.client.Complete(ctx, apiKey, prompt, maxTokensDefault)
}

// AnalyzeContent scores a piece of content for SEO, readability and tone
func (s *Service) AnalyzeContent(ctx context.Context, userID string, req *models.AnalyzeContentRequest) (*models.ContentAnalysis, error) {
	apiKey, err := s.resolveCredential(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, apiKey, buildAnalysisPrompt(req), maxTokensDefault)
	if err != nil {
		return nil, err
	}

	return extractAnalysis(raw), nil
}
