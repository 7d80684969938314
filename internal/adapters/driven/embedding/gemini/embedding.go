// Package gemini provides an embedding service adapter using the Google
// Gemini REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL          = "https://generativelanguage.googleapis.com/v1beta"
	DefaultEmbeddingModel   = "text-embedding-004"
	DefaultEmbeddingDims    = 768
	DefaultEmbeddingTimeout = 60 * time.Second

	// ProactiveRate throttles embedding requests below the free-tier
	// quota.
	ProactiveRate = 1.0

	// maxBatchSize is the API's per-request limit for batch embedding.
	maxBatchSize = 100
)

// Config holds configuration for the Gemini embedding service.
type Config struct {
	// APIKey is the Google AI Studio API key. Required.
	APIKey string

	// BaseURL is the API base URL (default: the public Gemini endpoint).
	BaseURL string

	// Model is the embedding model to use (default: text-embedding-004).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// EmbeddingService generates embeddings using the Gemini API.
type EmbeddingService struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
	limiter *rate.Limiter
}

type embedContent struct {
	Parts []embedPart `json:"parts"`
}

type embedPart struct {
	Text string `json:"text"`
}

// embedContentRequest is the :embedContent request format.
type embedContentRequest struct {
	Model   string       `json:"model"`
	Content embedContent `json:"content"`
}

// embedContentResponse is the :embedContent response format.
type embedContentResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

// batchEmbedRequest is the :batchEmbedContents request format.
type batchEmbedRequest struct {
	Requests []embedContentRequest `json:"requests"`
}

// batchEmbedResponse is the :batchEmbedContents response format.
type batchEmbedResponse struct {
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
}

// NewEmbeddingService creates a new Gemini embedding service.
func NewEmbeddingService(cfg Config) *EmbeddingService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultEmbeddingModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultEmbeddingTimeout
	}

	return &EmbeddingService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := embedContentRequest{
		Model:   "models/" + s.model,
		Content: embedContent{Parts: []embedPart{{Text: text}}},
	}
	url := fmt.Sprintf("%s/models/%s:embedContent", s.baseURL, s.model)

	var embResp embedContentResponse
	if err := s.post(ctx, url, reqBody, &embResp); err != nil {
		return nil, err
	}
	if len(embResp.Embedding.Values) == 0 {
		return nil, domain.ErrEmbeddingUnavailable
	}
	return embResp.Embedding.Values, nil
}

// EmbedBatch generates embeddings for multiple texts, splitting the
// input into API-sized batches.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		reqBody := batchEmbedRequest{}
		for _, text := range texts[start:end] {
			reqBody.Requests = append(reqBody.Requests, embedContentRequest{
				Model:   "models/" + s.model,
				Content: embedContent{Parts: []embedPart{{Text: text}}},
			})
		}
		url := fmt.Sprintf("%s/models/%s:batchEmbedContents", s.baseURL, s.model)

		var batchResp batchEmbedResponse
		if err := s.post(ctx, url, reqBody, &batchResp); err != nil {
			return nil, err
		}
		if len(batchResp.Embeddings) != end-start {
			return nil, fmt.Errorf("gemini: expected %d embeddings, got %d", end-start, len(batchResp.Embeddings))
		}
		for _, emb := range batchResp.Embeddings {
			out = append(out, emb.Values)
		}
	}
	return out, nil
}

// post sends a JSON request and decodes the JSON response.
func (s *EmbeddingService) post(ctx context.Context, url string, reqBody, respBody any) error {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("gemini error (status %d): failed to read response", resp.StatusCode)
		}
		return fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return DefaultEmbeddingDims
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}

// Ping validates the API key and connectivity with a minimal embedding
// request.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	if _, err := s.Embed(ctx, "ping"); err != nil {
		return fmt.Errorf("gemini: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
