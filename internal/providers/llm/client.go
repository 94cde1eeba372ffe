package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
)

// Config holds the chat completion endpoint and sampling settings
type Config struct {
	BaseURL       string
	APIKey        string
	AnalysisModel string
	RiskModel     string
	MaxTokens     int
	Temperature   float64
	TopP          float64
}

// Client generates wallet narratives with an OpenAI compatible chat completion API
//
//go:generate mockgen -source=client.go -destination=../../mocks/llm_client.go -package=mocks -mock_names=Client=MockLLMClient
type Client interface {
	// GenerateWalletInsights summarizes the reputation of an analyzed wallet
	GenerateWalletInsights(ctx context.Context, wallet domain.WalletSnapshot) (*domain.WalletInsights, error)

	// AssessWalletRisk scores the security risk of an analyzed wallet
	AssessWalletRisk(ctx context.Context, wallet domain.WalletSnapshot) (*domain.RiskAssessment, error)
}

// ChatMessage is one message of a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body of POST {base_url}/chat/completions
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

// ChatCompletionResponse is the subset of the completion answer that is read
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

type client struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewClient creates a new chat completion client
func NewClient(cfg Config, httpClient adapter.HTTPClient, json adapter.JSON) Client {
	return &client{
		config:     cfg,
		httpClient: httpClient,
		json:       json,
	}
}

func (c *client) GenerateWalletInsights(ctx context.Context, wallet domain.WalletSnapshot) (*domain.WalletInsights, error) {
	m := wallet.Metrics
	prompt := fmt.Sprintf(`You are a blockchain analyst. Analyze this Solana wallet:

Wallet: %s
Reputation Score: %g/1000
Transactions: %d
Volume: %g SOL
Wallet Age: %d days
Activity Frequency: %g tx/day
Contract Interactions: %d
Unique Programs: %d

Provide analysis in JSON format:
{
  "summary": "2-3 sentence overview",
  "strengths": ["strength 1", "strength 2"],
  "improvements": ["improvement 1", "improvement 2"],
  "risk_level": "Low/Medium/High",
  "confidence": 0.85,
  "recommendation": "actionable recommendation",
  "wallet_type": "DeFi Trader/NFT Collector/HODLer/etc"
}`, wallet.WalletAddress, wallet.ReputationScore, m.TransactionCount, m.TotalVolume,
		m.WalletAgeDays, m.ActivityFrequency, m.ContractInteractions, m.UniquePrograms)

	var insights domain.WalletInsights
	if err := c.completeJSON(ctx, c.config.AnalysisModel, prompt, &insights); err != nil {
		return nil, err
	}
	insights.Confidence = clamp(insights.Confidence, 0, 1)

	return &insights, nil
}

func (c *client) AssessWalletRisk(ctx context.Context, wallet domain.WalletSnapshot) (*domain.RiskAssessment, error) {
	m := wallet.Metrics
	prompt := fmt.Sprintf(`Analyze wallet security risk:

Reputation: %g/1000
Transactions: %d
Volume: %g SOL
Age: %d days
Activity: %g tx/day

Assess for:
- Suspicious activity patterns
- Bot-like behavior
- Wash trading
- Rapid unusual transactions
- Volume manipulation

Return JSON:
{
  "risk_score": 0-100,
  "risk_level": "Low/Medium/High/Critical",
  "flags": ["flag1", "flag2"],
  "confidence": 0.85,
  "explanation": "detailed explanation",
  "recommendations": ["action1", "action2"]
}`, wallet.ReputationScore, m.TransactionCount, m.TotalVolume, m.WalletAgeDays, m.ActivityFrequency)

	var risk domain.RiskAssessment
	if err := c.completeJSON(ctx, c.config.RiskModel, prompt, &risk); err != nil {
		return nil, err
	}
	risk.RiskScore = clamp(risk.RiskScore, 0, 100)
	risk.Confidence = clamp(risk.Confidence, 0, 1)

	return &risk, nil
}

// completeJSON asks model for a JSON only answer and decodes the outermost object of it into v
func (c *client) completeJSON(ctx context.Context, model, prompt string, v interface{}) error {
	content, err := c.complete(ctx, model, prompt+"\n\nRespond ONLY with valid JSON. No other text.")
	if err != nil {
		return err
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return fmt.Errorf("%w: no JSON object in answer", domain.ErrMalformedCompletion)
	}

	if err := c.json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
		logger.WarnCtx(ctx, "Failed to decode completion", zap.String("model", model), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrMalformedCompletion, err)
	}

	return nil
}

func (c *client) complete(ctx context.Context, model, prompt string) (string, error) {
	request := ChatCompletionRequest{
		Model:       model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		TopP:        c.config.TopP,
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	}
	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	respBody, err := c.httpClient.PostJSON(ctx, url, headers, requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completion API: %w", err)
	}

	var response ChatCompletionResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal completion response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrMalformedCompletion)
	}

	return response.Choices[0].Message.Content, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
