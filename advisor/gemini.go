package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"salespredictor/models"
	"salespredictor/utils"
)

const maxTips = 5

// TextGenerator sends a prompt to a language model and returns its text reply.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiAdvisor asks Gemini for tips tailored to the prediction.
type GeminiAdvisor struct {
	gen TextGenerator
}

// NewGeminiAdvisor wraps any text generator.
func NewGeminiAdvisor(gen TextGenerator) *GeminiAdvisor {
	return &GeminiAdvisor{gen: gen}
}

func (g *GeminiAdvisor) Name() string { return "gemini" }

// Tips prompts the model for a JSON array of markdown tips and renders them.
func (g *GeminiAdvisor) Tips(ctx context.Context, in models.SalesInput, res models.PredictionResult) ([]models.Tip, error) {
	reply, err := g.gen.Generate(ctx, buildPrompt(in, res))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tips: %w", err)
	}

	tips, err := parseTips(reply)
	if err != nil {
		return nil, err
	}
	return RenderTips(tips), nil
}

func buildPrompt(in models.SalesInput, res models.PredictionResult) string {
	return fmt.Sprintf(
		`You are a retail pricing analyst. A %s sales plan for %d sells %s units at %s with a %s discount. `+
			`The predicted revenue is %s (%s per unit after discount). `+
			`Reply with a JSON array of at most %d short tips as markdown strings, each starting with an emoji and a **bold** key phrase. No other text.`,
		in.ProductCategory, in.Year, utils.FormatCount(in.UnitsSold), utils.FormatUSD(in.UnitPriceUSD),
		utils.FormatPercent(in.DiscountPct), utils.FormatUSD(res.Revenue), utils.FormatUSD(res.DiscountedUnitPrice), maxTips,
	)
}

// parseTips accepts a JSON array, or an object with a "tips" array, optionally
// inside a code fence and possibly malformed.
func parseTips(reply string) ([]string, error) {
	cleaned := strings.TrimSpace(reply)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err != nil {
		repaired = cleaned
	}

	var tips []string
	if err := json.Unmarshal([]byte(repaired), &tips); err != nil {
		var wrapped struct {
			Tips []string `json:"tips"`
		}
		if err2 := json.Unmarshal([]byte(repaired), &wrapped); err2 != nil {
			return nil, fmt.Errorf("unreadable tips reply: %w", err)
		}
		tips = wrapped.Tips
	}

	out := make([]string, 0, len(tips))
	for _, t := range tips {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
		if len(out) == maxTips {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("tips reply was empty")
	}
	return out, nil
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator initializes the Gemini client.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
