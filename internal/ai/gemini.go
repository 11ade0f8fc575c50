package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wut2pack/internal/modules/packing"
)

// TipsRequest describes the trip a traveller wants advice for.
type TipsRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	List        packing.PackingList
}

// GeminiProvider generates short destination-specific packing tips.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.6)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// PackingTips returns a short free-text advice blurb for the given trip,
// grounded in what the generated list already covers.
func (p *GeminiProvider) PackingTips(ctx context.Context, req TipsRequest) (string, error) {
	prompt := buildTipsPrompt(req)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

func buildTipsPrompt(req TipsRequest) string {
	var items []string
	for _, cat := range packing.Categories {
		for _, it := range req.List.Categories[cat] {
			items = append(items, it.Name)
		}
	}

	return fmt.Sprintf(`Role: You are a pragmatic packing assistant for a travel checklist app.
Trip: destination %q, from %s to %s.
The traveller already has these items on their list: %s.

Give at most 4 short, concrete packing tips specific to this destination and
season that are NOT already covered by the list above. Plain text, one tip per
line, no markdown, no preamble.`,
		req.Destination, req.StartDate, req.EndDate, strings.Join(items, ", "))
}
