package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespredictor/models"
	"salespredictor/observability"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

var (
	input  = models.SalesInput{Year: 2023, UnitPriceUSD: 1000, DiscountPct: 10, UnitsSold: 50, ProductCategory: "Mac"}
	result = models.PredictionResult{Revenue: 49500, DiscountedUnitPrice: 900, Mode: models.ModeDemo}
)

func TestStaticAdvisorRendersMarkdown(t *testing.T) {
	tips, err := StaticAdvisor{}.Tips(context.Background(), input, result)
	require.NoError(t, err)
	require.Len(t, tips, 5)
	assert.Contains(t, string(tips[0].HTML), "<strong>Higher discounts</strong>")
	assert.Equal(t, "📈 **Higher discounts** may increase units sold", tips[0].Markdown)
}

func TestRenderTipsEscapesHTML(t *testing.T) {
	tips := RenderTips([]string{"<script>alert(1)</script> **ok**"})
	require.Len(t, tips, 1)
	assert.NotContains(t, string(tips[0].HTML), "<script>")
	assert.Contains(t, string(tips[0].HTML), "<strong>ok</strong>")
	assert.Contains(t, string(tips[0].HTML), "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Equal(t, "<script>alert(1)</script> **ok**", tips[0].Markdown)
}

func TestGeminiAdvisorParsesFencedReply(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n[\"💡 **Bundle** accessories\", \"  \", \"📦 **Stock up** before launch\"]\n```"}
	a := NewGeminiAdvisor(gen)

	tips, err := a.Tips(context.Background(), input, result)
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Contains(t, string(tips[0].HTML), "<strong>Bundle</strong>")
	assert.Contains(t, gen.prompt, "$49,500.00")
	assert.Contains(t, gen.prompt, "Mac")
}

func TestGeminiAdvisorAcceptsWrappedObject(t *testing.T) {
	a := NewGeminiAdvisor(&fakeGenerator{reply: `{"tips": ["one", "two", "three", "four", "five", "six"]}`})

	tips, err := a.Tips(context.Background(), input, result)
	require.NoError(t, err)
	assert.Len(t, tips, maxTips)
}

func TestAdviseFallsBackToStatic(t *testing.T) {
	metrics := observability.NewMetrics()
	a := NewGeminiAdvisor(&fakeGenerator{err: errors.New("quota exceeded")})

	tips, source := Advise(context.Background(), a, input, result, metrics)
	assert.Equal(t, "static", source)
	assert.Len(t, tips, 5)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.InsightFallbacksTotal))
}

func TestAdviseEmptyReplyFallsBack(t *testing.T) {
	a := NewGeminiAdvisor(&fakeGenerator{reply: `[]`})

	tips, source := Advise(context.Background(), a, input, result, nil)
	assert.Equal(t, "static", source)
	assert.True(t, strings.Contains(tips[1].Markdown, "Seasonal trends"))
}

func TestAdviseUsesPrimary(t *testing.T) {
	a := NewGeminiAdvisor(&fakeGenerator{reply: `["🎯 **Aim** high"]`})

	tips, source := Advise(context.Background(), a, input, result, nil)
	assert.Equal(t, "gemini", source)
	require.Len(t, tips, 1)

	tips, source = Advise(context.Background(), nil, input, result, nil)
	assert.Equal(t, "static", source)
	assert.Len(t, tips, 5)
}
