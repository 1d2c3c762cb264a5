// Package advisor produces short sales tips to show next to a prediction.
package advisor

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"strings"

	"github.com/yuin/goldmark"

	"salespredictor/models"
	"salespredictor/observability"
)

// Advisor returns markdown tips for an input and its prediction.
type Advisor interface {
	Name() string
	Tips(ctx context.Context, in models.SalesInput, res models.PredictionResult) ([]models.Tip, error)
}

var proTips = []string{
	"📈 **Higher discounts** may increase units sold",
	"📅 **Seasonal trends** affect demand",
	"🏪 **Competitor pricing** matters",
	"📊 **Track market demand** regularly",
	"🎯 **Set realistic targets**",
}

// StaticAdvisor serves the fixed pro tips.
type StaticAdvisor struct{}

func (StaticAdvisor) Name() string { return "static" }

func (StaticAdvisor) Tips(context.Context, models.SalesInput, models.PredictionResult) ([]models.Tip, error) {
	return RenderTips(proTips), nil
}

// Advise asks a for tips and falls back to the static tips on failure.
// It returns the tips and the name of the advisor that produced them.
func Advise(ctx context.Context, a Advisor, in models.SalesInput, res models.PredictionResult, metrics *observability.Metrics) ([]models.Tip, string) {
	static := StaticAdvisor{}
	if a == nil {
		a = static
	}

	tips, err := a.Tips(ctx, in, res)
	if err == nil && len(tips) > 0 {
		return tips, a.Name()
	}
	if err != nil {
		log.Printf("⚠️ [ADVISOR] %s advisor failed, serving static tips: %v", a.Name(), err)
	}
	if metrics != nil && a.Name() != static.Name() {
		metrics.InsightFallbacksTotal.Inc()
	}
	tips, _ = static.Tips(ctx, in, res)
	return tips, static.Name()
}

// angleEscaper keeps tags in a tip as visible text instead of raw HTML blocks,
// which goldmark would drop along with the rest of the line.
var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// RenderTips converts markdown tips to HTML. Raw HTML in the source is shown as text.
func RenderTips(markdown []string) []models.Tip {
	tips := make([]models.Tip, 0, len(markdown))
	for _, md := range markdown {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(angleEscaper.Replace(md)), &buf); err != nil {
			buf.Reset()
			buf.WriteString(template.HTMLEscapeString(md))
		}
		tips = append(tips, models.Tip{Markdown: md, HTML: template.HTML(buf.String())})
	}
	return tips
}
