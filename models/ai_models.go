package models

import "html/template"

// Tip is one piece of advice, kept as markdown with its rendered HTML.
type Tip struct {
	Markdown string        `json:"markdown"`
	HTML     template.HTML `json:"html"`
}

// InsightResponse is the payload returned by the insights endpoint.
type InsightResponse struct {
	Source string           `json:"source"`
	Result PredictionResult `json:"result"`
	Tips   []Tip            `json:"tips"`
}
