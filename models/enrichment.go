package models

// Enrichment is the rewritten form of a raw article.
type Enrichment struct {
	Title    string   `json:"titulo"`
	Summary  string   `json:"resumen"`
	Category Category `json:"categoria"`
}

// GenerateContentRequest is the body of a generateContent call.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// GenerateContentResponse is the body returned by a generateContent call.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content Content `json:"content"`
}

// Content groups the parts of a prompt or an answer.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment.
type Part struct {
	Text string `json:"text"`
}

// FirstText returns the text of the first part of the first candidate.
func (r GenerateContentResponse) FirstText() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return r.Candidates[0].Content.Parts[0].Text, true
}
