package suggest

import "strings"

// Explain returns the rationale behind a suggestion by matching its text
// against per-category keyword lists. The first declared category with any
// keyword hit wins; unmatched text gets a generic rationale.
func (e *Engine) Explain(text string) string {
	lower := strings.ToLower(text)
	for _, category := range catalogCategories {
		for _, keyword := range explanationKeywords[category] {
			if strings.Contains(lower, keyword) {
				return explanations[category]
			}
		}
	}
	return fallbackExplanation
}
