package htmlpreview

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// sanitizeMarkup strips everything from an attribute value except the small
// inline-markup vocabulary label text may carry.
func sanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "u", "em", "strong", "small", "sub", "sup", "br")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowElements("span")
		markupPolicy = policy
	})
	return markupPolicy
}
