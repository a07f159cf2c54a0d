package advisor

import "strings"

// StripFence removes a markdown code fence wrapped around a model reply.
// A leading "```json" or "```" and a trailing "```" are dropped along with
// surrounding whitespace. Text without a fence is only trimmed, so applying
// StripFence twice gives the same result as applying it once.
func StripFence(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}

	clean = strings.TrimSpace(clean)
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
