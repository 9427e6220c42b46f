package reminder

import "strings"

// Sanitize strips markdown code-fence markers from raw model output and trims
// surrounding whitespace. The payload between the fences is left untouched.
// Idempotent: sanitizing already-clean text is a no-op.
func Sanitize(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
