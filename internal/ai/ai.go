// Package ai provides the best-effort text improvement used by the form
// editor. The feature is advisory: any failure of the underlying service is
// absorbed and the caller gets the original text back.
package ai

import (
	"context"
	"fmt"
)

// Rewriter turns a prompt into rewritten text. Implementations may fail;
// Improve absorbs those failures.
type Rewriter interface {
	Rewrite(ctx context.Context, prompt string) (string, error)
}

// Improve asks the rewriter to polish a piece of form text in the context of
// its section. Empty input returns empty without calling the service. On any
// failure, or an empty response, the original text is returned unchanged;
// Improve never fails.
func Improve(ctx context.Context, rw Rewriter, text, sectionLabel string) string {
	if text == "" {
		return ""
	}
	if rw == nil {
		return text
	}

	improved, err := rw.Rewrite(ctx, buildPrompt(text, sectionLabel))
	if err != nil || improved == "" {
		return text
	}
	return improved
}

func buildPrompt(text, sectionLabel string) string {
	return fmt.Sprintf(`Act as a professional academic administrative assistant.
Improve the following text, which belongs to a section titled %q
in an official document for a university Technical Council.

Original text: %q

Rules:
1. Keep a formal, objective and respectful tone.
2. Fix spelling and grammar.
3. Expand the idea so it is clear and solid, but concise.
4. Return ONLY the improved text, with no introductions or quotes.`, sectionLabel, text)
}
