// Package conversation provides command parsing, prompting, and user
// notification for the recipe book REPL.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
	setRe    *regexp.Regexp
	appendRe *regexp.Regexp
	colonRe  *regexp.Regexp
	openRe   *regexp.Regexp
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{
		log:      log,
		setRe:    regexp.MustCompile(`(?is)^set\s+([a-z_-]+)\s*(.*)$`),
		appendRe: regexp.MustCompile(`(?is)^(?:append|add to)\s+([a-z_-]+)\s+(.+)$`),
		colonRe:  regexp.MustCompile(`(?is)^([a-z_-]+)\s*:\s*(.*)$`),
		openRe:   regexp.MustCompile(`(?i)^(?:open|show|view|select|pick)\s+#?(\d+)$`),
	}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(list|recipes|ls|l|home)$`), domain.IntentListRecipes},
		{regexp.MustCompile(`(?i)^(\+|add|new|create)$`), domain.IntentAddRecipe},
		{regexp.MustCompile(`(?i)^(image|photo|pick image|add photo)$`), domain.IntentPickImage},
		{regexp.MustCompile(`(?i)^(noimage|no image|remove image|clear image)$`), domain.IntentClearImage},
		{regexp.MustCompile(`(?i)^(draft|form|preview)$`), domain.IntentShowDraft},
		{regexp.MustCompile(`(?i)^(categories|cats)$`), domain.IntentCategories},
		{regexp.MustCompile(`(?i)^(save|done|ok)$`), domain.IntentSave},
		{regexp.MustCompile(`(?i)^(cancel|discard|abort)$`), domain.IntentCancel},
		{regexp.MustCompile(`(?i)^(back|b|close)$`), domain.IntentBack},
		{regexp.MustCompile(`(?i)^(delete|del|rm|remove)$`), domain.IntentDelete},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent. The current view only
// disambiguates shorthand: a bare number selects a recipe, and
// "field: value" edits the draft.
func (p *KeywordParser) Parse(ctx context.Context, input string, view domain.View) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q (view=%s)", trimmed, view)

	// Recipe selection by number (e.g., "1", "12").
	if isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentSelectRecipe, Payload: trimmed}, nil
	}
	if m := p.openRe.FindStringSubmatch(trimmed); m != nil {
		return &domain.Intent{Type: domain.IntentSelectRecipe, Payload: m[1]}, nil
	}

	// Check keyword patterns.
	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	// Field edits.
	if m := p.setRe.FindStringSubmatch(trimmed); m != nil {
		return &domain.Intent{Type: domain.IntentSetField, Field: m[1], Payload: strings.TrimSpace(m[2])}, nil
	}
	if m := p.appendRe.FindStringSubmatch(trimmed); m != nil {
		return &domain.Intent{Type: domain.IntentAppendField, Field: m[1], Payload: strings.TrimSpace(m[2])}, nil
	}
	if view == domain.ViewAdd {
		if m := p.colonRe.FindStringSubmatch(trimmed); m != nil {
			if _, err := domain.CanonicalField(m[1]); err == nil {
				return &domain.Intent{Type: domain.IntentSetField, Field: m[1], Payload: strings.TrimSpace(m[2])}, nil
			}
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
