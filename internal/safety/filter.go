package safety

import (
	"context"
	"regexp"
	"strings"
)

var (
	// Control characters except newline and tab.
	controlCharsPattern = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")

	whitespacePattern = regexp.MustCompile(`\s+`)

	// Role-assumption attempts always reject, regardless of context.
	rolePlayPattern = regexp.MustCompile(`(?i)(act|pretend|simulate|roleplay|play the role).*(as|of|being).*(admin|root|system|developer)`)
)

// SanitizeAndValidate classifies raw user input. When the filter is disabled
// the input passes through untouched; otherwise it is sanitized and checked
// for jailbreak attempts, and its domain relevance is logged.
func (f *Filter) SanitizeAndValidate(ctx context.Context, userInput string) Result {
	if !f.cfg.FilterEnabled {
		return AllowedResult(userInput)
	}

	if cached, ok := f.cache.Get(userInput); ok {
		return cached
	}

	sanitized := f.sanitizeInput(ctx, userInput)

	if f.cfg.JailbreakDetectionEnabled {
		if f.detectJailbreakAttempt(sanitized) {
			f.l.Warnf(ctx, "Jailbreak attempt detected: %s", sanitized)
			result := RejectedResult(RejectionReason)
			f.cache.Add(userInput, result)
			return result
		}
	}

	if f.cfg.DomainValidationEnabled {
		if !f.isRelevantToTestingDomain(sanitized) {
			// Allowed anyway; the assistant redirects off-topic conversation.
			f.l.Infof(ctx, "Out-of-domain query detected: %s", sanitized)
		}
	}

	result := AllowedResult(sanitized)
	f.cache.Add(userInput, result)
	return result
}

// sanitizeInput strips control characters, normalizes whitespace and caps
// the length. The result is a fixed point: sanitizing it again yields the
// same string.
func (f *Filter) sanitizeInput(ctx context.Context, input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	sanitized := controlCharsPattern.ReplaceAllString(input, "")
	sanitized = strings.TrimSpace(whitespacePattern.ReplaceAllString(sanitized, " "))

	if runes := []rune(sanitized); len(runes) > MaxInputLength {
		sanitized = strings.TrimSpace(string(runes[:MaxInputLength]))
		f.l.Warnf(ctx, "Input truncated to %d characters", MaxInputLength)
	}

	return sanitized
}

func (f *Filter) detectJailbreakAttempt(input string) bool {
	lowerInput := strings.ToLower(input)

	for _, phrase := range jailbreakPhrases {
		idx := strings.Index(lowerInput, phrase)
		if idx < 0 {
			continue
		}
		if !isInTestingContext(lowerInput, phrase, idx) {
			return true
		}
	}

	return rolePlayPattern.MatchString(input)
}

// isInTestingContext suppresses a jailbreak match as a false positive when a
// testing-domain keyword appears within ContextWindow characters of it.
func isInTestingContext(lowerInput, phrase string, idx int) bool {
	start := idx - ContextWindow
	if start < 0 {
		start = 0
	}
	end := idx + len(phrase) + ContextWindow
	if end > len(lowerInput) {
		end = len(lowerInput)
	}
	window := lowerInput[start:end]

	for _, keyword := range testingDomainKeywords {
		if strings.Contains(window, keyword) {
			return true
		}
	}
	return false
}

func (f *Filter) isRelevantToTestingDomain(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	lowerInput := strings.ToLower(input)

	for _, keyword := range testingDomainKeywords {
		if strings.Contains(lowerInput, keyword) {
			return true
		}
	}

	return isSmallTalk(lowerInput)
}

func isSmallTalk(lowerInput string) bool {
	trimmed := strings.TrimSpace(lowerInput)
	for _, opener := range smallTalkOpeners {
		if strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}
