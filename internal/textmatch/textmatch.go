// Package textmatch provides word-boundary-safe keyword matching. Every
// keyword check in the scoring and classification code goes through this
// package so that short keywords do not match inside larger tokens
// ("ai" inside "email", "ml" inside "html").
package textmatch

import (
	"regexp"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	patterns = make(map[string]*regexp.Regexp)
)

func pattern(keyword string) *regexp.Regexp {
	mu.RLock()
	re, ok := patterns[keyword]
	mu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\b`)

	mu.Lock()
	patterns[keyword] = re
	mu.Unlock()

	return re
}

// Match reports whether keyword occurs in text as a whole word or phrase.
// Matching is case-insensitive.
func Match(text, keyword string) bool {
	if text == "" || strings.TrimSpace(keyword) == "" {
		return false
	}
	return pattern(keyword).MatchString(text)
}

// MatchAny reports whether any of the keywords matches text.
func MatchAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if Match(text, keyword) {
			return true
		}
	}
	return false
}

// CountMatches returns the number of distinct keywords found in text.
func CountMatches(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if Match(text, keyword) {
			count++
		}
	}
	return count
}

// Matched returns the keywords found in text, preserving input order.
func Matched(text string, keywords []string) []string {
	var found []string
	for _, keyword := range keywords {
		if Match(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// ContainsAny reports whether any of the keywords occurs in text as a plain
// case-insensitive substring. Used for short tags and location fragments
// where word boundaries are too strict.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
