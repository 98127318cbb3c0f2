package company

import (
	"strconv"
	"strings"

	"github.com/ovsov/jobgrader/internal/textmatch"
)

// Signal names used as keys in Classification.Signals.
const (
	SignalNameKeyword   = "name_keyword"
	SignalCuratedList   = "curated_list"
	SignalDomainKeyword = "domain_keyword"
	SignalJobContent    = "job_content"
)

// Fusion weights. The curated list is the strongest evidence, job content the
// weakest.
var signalWeights = map[string]float64{
	SignalNameKeyword:   0.3,
	SignalCuratedList:   0.4,
	SignalDomainKeyword: 0.2,
	SignalJobContent:    0.1,
}

// Fixed term sets for the domain-keyword signal. These are short tags matched
// by substring containment, not word boundaries.
var (
	hardwareDomainTerms = []string{
		"robotics", "hardware", "embedded", "firmware", "mechatronics",
		"iot", "sensors", "automation", "manufacturing", "semiconductor",
		"electronics", "aerospace", "automotive", "medical device",
	}
	softwareDomainTerms = []string{
		"saas", "web", "cloud", "mobile", "frontend", "backend",
		"fintech", "adtech", "martech", "ecommerce", "crm", "api",
		"devops", "data platform",
	}
)

// Fixed phrase sets for the job-content signal. These are longer phrases and
// go through the word-boundary matcher.
var (
	hardwareContentPhrases = []string{
		"hardware engineering", "embedded systems", "mechanical engineering",
		"electrical engineering", "robotics", "firmware development",
		"mechatronics", "manufacturing engineering",
	}
	softwareContentPhrases = []string{
		"software engineering", "software development", "web development",
		"cloud infrastructure", "mobile development", "full stack",
		"backend development", "frontend development",
	}
)

// nameKeywordSignal scans the company name for hardware and software
// indicator keywords from the curated lists document.
func nameKeywordSignal(companyName string, keywords ListsKeywords) Signal {
	hw := textmatch.Matched(companyName, keywords.HardwareIndicators)
	sw := textmatch.Matched(companyName, keywords.SoftwareIndicators)

	detail := map[string]string{}
	if len(hw) > 0 {
		detail["hardware_keywords"] = strings.Join(hw, ",")
	}
	if len(sw) > 0 {
		detail["software_keywords"] = strings.Join(sw, ",")
	}

	switch {
	case len(hw) > 0 && len(sw) > 0:
		return Signal{Type: Both, Score: 0.8, Detail: detail}
	case len(hw) > 0:
		return Signal{Type: Hardware, Score: 1.0, Detail: detail}
	case len(sw) > 0:
		return Signal{Type: Software, Score: 1.0, Detail: detail}
	default:
		return Signal{Type: Unknown, Score: 0.0}
	}
}

// curatedListSignal matches the normalized company name against the three
// curated lists. Exact matches score 1.0, substring matches in either
// direction 0.9. Hardware is checked before software before both; the first
// hit wins.
func curatedListSignal(companyName string, lists *Lists) Signal {
	normalized := Normalize(companyName)
	if normalized == "" {
		return Signal{Type: Unknown, Score: 0.0}
	}

	ordered := []struct {
		name    string
		entries []string
		typ     Type
	}{
		{"hardware", lists.HardwareCompanies, Hardware},
		{"software", lists.SoftwareCompanies, Software},
		{"both", lists.BothDomains, Both},
	}

	for _, list := range ordered {
		for _, entry := range list.entries {
			if Normalize(entry) == normalized {
				return Signal{Type: list.typ, Score: 1.0, Detail: map[string]string{
					"list":  list.name,
					"entry": entry,
					"match": "exact",
				}}
			}
		}
	}

	for _, list := range ordered {
		for _, entry := range list.entries {
			e := Normalize(entry)
			if e == "" {
				continue
			}
			if strings.Contains(normalized, e) || strings.Contains(e, normalized) {
				return Signal{Type: list.typ, Score: 0.9, Detail: map[string]string{
					"list":  list.name,
					"entry": entry,
					"match": "substring",
				}}
			}
		}
	}

	return Signal{Type: Unknown, Score: 0.0}
}

// domainKeywordSignal compares the profile's domain keywords against the
// fixed hardware and software term sets using substring containment in both
// directions.
func domainKeywordSignal(domainKeywords []string) Signal {
	if len(domainKeywords) == 0 {
		return Signal{Type: Unknown, Score: 0.0}
	}

	hwCount := 0
	swCount := 0
	for _, keyword := range domainKeywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		if containsEither(k, hardwareDomainTerms) {
			hwCount++
		}
		if containsEither(k, softwareDomainTerms) {
			swCount++
		}
	}

	total := len(domainKeywords)
	detail := map[string]string{
		"hardware_matches": strconv.Itoa(hwCount),
		"software_matches": strconv.Itoa(swCount),
		"total_keywords":   strconv.Itoa(total),
	}

	switch {
	case hwCount == 0 && swCount == 0:
		return Signal{Type: Unknown, Score: 0.0}
	case hwCount > swCount:
		return Signal{Type: Hardware, Score: capScore(float64(hwCount)/float64(total), 1.0), Detail: detail}
	case swCount > hwCount:
		return Signal{Type: Software, Score: capScore(float64(swCount)/float64(total), 1.0), Detail: detail}
	default:
		return Signal{Type: Both, Score: capScore(float64(hwCount)/float64(total), 0.8), Detail: detail}
	}
}

// jobContentSignal applies the two fixed phrase sets to the concatenated
// title and description text.
func jobContentSignal(title, description string) Signal {
	text := strings.TrimSpace(title + " " + description)
	if text == "" {
		return Signal{Type: Unknown, Score: 0.0}
	}

	hwCount := textmatch.CountMatches(text, hardwareContentPhrases)
	swCount := textmatch.CountMatches(text, softwareContentPhrases)

	detail := map[string]string{
		"hardware_phrases": strconv.Itoa(hwCount),
		"software_phrases": strconv.Itoa(swCount),
	}

	switch {
	case hwCount == 0 && swCount == 0:
		return Signal{Type: Unknown, Score: 0.0}
	case hwCount > 0 && swCount > 0:
		return Signal{Type: Both, Score: capScore(float64(hwCount+swCount)/6.0, 0.8), Detail: detail}
	case hwCount > 0:
		return Signal{Type: Hardware, Score: capScore(float64(hwCount)/3.0, 1.0), Detail: detail}
	default:
		return Signal{Type: Software, Score: capScore(float64(swCount)/3.0, 1.0), Detail: detail}
	}
}

func containsEither(keyword string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) || strings.Contains(term, keyword) {
			return true
		}
	}
	return false
}

func capScore(score, limit float64) float64 {
	if score > limit {
		return limit
	}
	return score
}
