// Package scoring converts a job posting into a fitness score and letter
// grade against a user-defined profile, and decides whether a posting should
// be suppressed based on the role type and the employer classification.
package scoring

import "strings"

// Role categories, in classification priority order.
const (
	RoleDualRole              = "dual_role"
	RoleProductLeadership     = "product_leadership"
	RoleEngineeringLeadership = "engineering_leadership"
	RoleOther                 = "other"
)

// Aggression levels for the software-company filter.
const (
	AggressionConservative = "conservative"
	AggressionModerate     = "moderate"
	AggressionAggressive   = "aggressive"
)

// rolePriority is the fixed order in which role categories are checked.
// First match wins.
var rolePriority = []string{RoleDualRole, RoleProductLeadership, RoleEngineeringLeadership}

// Profile is the scoring rubric for one user. It is immutable for the
// duration of a scoring call.
type Profile struct {
	// TargetSeniority lists the seniority keywords the user is aiming for,
	// e.g. ["director", "vp"].
	TargetSeniority []string `mapstructure:"target-seniority"`
	// DomainKeywords maps a domain term to its tier (1 strongest .. 3).
	DomainKeywords map[string]int `mapstructure:"domain-keywords"`
	// RoleTypes maps a role category name to its keyword sets.
	RoleTypes map[string]RoleTypeConfig `mapstructure:"role-types"`

	Location          LocationConfig `mapstructure:"location"`
	TechnicalKeywords []string       `mapstructure:"technical-keywords"`
	Filtering         FilterConfig   `mapstructure:"filtering"`
}

type RoleTypeConfig struct {
	Must []string `mapstructure:"must"`
	Nice []string `mapstructure:"nice"`
}

type LocationConfig struct {
	RemoteKeywords   []string `mapstructure:"remote-keywords"`
	HybridKeywords   []string `mapstructure:"hybrid-keywords"`
	PreferredCities  []string `mapstructure:"preferred-cities"`
	PreferredRegions []string `mapstructure:"preferred-regions"`
}

type FilterConfig struct {
	AggressionLevel        string   `mapstructure:"aggression-level"`
	SoftwareAvoidKeywords  []string `mapstructure:"software-avoid-keywords"`
	SoftwareCompanyPenalty int      `mapstructure:"software-company-penalty"`
	HardwareCompanyBoost   int      `mapstructure:"hardware-company-boost"`
	RoleSoftwarePenalty    int      `mapstructure:"role-software-penalty"`
}

// Aggression returns the configured aggression level, defaulting to moderate.
func (f FilterConfig) Aggression() string {
	switch strings.TrimSpace(strings.ToLower(f.AggressionLevel)) {
	case AggressionConservative:
		return AggressionConservative
	case AggressionAggressive:
		return AggressionAggressive
	default:
		return AggressionModerate
	}
}

// DomainKeywordList returns the domain terms as a list for the classifier.
func (p *Profile) DomainKeywordList() []string {
	if len(p.DomainKeywords) == 0 {
		return nil
	}
	keywords := make([]string, 0, len(p.DomainKeywords))
	for keyword := range p.DomainKeywords {
		keywords = append(keywords, keyword)
	}
	return keywords
}
