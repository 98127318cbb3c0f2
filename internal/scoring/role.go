package scoring

import (
	"github.com/ovsov/jobgrader/internal/company"
	"github.com/ovsov/jobgrader/internal/textmatch"
)

// Stable filter decision reasons. Callers log and persist these; never infer
// semantics from the boolean alone.
const (
	ReasonProductLeadershipAnyCompany = "product_leadership_any_company"
	ReasonDualRoleAnyCompany          = "dual_role_any_company"
	ReasonNoFilterDefault             = "no_filter_default"
	ReasonHardwareCompany             = "engineering_leadership_hardware_company"
	ReasonBothExplicitAvoid           = "both_company_explicit_avoid"
	ReasonBothAmbiguous               = "both_company_ambiguous"
	ReasonConservativeAvoidKeyword    = "conservative_explicit_avoid_keyword"
	ReasonConservativeNoAvoidKeyword  = "conservative_no_avoid_keyword"
	ReasonModerateConfident           = "moderate_software_company_confident"
	ReasonModerateLowConfidence       = "moderate_low_confidence"
	ReasonAggressiveHardwareTitle     = "aggressive_hardware_title"
	ReasonAggressiveSoftwareCompany   = "aggressive_software_company"
)

// moderateConfidenceThreshold gates filtering at the moderate aggression
// level.
const moderateConfidenceThreshold = 0.6

// hardwareTitleKeywords rescue an engineering-leadership title from the
// aggressive filter.
var hardwareTitleKeywords = []string{"hardware", "robotics", "mechatronics", "embedded", "firmware"}

// ClassifyRoleType buckets a job title into a role category using the
// profile's must keywords, checked in fixed priority order: dual_role, then
// product_leadership, then engineering_leadership. First match wins.
func ClassifyRoleType(title string, roleTypes map[string]RoleTypeConfig) string {
	for _, category := range rolePriority {
		cfg, ok := roleTypes[category]
		if !ok {
			continue
		}
		if textmatch.MatchAny(title, cfg.Must) {
			return category
		}
	}
	return RoleOther
}

// ShouldFilterJob decides whether an otherwise-matching job should be
// suppressed given the employer classification and the aggression level.
func ShouldFilterJob(title, companyName string, cl *company.Classification, profile *Profile, aggression string) (bool, string) {
	role := ClassifyRoleType(title, profile.RoleTypes)

	switch role {
	case RoleProductLeadership:
		return false, ReasonProductLeadershipAnyCompany
	case RoleDualRole:
		return false, ReasonDualRoleAnyCompany
	case RoleOther:
		return false, ReasonNoFilterDefault
	}

	// engineering_leadership from here on.
	if cl == nil {
		return false, ReasonNoFilterDefault
	}

	switch cl.Type {
	case company.Hardware:
		return false, ReasonHardwareCompany
	case company.Both:
		if textmatch.MatchAny(title, profile.Filtering.SoftwareAvoidKeywords) {
			return true, ReasonBothExplicitAvoid
		}
		return false, ReasonBothAmbiguous
	case company.Software:
		switch aggression {
		case AggressionConservative:
			if textmatch.MatchAny(title, profile.Filtering.SoftwareAvoidKeywords) {
				return true, ReasonConservativeAvoidKeyword
			}
			return false, ReasonConservativeNoAvoidKeyword
		case AggressionAggressive:
			if textmatch.MatchAny(title, hardwareTitleKeywords) {
				return false, ReasonAggressiveHardwareTitle
			}
			return true, ReasonAggressiveSoftwareCompany
		default:
			if cl.Confidence >= moderateConfidenceThreshold {
				return true, ReasonModerateConfident
			}
			return false, ReasonModerateLowConfidence
		}
	default:
		return false, ReasonNoFilterDefault
	}
}
