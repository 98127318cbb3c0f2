package scoring

import (
	"testing"

	"github.com/ovsov/jobgrader/internal/company"
)

func testProfile() *Profile {
	return &Profile{
		TargetSeniority: []string{"vp", "director"},
		DomainKeywords: map[string]int{
			"robotics":       1,
			"hardware":       1,
			"automation":     1,
			"medical device": 2,
			"manufacturing":  3,
		},
		RoleTypes: map[string]RoleTypeConfig{
			RoleDualRole:              {Must: []string{"product and engineering", "technology"}},
			RoleProductLeadership:     {Must: []string{"product"}},
			RoleEngineeringLeadership: {Must: []string{"engineering", "engineer"}, Nice: []string{"robotics", "hardware", "platform"}},
		},
		Location: LocationConfig{
			RemoteKeywords:   []string{"remote"},
			HybridKeywords:   []string{"hybrid"},
			PreferredCities:  []string{"boston", "cambridge"},
			PreferredRegions: []string{"massachusetts", "ma", "new england"},
		},
		TechnicalKeywords: []string{"ros", "plc", "cad", "python"},
		Filtering: FilterConfig{
			AggressionLevel:        AggressionModerate,
			SoftwareAvoidKeywords:  []string{"software engineering", "software development"},
			SoftwareCompanyPenalty: -20,
			HardwareCompanyBoost:   10,
		},
	}
}

func classification(t company.Type, confidence float64) *company.Classification {
	return company.NewClassification(t, confidence, nil, company.SourceAuto)
}

func TestClassifyRoleTypePriorityOrder(t *testing.T) {
	profile := testProfile()

	cases := []struct {
		title string
		want  string
	}{
		{"VP of Product and Engineering", RoleDualRole},
		{"Chief Technology Officer", RoleDualRole},
		{"VP of Product", RoleProductLeadership},
		{"Director of Product Management", RoleProductLeadership},
		{"VP of Engineering", RoleEngineeringLeadership},
		{"Robotics Engineer", RoleEngineeringLeadership},
		{"Director of Marketing", RoleOther},
	}

	for _, tc := range cases {
		if got := ClassifyRoleType(tc.title, profile.RoleTypes); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.title, tc.want, got)
		}
	}
}

func TestClassifyRoleTypeMissingCategory(t *testing.T) {
	roleTypes := map[string]RoleTypeConfig{
		RoleEngineeringLeadership: {Must: []string{"engineering"}},
	}

	if got := ClassifyRoleType("VP of Engineering", roleTypes); got != RoleEngineeringLeadership {
		t.Fatalf("expected engineering_leadership, got %s", got)
	}
	if got := ClassifyRoleType("VP of Product", roleTypes); got != RoleOther {
		t.Fatalf("expected other for unmatched title, got %s", got)
	}
}

func TestProductLeadershipNeverFiltered(t *testing.T) {
	profile := testProfile()

	types := []company.Type{company.Software, company.Hardware, company.Both, company.Unknown}
	levels := []string{AggressionConservative, AggressionModerate, AggressionAggressive}

	for _, typ := range types {
		for _, level := range levels {
			filtered, reason := ShouldFilterJob("VP of Product", "Acme", classification(typ, 0.9), profile, level)
			if filtered {
				t.Fatalf("product leadership filtered for type=%s level=%s", typ, level)
			}
			if reason != ReasonProductLeadershipAnyCompany {
				t.Fatalf("unexpected reason %q for type=%s level=%s", reason, typ, level)
			}
		}
	}
}

func TestDualRoleNeverFiltered(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Product and Engineering", "Acme", classification(company.Software, 1.0), profile, AggressionAggressive)
	if filtered {
		t.Fatalf("dual role must never be filtered")
	}
	if reason != ReasonDualRoleAnyCompany {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestModerateFiltersOnConfidence(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Engineering", "Stripe", classification(company.Software, 0.7), profile, AggressionModerate)
	if !filtered || reason != ReasonModerateConfident {
		t.Fatalf("expected confident filter, got %t/%q", filtered, reason)
	}

	filtered, reason = ShouldFilterJob("VP of Engineering", "Stripe", classification(company.Software, 0.5), profile, AggressionModerate)
	if filtered || reason != ReasonModerateLowConfidence {
		t.Fatalf("expected low-confidence pass, got %t/%q", filtered, reason)
	}

	// Boundary: exactly 0.6 filters.
	filtered, _ = ShouldFilterJob("VP of Engineering", "Stripe", classification(company.Software, 0.6), profile, AggressionModerate)
	if !filtered {
		t.Fatalf("confidence 0.6 must filter at moderate level")
	}
}

func TestConservativeNeedsAvoidKeyword(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Software Engineering", "Stripe", classification(company.Software, 1.0), profile, AggressionConservative)
	if !filtered || reason != ReasonConservativeAvoidKeyword {
		t.Fatalf("expected avoid-keyword filter, got %t/%q", filtered, reason)
	}

	filtered, reason = ShouldFilterJob("VP of Engineering", "Stripe", classification(company.Software, 1.0), profile, AggressionConservative)
	if filtered || reason != ReasonConservativeNoAvoidKeyword {
		t.Fatalf("expected pass without avoid keyword, got %t/%q", filtered, reason)
	}
}

func TestAggressiveSparesHardwareTitles(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Hardware Engineering", "Stripe", classification(company.Software, 0.4), profile, AggressionAggressive)
	if filtered || reason != ReasonAggressiveHardwareTitle {
		t.Fatalf("expected hardware title to pass, got %t/%q", filtered, reason)
	}

	filtered, reason = ShouldFilterJob("VP of Engineering", "Stripe", classification(company.Software, 0.4), profile, AggressionAggressive)
	if !filtered || reason != ReasonAggressiveSoftwareCompany {
		t.Fatalf("expected aggressive filter, got %t/%q", filtered, reason)
	}
}

func TestHardwareCompanyNeverFiltered(t *testing.T) {
	profile := testProfile()

	for _, level := range []string{AggressionConservative, AggressionModerate, AggressionAggressive} {
		filtered, reason := ShouldFilterJob("VP of Software Engineering", "Boston Dynamics", classification(company.Hardware, 1.0), profile, level)
		if filtered {
			t.Fatalf("hardware company filtered at level %s", level)
		}
		if reason != ReasonHardwareCompany {
			t.Fatalf("unexpected reason %q at level %s", reason, level)
		}
	}
}

func TestBothCompanyFiltersOnlyExplicitAvoid(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Software Engineering", "Apple", classification(company.Both, 0.8), profile, AggressionModerate)
	if !filtered || reason != ReasonBothExplicitAvoid {
		t.Fatalf("expected explicit-avoid filter, got %t/%q", filtered, reason)
	}

	filtered, reason = ShouldFilterJob("VP of Engineering", "Apple", classification(company.Both, 0.8), profile, AggressionModerate)
	if filtered || reason != ReasonBothAmbiguous {
		t.Fatalf("expected ambiguous pass, got %t/%q", filtered, reason)
	}
}

func TestUnknownCompanyAndOtherRolePass(t *testing.T) {
	profile := testProfile()

	filtered, reason := ShouldFilterJob("VP of Engineering", "Quarndon Holdings", classification(company.Unknown, 0.0), profile, AggressionAggressive)
	if filtered || reason != ReasonNoFilterDefault {
		t.Fatalf("unknown company must pass, got %t/%q", filtered, reason)
	}

	filtered, reason = ShouldFilterJob("Director of Marketing", "Stripe", classification(company.Software, 1.0), profile, AggressionAggressive)
	if filtered || reason != ReasonNoFilterDefault {
		t.Fatalf("other role must pass, got %t/%q", filtered, reason)
	}
}
