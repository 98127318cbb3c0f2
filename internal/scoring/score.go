package scoring

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ovsov/jobgrader/internal/company"
	"github.com/ovsov/jobgrader/internal/job"
	"github.com/ovsov/jobgrader/internal/textmatch"
)

// seniorityLadder is the canonical ordering of leadership levels. Profile
// target keywords are resolved into positions on this ladder, and the
// seniority sub-score decays with the distance between the title's level and
// the nearest target level.
var seniorityLadder = []struct {
	name     string
	keywords []string
}{
	{"lead", []string{"team lead", "tech lead", "lead"}},
	{"manager", []string{"engineering manager", "manager"}},
	{"senior manager", []string{"senior manager"}},
	{"director", []string{"director"}},
	{"senior director", []string{"senior director"}},
	{"vp", []string{"vice president", "vp", "head of"}},
	{"svp", []string{"senior vice president", "svp"}},
	{"evp", []string{"executive vice president", "evp"}},
	{"cxo", []string{"cto", "chief technology officer", "chief technical officer", "cpo", "chief product officer"}},
}

// seniorityDistanceScores maps ladder distance to points. Distance 5 or more
// scores nothing.
var seniorityDistanceScores = []int{30, 25, 15, 10, 5}

// Domain tier points, by tier number.
var domainTierScores = map[int]int{1: 25, 2: 20, 3: 15}

const (
	domainGenericEngineering = 10
	domainProductOnly        = 5

	roleTypeLeadershipBase = 20
	roleTypeBase           = 15
	roleTypeMax            = 22
	roleTypeMin            = -5

	locationRemote         = 15
	locationHybridRegion   = 15
	locationPreferredCity  = 12
	locationPreferredZone  = 8

	technicalPointsPerMatch = 2
	technicalMax            = 10
)

// leadershipKeywords qualify a title as leadership-level for the role-type
// sub-score.
var leadershipKeywords = []string{"director", "vp", "vice president", "head", "chief", "manager", "lead"}

// Scorer scores job postings against one profile. Safe for concurrent use as
// long as the injected classifier is.
type Scorer struct {
	profile    *Profile
	classifier *company.Classifier
	logger     *zap.Logger
}

func NewScorer(profile *Profile, classifier *company.Classifier, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, category := range rolePriority {
		if _, ok := profile.RoleTypes[category]; !ok {
			logger.Warn("role category missing from configuration, it will never match",
				zap.String("category", category),
			)
		}
	}

	return &Scorer{
		profile:    profile,
		classifier: classifier,
		logger:     logger,
	}
}

// Score computes the total score, grade and breakdown for one posting. Every
// sub-score is computed and awarded independently; a zero in one never
// silences another.
func (s *Scorer) Score(j *job.Job) *job.Result {
	breakdown := job.Breakdown{
		Seniority: seniorityScore(j.Title, s.profile.TargetSeniority),
		Domain:    domainScore(j.Title, j.Company, s.profile.DomainKeywords),
		RoleType:  s.roleTypeScore(j.Title),
		Location:  locationScore(j.Location, s.profile.Location),
		Technical: technicalScore(j.Title+" "+j.Description, s.profile.TechnicalKeywords),
	}

	meta := s.companyAdjustment(j)
	breakdown.Company = meta.adjustment

	total := breakdown.Seniority + breakdown.Domain + breakdown.RoleType +
		breakdown.Location + breakdown.Technical + breakdown.Company

	result := &job.Result{
		Total:     total,
		Grade:     Grade(total),
		Breakdown: breakdown,
		Company:   meta.meta,
	}

	s.logger.Debug("scored job",
		zap.String("title", j.Title),
		zap.String("company", j.Company),
		zap.Int("total", total),
		zap.String("grade", result.Grade),
	)

	return result
}

// Grade maps a total score to a letter grade. Boundary values map to the
// higher grade.
func Grade(total int) string {
	switch {
	case total >= 85:
		return "A"
	case total >= 70:
		return "B"
	case total >= 55:
		return "C"
	case total >= 40:
		return "D"
	default:
		return "F"
	}
}

// seniorityScore resolves the title's seniority level on the ladder and
// scores by distance to the nearest target level.
func seniorityScore(title string, targets []string) int {
	titleLevel := ladderLevel(title)
	if titleLevel < 0 {
		return 0
	}

	best := -1
	for _, target := range targets {
		level := keywordLevel(target)
		if level < 0 {
			continue
		}
		distance := titleLevel - level
		if distance < 0 {
			distance = -distance
		}
		if best < 0 || distance < best {
			best = distance
		}
	}
	if best < 0 || best >= len(seniorityDistanceScores) {
		return 0
	}
	return seniorityDistanceScores[best]
}

// ladderLevel finds the title's level, checking the most senior levels first
// so "senior director" never resolves as plain "director".
func ladderLevel(title string) int {
	for i := len(seniorityLadder) - 1; i >= 0; i-- {
		if textmatch.MatchAny(title, seniorityLadder[i].keywords) {
			return i
		}
	}
	return -1
}

// keywordLevel resolves a profile target keyword to its ladder level.
func keywordLevel(keyword string) int {
	k := strings.ToLower(strings.TrimSpace(keyword))
	for i, level := range seniorityLadder {
		for _, candidate := range level.keywords {
			if candidate == k || level.name == k {
				return i
			}
		}
	}
	return -1
}

// domainScore awards points for the highest matched domain tier in the title
// and company text, with generic engineering and product-only fallbacks.
func domainScore(title, companyName string, domainKeywords map[string]int) int {
	text := strings.ToLower(title + " " + companyName)

	bestTier := 0
	for keyword, tier := range domainKeywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" || !strings.Contains(text, k) {
			continue
		}
		if bestTier == 0 || tier < bestTier {
			bestTier = tier
		}
	}
	if points, ok := domainTierScores[bestTier]; ok {
		return points
	}

	if strings.Contains(text, "engineering") {
		return domainGenericEngineering
	}
	if strings.Contains(text, "product") {
		return domainProductOnly
	}
	return 0
}

// roleTypeScore awards points for a role-category match, with a density bonus
// from nice keywords and the configurable software-role penalty.
func (s *Scorer) roleTypeScore(title string) int {
	category := ClassifyRoleType(title, s.profile.RoleTypes)
	if category == RoleOther {
		return 0
	}

	leadership := textmatch.MatchAny(title, leadershipKeywords)

	score := roleTypeBase
	if leadership {
		score = roleTypeLeadershipBase
	}

	bonus := textmatch.CountMatches(title, s.profile.RoleTypes[category].Nice)
	score += bonus
	if score > roleTypeMax {
		score = roleTypeMax
	}

	if leadership && textmatch.MatchAny(title, s.profile.Filtering.SoftwareAvoidKeywords) {
		score += s.profile.Filtering.RoleSoftwarePenalty
	}
	if score < roleTypeMin {
		score = roleTypeMin
	}

	return score
}

// locationScore is a tiered containment check over the raw location string.
func locationScore(location string, cfg LocationConfig) int {
	if strings.TrimSpace(location) == "" {
		return 0
	}

	if textmatch.ContainsAny(location, cfg.RemoteKeywords) {
		return locationRemote
	}
	if textmatch.ContainsAny(location, cfg.HybridKeywords) && textmatch.ContainsAny(location, cfg.PreferredRegions) {
		return locationHybridRegion
	}
	if textmatch.ContainsAny(location, cfg.PreferredCities) {
		return locationPreferredCity
	}
	if textmatch.ContainsAny(location, cfg.PreferredRegions) {
		return locationPreferredZone
	}
	return 0
}

func technicalScore(text string, keywords []string) int {
	score := textmatch.CountMatches(text, keywords) * technicalPointsPerMatch
	if score > technicalMax {
		score = technicalMax
	}
	return score
}

type companyResult struct {
	adjustment int
	meta       *job.CompanyMeta
}

// companyAdjustment runs the classifier and the filter decision and converts
// them into a score adjustment plus audit metadata.
func (s *Scorer) companyAdjustment(j *job.Job) companyResult {
	if s.classifier == nil {
		return companyResult{meta: &job.CompanyMeta{
			Type:         string(company.Unknown),
			Source:       company.SourceAuto,
			FilterReason: ReasonNoFilterDefault,
		}}
	}

	cl := s.classifier.Classify(company.Request{
		Company:        j.Company,
		Title:          j.Title,
		Description:    j.Description,
		DomainKeywords: s.profile.DomainKeywordList(),
	})

	filtered, reason := ShouldFilterJob(j.Title, j.Company, cl, s.profile, s.profile.Filtering.Aggression())

	adjustment := 0
	switch {
	case filtered:
		adjustment = s.profile.Filtering.SoftwareCompanyPenalty
	case cl.Type == company.Hardware:
		adjustment = s.profile.Filtering.HardwareCompanyBoost
	}

	return companyResult{
		adjustment: adjustment,
		meta: &job.CompanyMeta{
			Type:         string(cl.Type),
			Confidence:   cl.Confidence,
			Source:       cl.Source,
			Signals:      flattenSignals(cl.Signals),
			Filtered:     filtered,
			FilterReason: reason,
		},
	}
}

// flattenSignals renders signals into string maps for reports and dumps.
func flattenSignals(signals map[string]company.Signal) map[string]map[string]string {
	if len(signals) == 0 {
		return nil
	}
	flat := make(map[string]map[string]string, len(signals))
	for name, signal := range signals {
		entry := map[string]string{
			"type":  string(signal.Type),
			"score": strconv.FormatFloat(signal.Score, 'f', 2, 64),
		}
		for k, v := range signal.Detail {
			entry[k] = v
		}
		flat[name] = entry
	}
	return flat
}
