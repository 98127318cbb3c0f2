package company

import "testing"

var testKeywords = ListsKeywords{
	HardwareIndicators: []string{"robotics", "hardware", "mechatronics"},
	SoftwareIndicators: []string{"software", "saas", "cloud"},
}

func TestNameKeywordSignalSingleType(t *testing.T) {
	signal := nameKeywordSignal("Acme Robotics Inc", testKeywords)
	if signal.Type != Hardware {
		t.Fatalf("expected hardware, got %s", signal.Type)
	}
	if signal.Score != 1.0 {
		t.Fatalf("expected score 1.0, got %v", signal.Score)
	}
	if signal.Detail["hardware_keywords"] != "robotics" {
		t.Fatalf("unexpected detail: %v", signal.Detail)
	}
}

func TestNameKeywordSignalBothTypes(t *testing.T) {
	signal := nameKeywordSignal("Robotics Software Labs", testKeywords)
	if signal.Type != Both {
		t.Fatalf("expected both, got %s", signal.Type)
	}
	if signal.Score != 0.8 {
		t.Fatalf("expected score 0.8, got %v", signal.Score)
	}
}

func TestNameKeywordSignalNoMatch(t *testing.T) {
	signal := nameKeywordSignal("Stripe", testKeywords)
	if signal.Type != Unknown || signal.Score != 0.0 {
		t.Fatalf("expected unknown/0, got %s/%v", signal.Type, signal.Score)
	}
}

func TestCuratedListSignalExactMatch(t *testing.T) {
	lists := &Lists{
		HardwareCompanies: []string{"Boston Dynamics"},
		SoftwareCompanies: []string{"Stripe"},
	}

	signal := curatedListSignal("  boston dynamics ", lists)
	if signal.Type != Hardware || signal.Score != 1.0 {
		t.Fatalf("expected hardware/1.0, got %s/%v", signal.Type, signal.Score)
	}
	if signal.Detail["match"] != "exact" {
		t.Fatalf("expected exact match detail, got %v", signal.Detail)
	}
}

func TestCuratedListSignalSubstringMatch(t *testing.T) {
	lists := &Lists{
		HardwareCompanies: []string{"Boston Dynamics"},
	}

	signal := curatedListSignal("Boston Dynamics AI Institute", lists)
	if signal.Type != Hardware || signal.Score != 0.9 {
		t.Fatalf("expected hardware/0.9, got %s/%v", signal.Type, signal.Score)
	}
	if signal.Detail["match"] != "substring" {
		t.Fatalf("expected substring match detail, got %v", signal.Detail)
	}
}

func TestCuratedListSignalHardwareCheckedFirst(t *testing.T) {
	// The same entry in two lists must resolve as hardware.
	lists := &Lists{
		HardwareCompanies: []string{"Acme"},
		SoftwareCompanies: []string{"Acme"},
	}

	signal := curatedListSignal("Acme", lists)
	if signal.Type != Hardware {
		t.Fatalf("expected hardware to win the tie, got %s", signal.Type)
	}
}

func TestCuratedListSignalExactBeatsSubstring(t *testing.T) {
	// A software exact match must win over a hardware substring match.
	lists := &Lists{
		HardwareCompanies: []string{"Acme"},
		SoftwareCompanies: []string{"Acme Cloud"},
	}

	signal := curatedListSignal("Acme Cloud", lists)
	if signal.Type != Software || signal.Score != 1.0 {
		t.Fatalf("expected software/1.0, got %s/%v", signal.Type, signal.Score)
	}
}

func TestDomainKeywordSignalHardwareWins(t *testing.T) {
	signal := domainKeywordSignal([]string{"robotics", "automation", "crm"})
	if signal.Type != Hardware {
		t.Fatalf("expected hardware, got %s", signal.Type)
	}
	want := 2.0 / 3.0
	if signal.Score != want {
		t.Fatalf("expected score %v, got %v", want, signal.Score)
	}
}

func TestDomainKeywordSignalTieIsBoth(t *testing.T) {
	signal := domainKeywordSignal([]string{"robotics", "saas"})
	if signal.Type != Both {
		t.Fatalf("expected both, got %s", signal.Type)
	}
	if signal.Score != 0.5 {
		t.Fatalf("expected score 0.5, got %v", signal.Score)
	}
}

func TestDomainKeywordSignalNoKeywords(t *testing.T) {
	signal := domainKeywordSignal(nil)
	if signal.Type != Unknown || signal.Score != 0.0 {
		t.Fatalf("expected unknown/0, got %s/%v", signal.Type, signal.Score)
	}
}

func TestJobContentSignalDominantType(t *testing.T) {
	signal := jobContentSignal("VP of Software Engineering", "own software development and cloud infrastructure")
	if signal.Type != Software {
		t.Fatalf("expected software, got %s", signal.Type)
	}
	if signal.Score != 1.0 {
		t.Fatalf("expected score 1.0 for three phrases, got %v", signal.Score)
	}
}

func TestJobContentSignalMixedContent(t *testing.T) {
	signal := jobContentSignal("Director of Engineering", "lead hardware engineering and software engineering teams")
	if signal.Type != Both {
		t.Fatalf("expected both, got %s", signal.Type)
	}
	want := 2.0 / 6.0
	if signal.Score != want {
		t.Fatalf("expected score %v, got %v", want, signal.Score)
	}
}

func TestJobContentSignalEmptyText(t *testing.T) {
	signal := jobContentSignal("", "")
	if signal.Type != Unknown || signal.Score != 0.0 {
		t.Fatalf("expected unknown/0, got %s/%v", signal.Type, signal.Score)
	}
}
