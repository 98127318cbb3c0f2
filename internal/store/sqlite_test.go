package store

import (
	"path/filepath"
	"testing"

	"github.com/ovsov/jobgrader/internal/company"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "classifications.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("closing store: %v", err)
		}
	})
	return s
}

func TestManualOverrideMissing(t *testing.T) {
	s := openTestStore(t)

	override, err := s.ManualOverride("Stripe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if override != nil {
		t.Fatalf("expected no override, got %+v", override)
	}
}

func TestManualOverrideRoundTrip(t *testing.T) {
	s := openTestStore(t)

	signals := map[string]company.Signal{
		"curated_list": {Type: company.Hardware, Score: 1.0, Detail: map[string]string{"list": "hardware"}},
	}
	if err := s.PutManual("Stripe", company.NewClassification(company.Hardware, 1.0, signals, company.SourceManual)); err != nil {
		t.Fatalf("storing override: %v", err)
	}

	override, err := s.ManualOverride("Stripe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if override == nil {
		t.Fatalf("expected an override")
	}
	if override.Type != company.Hardware {
		t.Fatalf("expected hardware, got %s", override.Type)
	}
	if override.Source != company.SourceManual {
		t.Fatalf("expected manual source, got %s", override.Source)
	}
	if override.Signals["curated_list"].Detail["list"] != "hardware" {
		t.Fatalf("signals did not survive the round trip: %+v", override.Signals)
	}
}

func TestUpsertAutoIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	first := company.NewClassification(company.Software, 0.7, nil, company.SourceAuto)
	if err := s.UpsertAuto("Stripe", first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := company.NewClassification(company.Software, 0.9, nil, company.SourceAuto)
	if err := s.UpsertAuto("Stripe", second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := s.AutoCount()
	if err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row after repeated upserts, got %d", count)
	}
}

func TestUpsertAutoDoesNotTouchManualRow(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutManual("Stripe", company.NewClassification(company.Hardware, 1.0, nil, company.SourceManual)); err != nil {
		t.Fatalf("storing override: %v", err)
	}
	if err := s.UpsertAuto("Stripe", company.NewClassification(company.Software, 0.8, nil, company.SourceAuto)); err != nil {
		t.Fatalf("upserting auto row: %v", err)
	}

	override, err := s.ManualOverride("Stripe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if override == nil || override.Type != company.Hardware {
		t.Fatalf("manual row must be untouched by auto upserts, got %+v", override)
	}
}
