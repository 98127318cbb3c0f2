package cmd

import (
	"os"
	"testing"
)

func TestReadConfigDiscoversDefaultFile(t *testing.T) {
	payload := `
min-score: 42
drop-filtered: true
profile:
  target-seniority: ["vp"]
`
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/"+app+".yaml", []byte(payload), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Chdir(dir)

	cfgFile = ""
	if err := readConfig(); err != nil {
		t.Fatalf("default config discovery failed: %v", err)
	}

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unmarshalling config: %v", err)
	}
	if config.MinScore != 42 {
		t.Fatalf("expected min-score 42, got %d", config.MinScore)
	}
	if !config.DropFiltered {
		t.Fatalf("expected drop-filtered to be set")
	}
	if config.Profile == nil || len(config.Profile.TargetSeniority) != 1 {
		t.Fatalf("expected the profile to decode, got %+v", config.Profile)
	}
}
