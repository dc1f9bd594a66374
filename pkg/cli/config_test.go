package cli

import (
	"path/filepath"
	"testing"
)

func TestConfigProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.AddProfile("broadcast", &Profile{PolicyFile: "broadcast.yaml", BitrateKbps: 320}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.UseProfile("broadcast"); err != nil {
		t.Fatal(err)
	}

	// Reload from disk and resolve.
	cfg2, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg2.ResolveProfile("")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "broadcast" || p.BitrateKbps != 320 {
		t.Fatalf("resolved profile %+v", p)
	}

	if err := cfg2.DeleteProfile("broadcast"); err != nil {
		t.Fatal(err)
	}
	if cfg2.CurrentProfile != "" {
		t.Error("current profile not cleared on delete")
	}
}

func TestResolveProfileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadConfigWithPath(path)
	if err != nil {
		t.Fatal(err)
	}

	// No profiles at all: empty name resolves to nil, not an error.
	p, err := cfg.ResolveProfile("")
	if err != nil || p != nil {
		t.Fatalf("got %+v, %v; want nil, nil", p, err)
	}

	// An explicit unknown name is an error.
	if _, err := cfg.ResolveProfile("nope"); err == nil {
		t.Error("unknown profile name accepted")
	}
}
