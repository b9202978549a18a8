package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdpcardoso/ribs/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "policy: extend\ncolor: never\nbackup: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy != PolicyExtend {
		t.Errorf("policy: got %v, want extend", cfg.Policy)
	}
	if cfg.Color != report.ModeNever {
		t.Errorf("color: got %v, want never", cfg.Color)
	}
	if !cfg.Backup {
		t.Errorf("backup: got false, want true")
	}
	if cfg.Verbose {
		t.Errorf("verbose: got true, want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "verbose: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy != PolicyStrict {
		t.Errorf("policy: got %v, want strict default", cfg.Policy)
	}
	if cfg.Color != report.ModeAuto {
		t.Errorf("color: got %v, want auto default", cfg.Color)
	}
	if !cfg.Verbose {
		t.Errorf("verbose: got false, want true")
	}
}

func TestLoadBadPolicy(t *testing.T) {
	path := writeConfig(t, "policy: lenient\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("loaded, want error")
	}
	if !strings.Contains(err.Error(), "bad policy") {
		t.Errorf("got %v, want a bad policy error", err)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist", err)
	}
}

func TestResolveEnv(t *testing.T) {
	path := writeConfig(t, "policy: extend\n")
	t.Setenv(Env, path)
	cfg, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Policy != PolicyExtend {
		t.Errorf("policy: got %v, want extend", cfg.Policy)
	}
}

type policyTextTest struct {
	text   string
	policy Policy
}

var policyTextTests = []policyTextTest{
	{"strict", PolicyStrict},
	{"extend", PolicyExtend},
}

func TestPolicyText(t *testing.T) {
	for _, tc := range policyTextTests {
		p, err := ParsePolicy(tc.text)
		if err != nil {
			t.Errorf("%s: %v", tc.text, err)
			continue
		}
		if p != tc.policy {
			t.Errorf("%s: got %v, want %v", tc.text, p, tc.policy)
		}
		if p.String() != tc.text {
			t.Errorf("%v: String %q, want %q", tc.policy, p.String(), tc.text)
		}
	}
	if _, err := ParsePolicy("lenient"); err == nil {
		t.Errorf("expected error for unknown policy")
	}
}
