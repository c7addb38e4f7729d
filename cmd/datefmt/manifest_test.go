package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "datefmt.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestResolvePatternFlagWins(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[format]\npattern = \"dd mmmm yyyy\"\n")

	got, err := resolvePattern("m/d/yy", dir)
	if err != nil {
		t.Fatalf("resolvePattern: %v", err)
	}
	if got != "m/d/yy" {
		t.Errorf("resolvePattern = %q, want flag value", got)
	}
}

func TestResolvePatternFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[format]\npattern = \"dd mmmm yyyy\"\n")

	got, err := resolvePattern("", dir)
	if err != nil {
		t.Fatalf("resolvePattern: %v", err)
	}
	if got != "dd mmmm yyyy" {
		t.Errorf("resolvePattern = %q, want manifest value", got)
	}
}

func TestResolvePatternWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[format]\npattern = \"mmm-yyyy-dd\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := resolvePattern("", nested)
	if err != nil {
		t.Fatalf("resolvePattern: %v", err)
	}
	if got != "mmm-yyyy-dd" {
		t.Errorf("resolvePattern = %q, want manifest value from parent", got)
	}
}

func TestResolvePatternInvalidManifestPattern(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[format]\npattern = \"yyy-mm-dd\"\n")

	_, err := resolvePattern("", dir)
	if err == nil {
		t.Fatalf("invalid manifest pattern must fail")
	}
	if got := err.Error(); !strings.Contains(got, path) {
		t.Errorf("error should name the manifest file, got %q", got)
	}
}

func TestResolvePatternDefault(t *testing.T) {
	got, err := resolvePattern("", t.TempDir())
	if err != nil {
		t.Fatalf("resolvePattern: %v", err)
	}
	if got != defaultPattern {
		t.Errorf("resolvePattern = %q, want %q", got, defaultPattern)
	}
}
