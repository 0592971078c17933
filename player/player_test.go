package player

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSoundFontUsesCustomPath(t *testing.T) {
	dir := t.TempDir()
	sf := filepath.Join(dir, "custom.sf2")
	if err := os.WriteFile(sf, []byte("fake"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := FindSoundFont(sf)
	if err != nil {
		t.Fatalf("FindSoundFont: %v", err)
	}
	if got != sf {
		t.Errorf("FindSoundFont(%q) = %q, want %q", sf, got, sf)
	}
}

func TestFindSoundFontCustomPathMissing(t *testing.T) {
	_, err := FindSoundFont("/definitely/not/a/real/path.sf2")
	if err == nil {
		t.Fatalf("expected an error for a missing custom soundfont path")
	}
}

func TestPlayRejectsMissingFluidsynth(t *testing.T) {
	oldPath := os.Getenv("PATH")
	defer os.Setenv("PATH", oldPath)
	os.Setenv("PATH", t.TempDir())

	err := Play(t.Context(), "ignored.mid", "ignored.sf2")
	if err == nil {
		t.Fatalf("expected an error when fluidsynth is not on PATH")
	}
}
