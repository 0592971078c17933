// Package player renders a Standard MIDI File to audio through FluidSynth,
// locating a SoundFont the same way the teacher's player package does:
// a project-local ./soundfonts directory first, then the user's local
// share directory, then well-known system install locations.
package player

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Play renders midiPath through FluidSynth using soundFontPath, blocking
// until playback finishes or ctx is cancelled. If soundFontPath is empty,
// Play locates one with FindSoundFont.
func Play(ctx context.Context, midiPath, soundFontPath string) error {
	if _, err := exec.LookPath("fluidsynth"); err != nil {
		return fmt.Errorf("player: fluidsynth not found on PATH: %w", err)
	}

	soundFont := soundFontPath
	if soundFont == "" {
		found, err := FindSoundFont("")
		if err != nil {
			return err
		}
		soundFont = found
	}

	cmd := exec.CommandContext(ctx, "fluidsynth",
		"-ni",
		"-q",
		"-r", "48000",
		"-g", "1.0",
		soundFont,
		midiPath,
	)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("player: fluidsynth: %w", err)
	}
	return nil
}

// localSoundFontGlobs are checked, in order, before any system location.
var localSoundFontGlobs = []string{"./soundfonts/*.sf2", "./soundfonts/*.SF2"}

// systemSoundFonts are well-known install locations on Linux, checked in
// order after the local and per-user directories.
var systemSoundFonts = []string{
	"/usr/share/sounds/sf2/FluidR3_GM.sf2",
	"/usr/share/sounds/sf2/default.sf2",
	"/usr/share/soundfonts/FluidR3_GM.sf2",
	"/usr/share/soundfonts/default.sf2",
	"/usr/share/soundfonts/default-GM.sf2",
	"/usr/share/sounds/sf2/TimGM6mb.sf2",
}

// FindSoundFont locates a SoundFont file. If customPath is non-empty, it is
// used directly (and must exist). Otherwise, the local project directory,
// the user's local share directory, and common system locations are tried
// in order.
func FindSoundFont(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("player: soundfont not found: %s", customPath)
		}
		return customPath, nil
	}

	for _, pattern := range localSoundFontGlobs {
		if matches, err := filepath.Glob(pattern); err == nil && len(matches) > 0 {
			return matches[0], nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, dir := range []string{
			filepath.Join(home, ".local/share/soundfonts"),
			filepath.Join(home, "soundfonts"),
		} {
			if matches, err := filepath.Glob(filepath.Join(dir, "*.sf2")); err == nil && len(matches) > 0 {
				return matches[0], nil
			}
		}
	}

	for _, loc := range systemSoundFonts {
		if _, err := os.Stat(loc); err == nil {
			return loc, nil
		}
	}

	for _, pattern := range []string{"/usr/share/sounds/sf2/*.sf2", "/usr/share/soundfonts/*.sf2"} {
		if matches, err := filepath.Glob(pattern); err == nil && len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", fmt.Errorf("player: no SoundFont (.sf2) found; install fluid-soundfont-gm " +
		"or place a .sf2 file in ./soundfonts/")
}

// ListSoundFonts returns every SoundFont this process can find, across all
// of the locations FindSoundFont checks, for a user-facing listing.
func ListSoundFonts() []string {
	var found []string
	seen := make(map[string]bool)

	add := func(matches []string) {
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}

	for _, pattern := range localSoundFontGlobs {
		if matches, err := filepath.Glob(pattern); err == nil {
			add(matches)
		}
	}
	for _, loc := range systemSoundFonts {
		if _, err := os.Stat(loc); err == nil {
			add([]string{loc})
		}
	}
	for _, pattern := range []string{"/usr/share/sounds/sf2/*.sf2", "/usr/share/soundfonts/*.sf2"} {
		if matches, err := filepath.Glob(pattern); err == nil {
			add(matches)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, dir := range []string{
			filepath.Join(home, ".local/share/soundfonts"),
			filepath.Join(home, "soundfonts"),
		} {
			if matches, err := filepath.Glob(filepath.Join(dir, "*.sf2")); err == nil {
				add(matches)
			}
		}
	}

	return found
}
