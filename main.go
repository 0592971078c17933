package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"fretpath/decode"
	"fretpath/display"
	"fretpath/fingering"
	"fretpath/fretboard"
	"fretpath/midiexport"
	"fretpath/player"
	"fretpath/sheet"
	"fretpath/strudel"
)

var soundFontPath string

func main() {
	args := parseArgs(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]

	switch command {
	case "solve":
		if len(args) < 2 {
			fmt.Println("Error: solve requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		solveSheet(args[1])
	case "tab":
		if len(args) < 2 {
			fmt.Println("Error: tab requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		tabSheet(args[1])
	case "midi":
		if len(args) < 2 {
			fmt.Println("Error: midi requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		outputPath := ""
		if len(args) >= 3 {
			outputPath = args[2]
		}
		exportMIDI(args[1], outputPath)
	case "strudel":
		if len(args) < 2 {
			fmt.Println("Error: strudel requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		outputPath := ""
		if len(args) >= 3 {
			outputPath = args[2]
		}
		exportStrudel(args[1], outputPath)
	case "play":
		if len(args) < 2 {
			fmt.Println("Error: play requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		playSheet(args[1])
	case "watch":
		if len(args) < 2 {
			fmt.Println("Error: watch requires a chord sheet file")
			printUsage()
			os.Exit(1)
		}
		watchSheet(args[1])
	case "soundfonts":
		listSoundFonts()
	default:
		printUsage()
		os.Exit(1)
	}
}

func parseArgs(args []string) []string {
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--soundfont" || arg == "-sf" {
			if i+1 < len(args) {
				soundFontPath = args[i+1]
				i++
			} else {
				fmt.Println("Error: --soundfont requires a path")
				os.Exit(1)
			}
		} else if strings.HasPrefix(arg, "--soundfont=") {
			soundFontPath = strings.TrimPrefix(arg, "--soundfont=")
		} else if strings.HasPrefix(arg, "-sf=") {
			soundFontPath = strings.TrimPrefix(arg, "-sf=")
		} else if arg == "--help" || arg == "-h" {
			printUsage()
			os.Exit(0)
		} else {
			remaining = append(remaining, arg)
		}
	}

	if soundFontPath == "" {
		soundFontPath = os.Getenv("SOUNDFONT")
	}

	return remaining
}

func solvedSequence(filename string) (*fretboard.Graph, []fingering.Fingering) {
	s, err := sheet.Load(filename)
	if err != nil {
		fmt.Printf("Error loading sheet: %v\n", err)
		os.Exit(1)
	}

	g, err := s.Graph()
	if err != nil {
		fmt.Printf("Error building fretboard: %v\n", err)
		os.Exit(1)
	}

	chords, err := s.Chords()
	if err != nil {
		fmt.Printf("Error reading chords: %v\n", err)
		os.Exit(1)
	}

	sequence, err := decode.Decode(rootContext(), g, chords, nil)
	if err != nil {
		fmt.Printf("Error solving: %v\n", err)
		os.Exit(1)
	}

	return g, sequence
}

func solveSheet(filename string) {
	g, sequence := solvedSequence(filename)
	display.ShowSummary(g, sequence)
}

func tabSheet(filename string) {
	g, sequence := solvedSequence(filename)
	fmt.Println(display.Tablature(sequence, g.NStrings()))
}

func exportMIDI(filename, outputPath string) {
	_, sequence := solvedSequence(filename)

	if outputPath == "" {
		base := filepath.Base(filename)
		ext := filepath.Ext(base)
		outputPath = strings.TrimSuffix(base, ext) + ".mid"
	}

	if err := midiexport.Write(outputPath, sequence, midiexport.DefaultOptions()); err != nil {
		fmt.Printf("Error writing MIDI: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✓ Exported to: %s\n", outputPath)
}

func exportStrudel(filename, outputPath string) {
	_, sequence := solvedSequence(filename)
	code := strudel.Export(sequence, 100)

	if outputPath == "" {
		base := filepath.Base(filename)
		ext := filepath.Ext(base)
		outputPath = strings.TrimSuffix(base, ext) + ".strudel.js"
	}

	if err := os.WriteFile(outputPath, []byte(code), 0644); err != nil {
		fmt.Printf("Error writing Strudel file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✓ Exported to: %s\n", outputPath)
	fmt.Println("\nPaste the code into https://strudel.cc to play!")
}

func playSheet(filename string) {
	_, sequence := solvedSequence(filename)

	tmpFile, err := os.CreateTemp("", "fretpath-*.mid")
	if err != nil {
		fmt.Printf("Error creating temp file: %v\n", err)
		os.Exit(1)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	if err := midiexport.Write(tmpFile.Name(), sequence, midiexport.DefaultOptions()); err != nil {
		fmt.Printf("Error generating MIDI: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("♪ Playing... (Press Ctrl+C to stop)")
	if err := player.Play(rootContext(), tmpFile.Name(), soundFontPath); err != nil {
		fmt.Printf("Error playing: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✓ Playback complete!")
}

func watchSheet(filename string) {
	g, sequence := solvedSequence(filename)

	m := display.NewWatchModel(g, sequence)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running watch view: %v\n", err)
		os.Exit(1)
	}
}

func listSoundFonts() {
	fmt.Println("Available SoundFonts:")
	fmt.Println()

	found := player.ListSoundFonts()

	if len(found) == 0 {
		fmt.Println("  No SoundFonts found!")
		fmt.Println()
		fmt.Println("Install the default SoundFont:")
		fmt.Println("  sudo apt install fluid-soundfont-gm")
		fmt.Println()
		fmt.Println("Place .sf2 files in ./soundfonts/ or specify with --soundfont flag")
	} else {
		for _, sf := range found {
			fmt.Printf("  %s\n", sf)
		}
		fmt.Println()
		fmt.Println("Use with: fretpath play --soundfont <path> <sheet.yaml>")
	}
}

func rootContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	return ctx
}

func printUsage() {
	fmt.Println("fretpath - guitar fingering solver")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fretpath solve <sheet.yaml>               Solve and print a summary")
	fmt.Println("  fretpath tab <sheet.yaml>                 Print ASCII tablature")
	fmt.Println("  fretpath midi <sheet.yaml> [out.mid]      Export to a MIDI file")
	fmt.Println("  fretpath strudel <sheet.yaml> [out.js]    Export to Strudel code")
	fmt.Println("  fretpath play <sheet.yaml>                Play through FluidSynth")
	fmt.Println("  fretpath watch <sheet.yaml>                Step through chords interactively")
	fmt.Println("  fretpath soundfonts                       List available SoundFonts")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --soundfont, -sf <path>   Use custom SoundFont (.sf2 file)")
	fmt.Println("  --help, -h                Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SOUNDFONT                 Default SoundFont path")
}
