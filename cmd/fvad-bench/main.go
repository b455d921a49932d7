// Command fvad-bench runs a raw 16-bit PCM file through the detector
// and prints a per-frame timeline plus a segment summary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/fvad-go/fvad/internal/config"
	"github.com/fvad-go/fvad/stream"
)

func main() {
	var (
		mode       = pflag.IntP("mode", "m", -1, "aggressiveness mode 0-3 (overrides config file)")
		sampleRate = pflag.IntP("rate", "r", 0, "sample rate in Hz: 8000, 16000, 32000, or 48000 (overrides config file)")
		frameMs    = pflag.Int("frame-ms", 0, "frame duration in ms: 10, 20, or 30 (overrides config file)")
		configPath = pflag.StringP("config", "c", "", "optional YAML config file")
		verbose    = pflag.BoolP("verbose", "v", false, "log per-frame decisions")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <raw-pcm-file>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath, config.Default())
	if err != nil {
		log.Fatalf("fvad-bench: %v", err)
	}
	if *mode >= 0 {
		cfg.Mode = *mode
	}
	if *sampleRate != 0 {
		cfg.SampleRate = *sampleRate
	}
	if *frameMs != 0 {
		cfg.FrameMs = *frameMs
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("fvad-bench: %v", err)
	}

	path := pflag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("fvad-bench: read %s: %v", path, err)
	}

	proc, err := stream.New(cfg.Mode, cfg.SampleRate, cfg.FrameMs)
	if err != nil {
		log.Fatalf("fvad-bench: %v", err)
	}

	fmt.Printf("file: %s\n", path)
	fmt.Printf("bytes: %d\n", len(data))
	fmt.Printf("sample rate: %d Hz, frame: %d ms, mode: %d\n\n", cfg.SampleRate, cfg.FrameMs, cfg.Mode)

	fmt.Println("timeline (1=speech, 0=silence):")
	totalFrames, speechFrames := 0, 0

	chunk := cfg.SampleRate * cfg.FrameMs / 1000 * 2
	for offset := 0; offset+chunk <= len(data); offset += chunk {
		if _, err := proc.Write(data[offset : offset+chunk]); err != nil {
			log.Fatalf("fvad-bench: frame at byte %d: %v", offset, err)
		}
		totalFrames++

		segs := proc.Segments()
		isSpeech := len(segs) > 0 && segs[len(segs)-1].IsSpeech
		if isSpeech {
			fmt.Print("1")
			speechFrames++
		} else {
			fmt.Print("0")
		}
		if *verbose {
			log.Printf("frame offset=%d speech=%v", offset, isSpeech)
		}
	}
	fmt.Println()

	pct := 0.0
	if totalFrames > 0 {
		pct = float64(speechFrames) * 100 / float64(totalFrames)
	}
	fmt.Printf("\ntotal frames: %d, speech frames: %d (%.1f%%)\n", totalFrames, speechFrames, pct)

	speech := proc.SpeechSegments()
	fmt.Printf("speech segments: %d\n", len(speech))
	for i, seg := range speech {
		fmt.Printf("  %d: %v - %v (%v)\n", i+1, seg.Start, seg.End, seg.End-seg.Start)
	}
}
