// Command automate-wav applies an animated gain envelope to a WAV audio file.
//
// Usage:
//
//	automate-wav -envelope "0=0,0.5=1,3.5=1,4=0" input.wav output.wav
//	automate-wav -envelope "0=0,2=1" -easing smoothstep input.wav output.wav
//	automate-wav -envelope "0=1,1=0.2,2=1" -interpolation constant in.wav out.wav
//	automate-wav -envelope "0=0,1=1" -easing backin -clamp input.wav output.wav
//
// The envelope is a keyframed gain track with times in seconds. Before the
// first and after the last keyframe the boundary gain is held. An optional
// easing function reshapes each segment; the overshooting easings (back,
// elastic) can push the gain outside the keyframed range unless -clamp is
// given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-anim/internal/simdops"
)

const (
	// Number of frames decoded per chunk. Larger chunks reduce I/O overhead
	// and keep the keyframe search hint warm.
	bufferSize = 65536

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	progressInterval = 10 // Print progress every N%

	minRequiredArgs = 2

	// WAV format constants
	wavFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	envelope := flag.String("envelope", "", "Gain keyframes as \"time=gain,time=gain,...\" with times in seconds (required)")
	interpolation := flag.String("interpolation", "linear", "Interpolation between keyframes: linear or constant")
	easingName := flag.String("easing", "", "Easing function reshaping each segment (see -list-easings)")
	clamp := flag.Bool("clamp", false, "Clamp the eased factor to [0, 1] (tames overshooting easings)")
	listEasings := flag.Bool("list-easings", false, "Print the available easing function names and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *listEasings {
		printEasingNames(os.Stdout)
		return nil
	}

	args := flag.Args()
	if len(args) < minRequiredArgs || *envelope == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -envelope \"time=gain,...\" [options] <input.wav> <output.wav>\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -envelope \"0=0,0.5=1,3.5=1,4=0\" input.wav output.wav\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "  %s -envelope \"0=0,2=1\" -easing smoothstep input.wav output.wav\n", filepath.Base(os.Args[0]))
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]

	// Build the gain track from the envelope specification
	track, err := buildEnvelopeTrack(*envelope, *interpolation, *easingName, *clamp)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Envelope: %d keyframes over [%g s, %g s], %s interpolation",
			track.Len(), track.Key(0), track.Key(track.Len()-1), *interpolation)
		if *easingName != "" {
			log.Printf("Easing: %s (clamp=%v)", *easingName, *clamp)
		}
	}

	// Process the file
	startTime := time.Now()
	stats, err := automateWAV(inputPath, outputPath, track.View(), *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	// Print summary
	fmt.Printf("Automated %s -> %s\n", inputPath, outputPath)
	fmt.Printf("  Format: %d Hz, %d channels, %d-bit\n", stats.rate, stats.channels, stats.bitDepth)
	fmt.Printf("  Frames: %d (%.2f s)\n", stats.frames, float64(stats.frames)/float64(stats.rate))
	fmt.Printf("  Gain range applied: [%.4f, %.4f]\n", stats.minGain, stats.maxGain)
	if stats.frames > 0 {
		fmt.Printf("  Mean gain: %.4f\n", stats.gainSum/float64(stats.frames))
	}
	if stats.clipped > 0 {
		fmt.Printf("  Clipped samples: %d\n", stats.clipped)
	}
	fmt.Printf("  Processing time: %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// automateWAV reads inputPath, multiplies every frame by the envelope gain at
// its time position and writes the result to outputPath.
func automateWAV(inputPath, outputPath string, envelope gainEnvelope, verbose bool) (stats *automationStats, err error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Create output encoder
	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output on the success path too; the encoder patches the WAV
	// header sizes during Close.
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	// 3. Initialize processing buffers
	buffers := newAutomationBuffers(input.channels, input.bitDepth, input.format)

	// 4. Initialize tracking
	stats = &automationStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		minGain:  envelope.At(0),
		maxGain:  envelope.At(0),
	}
	progress := newProgressTracker(input.totalFrames, verbose)

	// 5. Main processing loop. The search hint is shared across chunks, so
	// the whole pass walks the envelope keyframes once.
	hint := 0
	invRate := 1.0 / float64(input.rate)
	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		frames := n / input.channels
		data := buffers.intBuffer.Data[:frames*input.channels]

		// Evaluate the envelope per frame, then scale all channels
		applyGainEnvelope(
			data,
			buffers.gains[:frames],
			envelope,
			stats.frames, invRate,
			input.channels,
			buffers.maxVal,
			&hint,
			stats,
		)

		buffers.intBuffer.Data = data
		if err := output.Write(buffers.intBuffer); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.gainSum += simdops.Float64Ops().Sum(buffers.gains[:frames])
		stats.frames += int64(frames)
		progress.reportIfNeeded(stats.frames)

		// Reset buffer for the next read
		buffers.intBuffer.Data = buffers.intBuffer.Data[:cap(buffers.intBuffer.Data)]
	}

	return stats, nil
}
