package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	anim "github.com/tphakala/go-anim"
	"github.com/tphakala/go-anim/easing"
	"github.com/tphakala/go-anim/vmath"
)

// gainEnvelope is a scalar gain track sampled at times in seconds.
type gainEnvelope = anim.TrackView[float64, float64, float64, float64]

// easings maps flag names to the easing catalog. Names are matched
// case-insensitively.
var easings = map[string]func(float64) float64{
	"linear":           easing.Linear[float64],
	"step":             easing.Step[float64],
	"smoothstep":       easing.Smoothstep[float64],
	"smootherstep":     easing.Smootherstep[float64],
	"quadraticin":      easing.QuadraticIn[float64],
	"quadraticout":     easing.QuadraticOut[float64],
	"quadraticinout":   easing.QuadraticInOut[float64],
	"cubicin":          easing.CubicIn[float64],
	"cubicout":         easing.CubicOut[float64],
	"cubicinout":       easing.CubicInOut[float64],
	"quarticin":        easing.QuarticIn[float64],
	"quarticout":       easing.QuarticOut[float64],
	"quarticinout":     easing.QuarticInOut[float64],
	"quinticin":        easing.QuinticIn[float64],
	"quinticout":       easing.QuinticOut[float64],
	"quinticinout":     easing.QuinticInOut[float64],
	"sinein":           easing.SineIn[float64],
	"sineout":          easing.SineOut[float64],
	"sineinout":        easing.SineInOut[float64],
	"circularin":       easing.CircularIn[float64],
	"circularout":      easing.CircularOut[float64],
	"circularinout":    easing.CircularInOut[float64],
	"exponentialin":    easing.ExponentialIn[float64],
	"exponentialout":   easing.ExponentialOut[float64],
	"exponentialinout": easing.ExponentialInOut[float64],
	"elasticin":        easing.ElasticIn[float64],
	"elasticout":       easing.ElasticOut[float64],
	"elasticinout":     easing.ElasticInOut[float64],
	"backin":           easing.BackIn[float64],
	"backout":          easing.BackOut[float64],
	"backinout":        easing.BackInOut[float64],
	"bouncein":         easing.BounceIn[float64],
	"bounceout":        easing.BounceOut[float64],
	"bounceinout":      easing.BounceInOut[float64],
}

// easingByName looks up an easing function, case-insensitively.
func easingByName(name string) (func(float64) float64, bool) {
	f, ok := easings[strings.ToLower(name)]
	return f, ok
}

// printEasingNames writes the available easing names, sorted, one per line.
func printEasingNames(w io.Writer) {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// parseEnvelope parses a "time=gain,time=gain,..." specification into
// keyframe slices. Times must be sorted non-decreasing.
func parseEnvelope(spec string) (keys, values []float64, err error) {
	pairs := strings.Split(spec, ",")
	keys = make([]float64, 0, len(pairs))
	values = make([]float64, 0, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		timeStr, gainStr, found := strings.Cut(pair, "=")
		if !found {
			return nil, nil, fmt.Errorf("invalid envelope keyframe %q: expected time=gain", pair)
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(timeStr), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid envelope time %q: %w", timeStr, err)
		}
		gain, err := strconv.ParseFloat(strings.TrimSpace(gainStr), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid envelope gain %q: %w", gainStr, err)
		}
		if len(keys) > 0 && t < keys[len(keys)-1] {
			return nil, nil, fmt.Errorf("envelope keyframes must be sorted by time: %g after %g", t, keys[len(keys)-1])
		}
		keys = append(keys, t)
		values = append(values, gain)
	}
	if len(keys) == 0 {
		return nil, nil, fmt.Errorf("empty envelope specification")
	}
	return keys, values, nil
}

// buildEnvelopeTrack builds the gain track from the CLI flags. The boundary
// gain is held outside the keyframed range.
func buildEnvelopeTrack(spec, interpolation, easingName string, clamp bool) (*anim.Track[float64, float64, float64, float64], error) {
	keys, values, err := parseEnvelope(spec)
	if err != nil {
		return nil, err
	}

	var interpolator anim.Interpolator[float64, float64, float64]
	switch strings.ToLower(interpolation) {
	case "linear":
		interpolator = vmath.Lerp[float64]
	case "constant":
		interpolator = vmath.Select[float64, float64]
	default:
		return nil, fmt.Errorf("unknown interpolation mode %q: expected linear or constant", interpolation)
	}

	if easingName != "" {
		easer, ok := easingByName(easingName)
		if !ok {
			return nil, fmt.Errorf("unknown easing function %q (see -list-easings)", easingName)
		}
		if clamp {
			interpolator = anim.EaseClamped(interpolator, easer)
		} else {
			interpolator = anim.Ease(interpolator, easer)
		}
	}

	return anim.NewTrackWithInterpolator[float64, float64, float64, float64](
		keys, values, interpolator,
		anim.ExtrapolationConstant, anim.ExtrapolationConstant,
	), nil
}

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	totalFrames int64
	format      *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	rate := format.SampleRate
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", rate, channels, bitDepth)
	}

	// Total duration, used only for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalFrames := int64(duration.Seconds() * float64(rate))

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        rate,
		channels:    channels,
		bitDepth:    bitDepth,
		totalFrames: totalFrames,
		format:      format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its WAV encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and its WAV encoder.
func createWAVOutput(path string, rate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	encoder := wav.NewEncoder(outputFile, rate, bitDepth, channels, wavFormatPCM)
	return &wavOutputWriter{file: outputFile, encoder: encoder}, nil
}

// Write encodes one chunk of interleaved samples.
func (w *wavOutputWriter) Write(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	encErr := w.encoder.Close()
	fileErr := w.file.Close()
	if encErr != nil {
		return fmt.Errorf("failed to finalize output file: %w", encErr)
	}
	return fileErr
}

// automationBuffers holds the preallocated buffers for one processing pass.
type automationBuffers struct {
	intBuffer *audio.IntBuffer
	gains     []float64
	maxVal    float64
}

// newAutomationBuffers preallocates the chunk and gain buffers.
func newAutomationBuffers(channels, bitDepth int, format *audio.Format) *automationBuffers {
	return &automationBuffers{
		intBuffer: &audio.IntBuffer{
			Data:           make([]int, bufferSize*channels),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
		gains:  make([]float64, bufferSize),
		maxVal: getMaxValue(bitDepth),
	}
}

// getMaxValue returns the full-scale sample value for a bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// automationStats tracks processing statistics.
type automationStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
	minGain  float64
	maxGain  float64
	gainSum  float64
	clipped  int64
}

// applyGainEnvelope evaluates the envelope once per frame and scales every
// channel of that frame in place, clamping to the sample format's range.
// startFrame positions the chunk on the envelope's time axis.
func applyGainEnvelope(
	data []int,
	gains []float64,
	envelope gainEnvelope,
	startFrame int64, invRate float64,
	channels int,
	maxVal float64,
	hint *int,
	stats *automationStats,
) {
	for i := range gains {
		t := float64(startFrame+int64(i)) * invRate
		gains[i] = envelope.AtHint(t, hint)
		if gains[i] < stats.minGain {
			stats.minGain = gains[i]
		}
		if gains[i] > stats.maxGain {
			stats.maxGain = gains[i]
		}
	}

	for i := range gains {
		base := i * channels
		for ch := range channels {
			v := float64(data[base+ch]) * gains[i]
			if v > maxVal {
				v = maxVal
				stats.clipped++
			} else if v < -maxVal {
				v = -maxVal
				stats.clipped++
			}
			data[base+ch] = int(v)
		}
	}
}

// progressTracker reports processing progress at fixed percentage steps.
type progressTracker struct {
	totalFrames int64
	verbose     bool
	lastPercent int
}

func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{totalFrames: totalFrames, verbose: verbose}
}

// reportIfNeeded logs progress when it crossed the next reporting step.
func (p *progressTracker) reportIfNeeded(processedFrames int64) {
	if !p.verbose || p.totalFrames <= 0 {
		return
	}
	percent := int(processedFrames * 100 / p.totalFrames)
	if percent >= p.lastPercent+progressInterval {
		log.Printf("Progress: %d%%", percent)
		p.lastPercent = percent - percent%progressInterval
	}
}
