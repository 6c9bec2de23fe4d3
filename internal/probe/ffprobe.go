// Package probe extracts media metadata (duration, resolution) from uploaded
// files by shelling out to ffprobe.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Prober runs ffprobe against local files
type Prober struct {
	ffprobePath string
}

// NewProber creates a prober using the given ffprobe binary path.
// An empty path falls back to "ffprobe" on PATH.
func NewProber(ffprobePath string) *Prober {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Prober{ffprobePath: ffprobePath}
}

// Result holds the probed attributes of a media file
type Result struct {
	Duration float64
	Width    int
	Height   int
}

// Resolution formats the probed dimensions as "WxH", or empty when the file
// has no video stream
func (r Result) Resolution() string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ffprobeOutput mirrors the JSON emitted by
// ffprobe -print_format json -show_format -show_streams
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Probe runs ffprobe on the file at path and parses its output
func (p *Prober) Probe(ctx context.Context, path string) (Result, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("run ffprobe stderr=`%s`: %w", stderr.String(), err)
	}

	return parseOutput(stdout.Bytes())
}

// ProbeDuration probes only the duration, for audio uploads
func (p *Prober) ProbeDuration(ctx context.Context, path string) (float64, error) {
	result, err := p.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	return result.Duration, nil
}

func parseOutput(raw []byte) (Result, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return Result{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var result Result
	if out.Format.Duration != "" {
		duration, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return Result{}, fmt.Errorf("parse duration %q: %w", out.Format.Duration, err)
		}
		result.Duration = duration
	}

	for _, stream := range out.Streams {
		if stream.CodecType == "video" && stream.Width > 0 {
			result.Width = stream.Width
			result.Height = stream.Height
			break
		}
	}

	return result, nil
}
