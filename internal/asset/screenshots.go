package asset

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FrameExtractor grabs count still frames from a video file, writing
// frame n to dst(n). It returns the paths written. On error it must
// leave no partial output behind.
type FrameExtractor interface {
	ExtractFrames(ctx context.Context, srcPath string, count int, dst func(n int) string) ([]string, error)
}

type ffmpegExtractor struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

func NewFrameExtractor(ffmpegPath, ffprobePath string, timeout time.Duration) FrameExtractor {
	return &ffmpegExtractor{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ExtractFrames probes the video duration and grabs count frames at
// evenly spaced offsets across it.
func (e *ffmpegExtractor) ExtractFrames(ctx context.Context, srcPath string, count int, dst func(n int) string) ([]string, error) {
	duration, err := e.probeDuration(ctx, srcPath)
	if err != nil {
		return nil, err
	}

	var written []string
	for n := 1; n <= count; n++ {
		offset := duration * float64(n) / float64(count+1)
		path := dst(n)
		if err := e.grabFrame(ctx, srcPath, offset, path); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return nil, fmt.Errorf("extract frame %d: %w", n, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (e *ffmpegExtractor) probeDuration(ctx context.Context, srcPath string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		srcPath,
	)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("probe video duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
	if err != nil || duration <= 0 {
		return 0, fmt.Errorf("probe video duration: unusable output %q", out.String())
	}
	return duration, nil
}

func (e *ffmpegExtractor) grabFrame(ctx context.Context, srcPath string, offset float64, dstPath string) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.ffmpegPath,
		"-ss", fmt.Sprintf("%.3f", offset),
		"-i", srcPath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:%d", thumbnailSize, thumbnailSize),
		"-y",
		dstPath,
	)
	if err := cmd.Run(); err != nil {
		os.Remove(dstPath)
		return err
	}
	return nil
}
