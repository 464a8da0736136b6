package metadata

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"photosync/internal/storage"
)

// probeResult holds the container metadata the cache keeps for a video.
type probeResult struct {
	Location storage.Location
	Year     int
	Rotation int
}

type probeFunc func(ctx context.Context, ffprobe, path string) ([]byte, error)

// runFFprobe returns ffprobe's JSON description of path.
func runFFprobe(ctx context.Context, ffprobe, path string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// locationTags are the format tags that carry an ISO 6709 position.
var locationTags = []string{
	"format.tags.location",
	"format.tags.location-eng",
	`format.tags.com\.apple\.quicktime\.location\.ISO6709`,
}

// yearTags carry the recording date; the first four digits are the year.
var yearTags = []string{
	"format.tags.date",
	"format.tags.creation_time",
}

// parseProbe extracts location, year and rotation from ffprobe JSON.
// Missing fields are left at their zero value.
func parseProbe(data []byte) (probeResult, error) {
	if !gjson.ValidBytes(data) {
		return probeResult{}, fmt.Errorf("invalid ffprobe output")
	}
	doc := gjson.ParseBytes(data)
	var res probeResult

	for _, path := range locationTags {
		if v := doc.Get(path); v.Exists() {
			if loc, err := ParseISO6709(v.String()); err == nil {
				res.Location = loc
				break
			}
		}
	}

	for _, path := range yearTags {
		if v := doc.Get(path); v.Exists() {
			if y, ok := leadingYear(v.String()); ok {
				res.Year = y
				break
			}
		}
	}

	stream := doc.Get(`streams.#(codec_type=="video")`)
	if stream.Exists() {
		res.Rotation = streamRotation(stream)
	}
	return res, nil
}

// streamRotation prefers the legacy rotate tag and falls back to the display
// matrix side data, which counts degrees counterclockwise.
func streamRotation(stream gjson.Result) int {
	if v := stream.Get("tags.rotate"); v.Exists() {
		return normalizeDegrees(int(v.Int()))
	}
	rotation := 0
	stream.Get("side_data_list").ForEach(func(_, sd gjson.Result) bool {
		if r := sd.Get("rotation"); r.Exists() {
			rotation = normalizeDegrees(-int(r.Int()))
			return false
		}
		return true
	})
	return rotation
}

func normalizeDegrees(d int) int {
	return ((d % 360) + 360) % 360
}

func leadingYear(s string) (int, bool) {
	if len(s) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}
