package utils

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// GetVideoDuration probes an uploaded file and returns its duration in
// seconds. The duration is persisted on the video document at publish time.
func GetVideoDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to probe video file")
	}
	var probed probeFormat
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return 0, errors.WithMessage(err, "failed to decode probe output")
	}
	duration, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "probe output has no duration")
	}
	return duration, nil
}
