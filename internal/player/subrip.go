package player

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var srtTiming = regexp.MustCompile(`^(\d{1,2}:\d{2}:\d{2}),(\d{3})\s*-->\s*(\d{1,2}:\d{2}:\d{2}),(\d{3})(.*)$`)

// SubRipToWebVTT rewrites a SubRip track as WebVTT.
// Cue numbers are dropped and the comma in timestamps becomes a dot.
func SubRipToWebVTT(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("WEBVTT\n\n"); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	var pending string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		if m := srtTiming.FindStringSubmatch(line); m != nil {
			// the buffered line was the cue number
			pending = ""
			if _, err := bw.WriteString(m[1] + "." + m[2] + " --> " + m[3] + "." + m[4] + m[5] + "\n"); err != nil {
				return errors.Wrap(err, "failed to write cue timing")
			}
			continue
		}

		if pending != "" {
			if _, err := bw.WriteString(pending + "\n"); err != nil {
				return errors.Wrap(err, "failed to write cue")
			}
			pending = ""
		}

		if isCueNumber(line) {
			pending = line
			continue
		}

		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "failed to write cue")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read subrip track")
	}

	if pending != "" {
		if _, err := bw.WriteString(pending + "\n"); err != nil {
			return errors.Wrap(err, "failed to write cue")
		}
	}

	return bw.Flush()
}

func isCueNumber(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
