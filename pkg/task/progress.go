// pkg/task/progress.go
package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Progress is a point-in-time snapshot of a running transaction.
type Progress struct {
	Fraction float64 // 0..1
	Status   string  // short phase label
	Detail   string  // last relevant output line
}

// ProgressFunc receives progress updates while a command runs.
type ProgressFunc func(Progress)

// OutputFunc receives every output line of a running command.
type OutputFunc func(line string)

var (
	percentPattern = regexp.MustCompile(`\((\d+)%\)`)
	sizePattern    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*[KMGT]?i?B)/(\d+(?:\.\d+)?\s*[KMGT]?i?B)`)
)

// pacman prints these phase banners during a transaction. The fractions
// mirror how far into a typical transaction each phase occurs.
var phases = []struct {
	marker   string
	fraction float64
	status   string
}{
	{"resolving dependencies", 0.05, "Resolving dependencies"},
	{"checking dependencies", 0.10, "Checking dependencies"},
	{"retrieving packages", 0.15, "Retrieving packages"},
	{"checking keyring", 0.20, "Checking package integrity"},
	{"loading package files", 0.25, "Loading packages"},
	{"checking for conflicts", 0.30, "Checking for conflicts"},
	{"checking available disk space", 0.35, "Checking disk space"},
	{"running pre-transaction hooks", 0.40, "Running pre-transaction hooks"},
	{"processing package changes", 0.45, "Processing package changes"},
	{"running post-transaction hooks", 0.90, "Running post-transaction hooks"},
}

// Classify maps a pacman output line to a progress snapshot. The second
// return value is false for lines that carry no progress information.
func Classify(line string) (Progress, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	if m := percentPattern.FindStringSubmatch(trimmed); m != nil {
		pct, _ := strconv.Atoi(m[1])
		frac := float64(pct) / 100.0
		switch {
		case strings.Contains(lower, "downloading"):
			return Progress{0.1 + frac*0.3, "Downloading", trimmed}, true
		case strings.Contains(lower, "installing"):
			return Progress{0.4 + frac*0.5, "Installing", trimmed}, true
		default:
			return Progress{0.1 + frac*0.8, "Processing", trimmed}, true
		}
	}

	if m := sizePattern.FindStringSubmatch(trimmed); m != nil {
		current, err1 := ParseSize(m[1])
		total, err2 := ParseSize(m[2])
		if err1 == nil && err2 == nil && total > 0 {
			frac := current / total
			detail := fmt.Sprintf("Downloaded %s of %s", m[1], m[2])
			return Progress{0.1 + frac*0.3, "Downloading", detail}, true
		}
	}

	for _, ph := range phases {
		if strings.Contains(lower, ph.marker) {
			return Progress{ph.fraction, ph.status, trimmed}, true
		}
	}
	return Progress{}, false
}

// ParseSize converts a pacman size string like "4.2 MiB" or "913KiB" to
// bytes.
func ParseSize(s string) (float64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "KIB"), strings.HasSuffix(s, "KB"):
		mult = 1024
	case strings.HasSuffix(s, "MIB"), strings.HasSuffix(s, "MB"):
		mult = 1024 * 1024
	case strings.HasSuffix(s, "GIB"), strings.HasSuffix(s, "GB"):
		mult = 1024 * 1024 * 1024
	case strings.HasSuffix(s, "TIB"), strings.HasSuffix(s, "TB"):
		mult = 1024 * 1024 * 1024 * 1024
	}

	num := strings.TrimRight(s, "KMGTIB ")
	num = strings.TrimSpace(num)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	return v * mult, nil
}
