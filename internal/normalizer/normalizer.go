// Package normalizer runs connection-string normalization over a stream of
// lines, for cleaning up files of stored connection strings in one pass.
package normalizer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"mongouri/internal/connstring"
	"mongouri/internal/metrics"
)

// Report summarizes a bulk normalization run.
type Report struct {
	Processed int
	Changed   int
	Unchanged int
	Invalid   int
}

// Service normalizes connection strings line by line.
type Service struct {
	metrics *metrics.Metrics
	dryRun  bool
}

// NewService creates a new normalization service. The metrics instance may be
// nil, in which case no metrics are recorded.
func NewService(m *metrics.Metrics, dryRun bool) *Service {
	return &Service{
		metrics: m,
		dryRun:  dryRun,
	}
}

// Run reads one connection string per line from r, normalizes each, and
// writes the result to w. Blank lines pass through untouched, and lines that
// do not parse are written back unchanged and counted as invalid; a corrupted
// entry must never abort the rest of the file.
func (s *Service) Run(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	start := time.Now()
	report := &Report{}

	scanner := bufio.NewScanner(r)
	// Connection strings with long host lists can exceed the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	writer := bufio.NewWriter(w)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return report, fmt.Errorf("normalization canceled: %w", ctx.Err())
		default:
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			s.writeLine(writer, line)
			continue
		}

		report.Processed++
		normalized := s.normalizeLine(trimmed, report)
		s.writeLine(writer, normalized)
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read input: %w", err)
	}
	if !s.dryRun {
		if err := writer.Flush(); err != nil {
			return report, fmt.Errorf("failed to write output: %w", err)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordDuration(time.Since(start))
	}

	return report, nil
}

func (s *Service) normalizeLine(line string, report *Report) string {
	cs, err := connstring.Parse(line)
	if err != nil {
		report.Invalid++
		if s.metrics != nil {
			s.metrics.IncrementProcessed("invalid")
			s.metrics.IncrementInvalid()
		}
		return line
	}

	if s.metrics != nil {
		cs.SetWarningHandler(func(string, ...any) {
			s.metrics.IncrementDecodeWarnings()
		})
		// Touch the credential slots so undecodable values are counted.
		_ = cs.Username()
		_ = cs.Password()
	}

	before := len(cs.Params())
	normalized := cs.DeduplicateQueryParameters()
	collapsed := before - len(cs.Params())

	if normalized == line {
		report.Unchanged++
		if s.metrics != nil {
			s.metrics.IncrementProcessed("unchanged")
		}
		return normalized
	}

	report.Changed++
	if s.metrics != nil {
		s.metrics.IncrementProcessed("changed")
		s.metrics.IncrementChanged()
		s.metrics.AddDuplicateKeysCollapsed(collapsed)
	}
	return normalized
}

func (s *Service) writeLine(w *bufio.Writer, line string) {
	if s.dryRun {
		return
	}
	// bufio.Writer errors surface on Flush.
	_, _ = w.WriteString(line)
	_ = w.WriteByte('\n')
}

// String renders the report as a one-line summary.
func (r *Report) String() string {
	return fmt.Sprintf("%d processed: %d changed, %d unchanged, %d invalid",
		r.Processed, r.Changed, r.Unchanged, r.Invalid)
}
