package loganalysis

import (
	"fmt"
	"io"
	"strings"
)

func formatPercentage(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

func joinEntries(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (%d)", e.Key, e.Count)
	}
	return strings.Join(parts, ", ")
}

// WriteReport prints a human-readable breakdown of summary to w.
func WriteReport(w io.Writer, summary Summary) error {
	p := &printer{w: w}

	if summary.TotalLines == 0 {
		p.line("No log lines were processed.")
		return p.err
	}

	p.line("Processed %d lines.", summary.TotalLines)
	if summary.CheckpointStarts > 0 || summary.CheckpointCompletes > 0 {
		p.line("Checkpoint events: %d start(s), %d complete(s).", summary.CheckpointStarts, summary.CheckpointCompletes)
	}

	if len(summary.Hosts) == 0 {
		p.line("No connection activity detected.")
		return p.err
	}

	for _, h := range summary.Hosts {
		p.line("\nHost %s", h.Host)
		p.line("  Connections received: %d", h.Connections)
		p.line("  Authenticated: %d", h.Authentications)
		p.line("  Authorized: %d", h.Authorizations)
		p.line("  Disconnections: %d", h.Disconnections)
		p.line("  Short sessions (<= %gs): %d (%s of disconnections)",
			ShortSessionThreshold, h.ShortSessions, formatPercentage(h.ShortSessions, h.Disconnections))
		p.line("  Average session length: %.3fs", h.AverageSessionSeconds())

		if h.AuthorizationUsers.Len() > 0 {
			p.line("  Authorized users: %s", joinEntries(h.AuthorizationUsers.Sorted()))
		}
		if h.SessionUsers.Len() > 0 {
			p.line("  Users ending sessions: %s", joinEntries(h.SessionUsers.Sorted()))
		}
		if h.AuthMethods.Len() > 0 {
			p.line("  Auth methods: %s", joinEntries(h.AuthMethods.Sorted()))
		}

		if h.Disconnections > 0 && float64(h.ShortSessions)/float64(h.Disconnections) > 0.8 {
			p.line("  Insight: The majority of sessions are very short. Consider using connection pooling or")
			p.line("           reviewing application code to ensure connections are reused effectively.")
		}
		if h.Authorizations < h.Connections {
			p.line("  Insight: %d connection(s) did not reach authorization.", h.Connections-h.Authorizations)
		}
	}
	return p.err
}

// printer keeps the first write error and drops later output.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
