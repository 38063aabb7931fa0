package loganalysis

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ShortSessionThreshold is the longest session, in seconds, still counted as short.
const ShortSessionThreshold = 5.0

const unknown = "unknown"

var (
	connectionReceivedRe = regexp.MustCompile(`connection received: host=([\w.:-]+) port=(\d+)`)
	authenticationRe     = regexp.MustCompile(`connection authenticated: identity="([^"]*)" method=([^ ]+)`)
	authorizationRe      = regexp.MustCompile(`connection authorized: user=([^ ]+) database=([^ ]+)`)
	disconnectionRe      = regexp.MustCompile(`disconnection: session time: ([0-9:.]+) user=([^ ]*) database=([^ ]*) host=([\w.:-]+) port=(\d+)`)
	hostRe               = regexp.MustCompile(`host=([\w.:-]+)`)
	clientRe             = regexp.MustCompile(`client=([\w.:-]+)`)
)

// Counter counts occurrences per key and remembers first-seen order so
// equal counts sort deterministically.
type Counter struct {
	keys   []string
	counts map[string]int
}

func newCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *Counter) Len() int {
	return len(c.keys)
}

func (c *Counter) Get(key string) int {
	return c.counts[key]
}

type Entry struct {
	Key   string
	Count int
}

// Sorted returns entries by descending count.
func (c *Counter) Sorted() []Entry {
	out := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry{Key: k, Count: c.counts[k]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

type HostStats struct {
	Host                string
	Connections         int
	Authentications     int
	Authorizations      int
	Disconnections      int
	TotalSessionSeconds float64
	ShortSessions       int
	SessionUsers        *Counter
	AuthorizationUsers  *Counter
	AuthMethods         *Counter
}

func newHostStats(host string) *HostStats {
	return &HostStats{
		Host:               host,
		SessionUsers:       newCounter(),
		AuthorizationUsers: newCounter(),
		AuthMethods:        newCounter(),
	}
}

// AverageSessionSeconds is zero when no disconnection was seen.
func (h *HostStats) AverageSessionSeconds() float64 {
	if h.Disconnections == 0 {
		return 0
	}
	return h.TotalSessionSeconds / float64(h.Disconnections)
}

type Summary struct {
	TotalLines          int
	Hosts               []*HostStats
	CheckpointStarts    int
	CheckpointCompletes int
}

type Analyzer struct {
	totalLines          int
	checkpointStarts    int
	checkpointCompletes int
	order               []string
	hosts               map[string]*HostStats
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{hosts: make(map[string]*HostStats)}
}

func (a *Analyzer) host(name string) *HostStats {
	if h, ok := a.hosts[name]; ok {
		return h
	}
	h := newHostStats(name)
	a.hosts[name] = h
	a.order = append(a.order, name)
	return h
}

// AddLine classifies one log line. The first matching rule wins.
func (a *Analyzer) AddLine(line string) {
	a.totalLines++

	if connectionReceivedRe.MatchString(line) {
		a.host(extractHost(line)).Connections++
		return
	}

	if m := authenticationRe.FindStringSubmatch(line); m != nil {
		h := a.host(extractHost(line))
		h.Authentications++
		h.AuthMethods.Inc(m[2])
		return
	}

	if m := authorizationRe.FindStringSubmatch(line); m != nil {
		h := a.host(extractHost(line))
		h.Authorizations++
		h.AuthorizationUsers.Inc(orUnknown(m[1]))
		return
	}

	if m := disconnectionRe.FindStringSubmatch(line); m != nil {
		h := a.host(m[4])
		h.Disconnections++
		h.SessionUsers.Inc(orUnknown(m[2]))
		if seconds, ok := parseSessionTime(m[1]); ok {
			h.TotalSessionSeconds += seconds
			if seconds <= ShortSessionThreshold {
				h.ShortSessions++
			}
		}
		return
	}

	switch {
	case strings.Contains(line, "checkpoint starting"):
		a.checkpointStarts++
	case strings.Contains(line, "checkpoint complete"):
		a.checkpointCompletes++
	}
}

// Summary returns hosts ordered by descending connection count.
func (a *Analyzer) Summary() Summary {
	hosts := make([]*HostStats, len(a.order))
	for i, name := range a.order {
		hosts[i] = a.hosts[name]
	}
	sort.SliceStable(hosts, func(i, j int) bool {
		return hosts[i].Connections > hosts[j].Connections
	})
	return Summary{
		TotalLines:          a.totalLines,
		Hosts:               hosts,
		CheckpointStarts:    a.checkpointStarts,
		CheckpointCompletes: a.checkpointCompletes,
	}
}

// Analyze reads r line by line until EOF. Lines may be of any length.
func Analyze(r io.Reader) (Summary, error) {
	a := NewAnalyzer()
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			a.AddLine(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, err
		}
	}
	return a.Summary(), nil
}

func extractHost(line string) string {
	if m := hostRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := clientRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return unknown
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// parseSessionTime parses H:M:S where seconds may be fractional.
func parseSessionTime(value string) (float64, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, false
	}
	weights := [3]float64{3600, 60, 1}
	total := 0.0
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		total += n * weights[i]
	}
	return total, true
}
