package trace

import (
	"fmt"
	"strings"
	"time"
)

// Report is the end-of-run summary computed when a root span finishes.
type Report struct {
	TraceID       string         `json:"trace_id"`
	Service       string         `json:"service"`
	StartedAt     time.Time      `json:"started_at"`
	DurationMS    float64        `json:"duration_ms"`
	TotalEntries  int            `json:"total_entries"`
	FunctionCalls int            `json:"function_calls"`
	APICalls      int            `json:"api_calls"`
	Errors        int            `json:"errors"`
	Timeline      []TimelineRow  `json:"timeline"`
	APICallPairs  []APICallPair  `json:"api_call_pairs"`
	ErrorsDigest  []ErrorSummary `json:"errors_digest"`
}

// TimelineRow is one depth-indented line of the trace timeline.
type TimelineRow struct {
	Timestamp    int64  `json:"timestamp"`
	Depth        int    `json:"depth"`
	EventType    string `json:"event_type"`
	FunctionName string `json:"function_name,omitempty"`
}

// APICallPair matches an api_call_start with its api_call_end.
type APICallPair struct {
	FunctionName string   `json:"function_name"`
	StartedAt    int64    `json:"started_at"`
	EndedAt      int64    `json:"ended_at"`
	DurationMS   *float64 `json:"duration_ms,omitempty"`
}

// ErrorSummary is one entry in the errors digest.
type ErrorSummary struct {
	Timestamp    int64  `json:"timestamp"`
	FunctionName string `json:"function_name,omitempty"`
	Message      string `json:"message"`
	StackExcerpt string `json:"stack_excerpt,omitempty"`
}

// stackExcerptLines caps the stack portion carried into the digest.
const stackExcerptLines = 5

func buildReport(traceID, service string, startedAt time.Time, dur time.Duration, entries []Entry) *Report {
	r := &Report{
		TraceID:      traceID,
		Service:      service,
		StartedAt:    startedAt,
		DurationMS:   float64(dur.Microseconds()) / 1000,
		TotalEntries: len(entries),
	}

	type openCall struct {
		idx  int
		name string
	}
	var openCalls []openCall

	for i, e := range entries {
		r.Timeline = append(r.Timeline, TimelineRow{
			Timestamp:    e.Timestamp,
			Depth:        e.depth,
			EventType:    e.EventType,
			FunctionName: e.FunctionName,
		})

		switch e.EventType {
		case EventFunctionStart:
			r.FunctionCalls++
		case EventAPICallStart:
			r.APICalls++
			openCalls = append(openCalls, openCall{idx: i, name: e.FunctionName})
		case EventAPICallEnd:
			// Pair with the unmatched start sharing the longest
			// function_name prefix.
			best, bestLen := -1, -1
			for j, oc := range openCalls {
				l := commonPrefixLen(oc.name, e.FunctionName)
				if l > bestLen {
					best, bestLen = j, l
				}
			}
			if best >= 0 {
				start := entries[openCalls[best].idx]
				r.APICallPairs = append(r.APICallPairs, APICallPair{
					FunctionName: start.FunctionName,
					StartedAt:    start.Timestamp,
					EndedAt:      e.Timestamp,
					DurationMS:   e.DurationMS,
				})
				openCalls = append(openCalls[:best], openCalls[best+1:]...)
			}
		case EventError:
			r.Errors++
			r.ErrorsDigest = append(r.ErrorsDigest, ErrorSummary{
				Timestamp:    e.Timestamp,
				FunctionName: e.FunctionName,
				Message:      payloadMessage(e.Payload),
				StackExcerpt: excerptStack(e.StackTrace),
			})
		}
	}
	return r
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func payloadMessage(payload map[string]any) string {
	if payload == nil {
		return ""
	}
	if msg, ok := payload["message"].(string); ok {
		return msg
	}
	if msg, ok := payload["error"].(string); ok {
		return msg
	}
	return ""
}

func excerptStack(stack string) string {
	if stack == "" {
		return ""
	}
	lines := strings.Split(stack, "\n")
	if len(lines) > stackExcerptLines {
		lines = lines[:stackExcerptLines]
	}
	return strings.Join(lines, "\n")
}

// RenderText produces a fixed-column terminal rendering of the report.
func (r *Report) RenderText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trace %s (%s)\n", r.TraceID, r.Service)
	fmt.Fprintf(&sb, "  entries=%d functions=%d api_calls=%d errors=%d duration_ms=%.1f\n",
		r.TotalEntries, r.FunctionCalls, r.APICalls, r.Errors, r.DurationMS)

	sb.WriteString("timeline:\n")
	for _, row := range r.Timeline {
		fmt.Fprintf(&sb, "  %-14d %s%-16s %s\n",
			row.Timestamp, strings.Repeat("  ", row.Depth), row.EventType, row.FunctionName)
	}

	if len(r.APICallPairs) > 0 {
		sb.WriteString("api calls:\n")
		for _, p := range r.APICallPairs {
			dur := "-"
			if p.DurationMS != nil {
				dur = fmt.Sprintf("%.1fms", *p.DurationMS)
			}
			fmt.Fprintf(&sb, "  %-40s %8s\n", p.FunctionName, dur)
		}
	}

	if len(r.ErrorsDigest) > 0 {
		sb.WriteString("errors:\n")
		for _, e := range r.ErrorsDigest {
			fmt.Fprintf(&sb, "  [%d] %s: %s\n", e.Timestamp, e.FunctionName, e.Message)
			if e.StackExcerpt != "" {
				for _, line := range strings.Split(e.StackExcerpt, "\n") {
					fmt.Fprintf(&sb, "      %s\n", line)
				}
			}
		}
	}
	return sb.String()
}
