// Package scanner classifies user-sourced text for prompt-injection attempts
// before it reaches the task supervisor.
package scanner

import (
	"regexp"
	"strings"
)

// DefaultMaxInputLength truncates scanner input.
const DefaultMaxInputLength = 100_000

// DefaultThreshold is the confidence above which text counts as detected.
const DefaultThreshold = 0.3

// Match describes one pattern hit.
type Match struct {
	Family   string   `json:"family"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Excerpt  string   `json:"excerpt"`
}

// Result is the outcome of a scan.
type Result struct {
	Detected   bool    `json:"detected"`
	Confidence float64 `json:"confidence"`
	Patterns   []Match `json:"patterns"`
	Sanitized  string  `json:"sanitized,omitempty"`
}

// Options tune the scanner.
type Options struct {
	// Strict treats any single pattern match as detection.
	Strict         bool
	Threshold      float64
	MaxInputLength int
}

// Scanner is safe for concurrent use.
type Scanner struct {
	opts     Options
	patterns []compiledPattern
}

// New creates a Scanner; zero-valued options get defaults.
func New(opts Options) *Scanner {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	return &Scanner{opts: opts, patterns: compilePatterns()}
}

// Scan matches text against all pattern families. Confidence is
// min(1, Σ severity_weight / 2). Detected text also gets a sanitized copy.
func (s *Scanner) Scan(text string) Result {
	if len(text) > s.opts.MaxInputLength {
		text = text[:s.opts.MaxInputLength]
	}

	var result Result
	var weightSum float64
	for _, p := range s.patterns {
		loc := p.Regex.FindStringIndex(text)
		if loc == nil {
			continue
		}
		weightSum += severityWeights[p.Severity]
		result.Patterns = append(result.Patterns, Match{
			Family:   p.Family,
			Name:     p.Name,
			Severity: p.Severity,
			Excerpt:  excerpt(text, loc),
		})
	}

	result.Confidence = min(1.0, weightSum/2)
	if s.opts.Strict {
		result.Detected = len(result.Patterns) > 0
	} else {
		result.Detected = result.Confidence >= s.opts.Threshold
	}
	if result.Detected {
		result.Sanitized = s.Sanitize(text)
	}
	return result
}

// QuickCheck reports whether text trips the scanner, without building the
// full result.
func (s *Scanner) QuickCheck(text string) bool {
	return s.Scan(text).Detected
}

const excerptContext = 20

func excerpt(text string, loc []int) string {
	start := max(0, loc[0]-excerptContext)
	end := min(len(text), loc[1]+excerptContext)
	return text[start:end]
}

// Sanitization rules: delimiter tokens are removed outright, role-override
// phrases are replaced with [FILTERED]. Deterministic by construction.
var (
	removeTokens = []*regexp.Regexp{
		regexp.MustCompile(`(?i)</?system>`),
		regexp.MustCompile(`(?i)</?assistant>`),
		regexp.MustCompile(`(?i)\[/?INST\]`),
		regexp.MustCompile(`(?i)\[\[.{0,40}ADMIN.{0,40}\]\]`),
		regexp.MustCompile(`(?im)^\s*(?:system|assistant)\s*:`),
	}
	filterPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bignore (?:all )?(?:previous|prior|above|earlier)(?: instructions?| prompts?| messages?| rules?)?\b`),
		regexp.MustCompile(`(?i)\bdisregard (?:all )?(?:prior|previous|above|earlier)(?: instructions?)?\b`),
		regexp.MustCompile(`(?i)\bforget everything\b`),
	}
)

// Sanitize strips delimiter tokens and replaces role-override phrases with
// [FILTERED].
func (s *Scanner) Sanitize(text string) string {
	for _, re := range removeTokens {
		text = re.ReplaceAllString(text, "")
	}
	for _, re := range filterPhrases {
		text = re.ReplaceAllString(text, "[FILTERED]")
	}
	return strings.TrimSpace(text)
}
