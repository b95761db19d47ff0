package vault

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
)

// patternCache holds compiled host patterns; the pattern set is small and
// stable per install.
var patternCache sync.Map // pattern string → *regexp.Regexp

// MatchHost reports whether a credential URL pattern matches a host.
// Matching is case-insensitive. `*` matches within a single DNS label,
// except that a leading `*.` also matches the bare domain and any depth of
// subdomains: `*.github.com` matches `github.com`, `api.github.com` and
// `a.b.github.com`, but not `evilgithub.com`.
func MatchHost(pattern, host string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	host = strings.ToLower(strings.TrimSpace(host))
	if pattern == "" || host == "" {
		return false
	}

	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(host)
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	var sb strings.Builder
	sb.WriteString("^")

	rest := pattern
	if strings.HasPrefix(rest, "*.") {
		// Zero or more leading labels.
		sb.WriteString(`(?:[^.]+\.)*`)
		rest = rest[2:]
	}
	for _, r := range rest {
		switch r {
		case '*':
			sb.WriteString(`[^.]*`)
		case '.':
			sb.WriteString(`\.`)
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

// hostOf extracts the host from a URL or bare hostname.
func hostOf(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		// Bare host, possibly with a path.
		if i := strings.IndexByte(raw, '/'); i >= 0 {
			raw = raw[:i]
		}
		if raw == "" {
			return "", fmt.Errorf("empty host")
		}
		return strings.ToLower(raw), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	return strings.ToLower(u.Hostname()), nil
}
