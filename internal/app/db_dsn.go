package app

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/club-stats/internal/config"
)

const maxTracedQueryLength = 512

// postgresConnString accepts both URL and key=value DSNs. It tags the
// connection with the service name and applies the prepared-binary toggle,
// never overriding a value the operator already set.
func postgresConnString(cfg config.Config) string {
	params := map[string]string{}
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		params["application_name"] = name
	}
	if cfg.DBDisablePreparedBinary {
		params["disable_prepared_binary_result"] = "yes"
	}

	raw := strings.TrimSpace(cfg.DBURL)
	if parsed, ok := parseDBURL(raw); ok {
		query := parsed.Query()
		changed := false
		for key, value := range params {
			if query.Get(key) == "" {
				query.Set(key, value)
				changed = true
			}
		}
		if !changed {
			return raw
		}
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	existing := dsnFields(raw)
	var b strings.Builder
	b.WriteString(raw)
	for _, key := range []string{"application_name", "disable_prepared_binary_result"} {
		value, ok := params[key]
		if !ok {
			continue
		}
		if _, set := existing[key]; set {
			continue
		}
		b.WriteString(" " + key + "='" + strings.ReplaceAll(value, "'", `\'`) + "'")
	}
	return b.String()
}

func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, ok := parseDBURL(raw); ok {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}
	return dsnFields(raw)["dbname"]
}

// redactDBURL hides the password so the DSN can be logged.
func redactDBURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, ok := parseDBURL(raw); ok {
		return parsed.Redacted()
	}

	tokens := strings.Fields(raw)
	for i, token := range tokens {
		if strings.HasPrefix(token, "password=") {
			tokens[i] = "password=xxxxx"
		}
	}
	return strings.Join(tokens, " ")
}

// traceQuery collapses whitespace and caps the statement recorded on spans
// without splitting a multi-byte character.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

func parseDBURL(raw string) (*url.URL, bool) {
	if !strings.HasPrefix(raw, "postgres://") && !strings.HasPrefix(raw, "postgresql://") {
		return nil, false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return parsed, true
}

func dsnFields(raw string) map[string]string {
	out := map[string]string{}
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}
