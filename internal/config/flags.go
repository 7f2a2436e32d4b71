package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-client-id API client identifier
//	-client-secret API client secret
//	-token-url OAuth2 token endpoint
//	-api-base-url query API base URL (including version segment)
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-query complete JSON query document
//	-from indices query window start (RFC 3339)
//	-to indices query window end (RFC 3339)
//	-poll-interval pause between status fetches (e.g., "10s")
//	-max-attempts status fetch budget before timing out
//	-output-prefix prefix for the downloaded CSV file name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var clientID string
	var clientSecret string
	var tokenURL string
	var apiBaseURL string
	var requestTimeout time.Duration
	var queryText string
	var queryFrom string
	var queryTo string
	var pollInterval time.Duration
	var maxAttempts int
	var outputPrefix string
	var jsonConfigPath string

	flag.StringVar(&clientID, "client-id", "", "API client ID")
	flag.StringVar(&clientSecret, "client-secret", "", "API client secret")
	flag.StringVar(&tokenURL, "token-url", "", "OAuth2 token endpoint URL")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Query API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&queryText, "query", "", "JSON query document")
	flag.StringVar(&queryFrom, "from", "", "Indices query window start (RFC 3339)")
	flag.StringVar(&queryTo, "to", "", "Indices query window end (RFC 3339)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Pause between status fetches (e.g., 10s)")
	flag.IntVar(&maxAttempts, "max-attempts", 0, "Status fetch budget before timing out")
	flag.StringVar(&outputPrefix, "output-prefix", "", "Prefix for the downloaded CSV file name")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		Adapter: Adapter{
			TokenURL:       tokenURL,
			APIBaseURL:     apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Query: Query{
			Text: queryText,
			From: queryFrom,
			To:   queryTo,
		},
		Poll: Poll{
			Interval:    pollInterval,
			MaxAttempts: maxAttempts,
		},
		Download: Download{
			PathPrefix: outputPrefix,
		},
		JSONFilePath: jsonConfigPath,
	}
}
