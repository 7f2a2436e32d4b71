package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"app,omitempty"`

	Adapter struct {
		TokenURL       string   `json:"token_url"`
		APIBaseURL     string   `json:"api_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Query struct {
		Text string `json:"text"`
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"query,omitempty"`

	Poll struct {
		Interval    Duration `json:"interval"`
		MaxAttempts int      `json:"max_attempts"`
	} `json:"poll,omitempty"`

	Download struct {
		PathPrefix string `json:"path_prefix"`
	} `json:"download,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ClientID:     jsonCfg.App.ClientID,
			ClientSecret: jsonCfg.App.ClientSecret,
		},
		Adapter: Adapter{
			TokenURL:       jsonCfg.Adapter.TokenURL,
			APIBaseURL:     jsonCfg.Adapter.APIBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Query: Query{
			Text: jsonCfg.Query.Text,
			From: jsonCfg.Query.From,
			To:   jsonCfg.Query.To,
		},
		Poll: Poll{
			Interval:    time.Duration(jsonCfg.Poll.Interval),
			MaxAttempts: jsonCfg.Poll.MaxAttempts,
		},
		Download: Download{
			PathPrefix: jsonCfg.Download.PathPrefix,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
