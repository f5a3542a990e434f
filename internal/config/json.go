package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		TasksBaseURL    string     `json:"tasks_base_url"`
		CalendarBaseURL string     `json:"calendar_base_url"`
		RequestTimeout  Duration   `json:"request_timeout"`
		RetryDelays     []Duration `json:"retry_delays"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Disabled          bool     `json:"disabled"`
		PollInterval      Duration `json:"poll_interval"`
		InboxListName     string   `json:"inbox_list_name"`
		MarkConcurrency   int      `json:"mark_concurrency"`
		ExportConcurrency int      `json:"export_concurrency"`
		MaxProcessedIDs   int      `json:"max_processed_ids"`
		MaxFingerprints   int      `json:"max_fingerprints"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Auth struct {
		TokenFile string `json:"token_file"`
	} `json:"auth,omitempty"`
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

	retryDelays := make([]time.Duration, 0, len(jsonCfg.Adapter.RetryDelays))
	for _, d := range jsonCfg.Adapter.RetryDelays {
		retryDelays = append(retryDelays, time.Duration(d))
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			TasksBaseURL:    jsonCfg.Adapter.TasksBaseURL,
			CalendarBaseURL: jsonCfg.Adapter.CalendarBaseURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryDelays:     retryDelays,
		},
		Sync: Sync{
			Disabled:          jsonCfg.Sync.Disabled,
			PollInterval:      time.Duration(jsonCfg.Sync.PollInterval),
			InboxListName:     jsonCfg.Sync.InboxListName,
			MarkConcurrency:   jsonCfg.Sync.MarkConcurrency,
			ExportConcurrency: jsonCfg.Sync.ExportConcurrency,
			MaxProcessedIDs:   jsonCfg.Sync.MaxProcessedIDs,
			MaxFingerprints:   jsonCfg.Sync.MaxFingerprints,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Auth: Auth{
			TokenFile: jsonCfg.Auth.TokenFile,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

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
