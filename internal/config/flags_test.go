// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Adapter.TasksBaseURL)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.False(t, cfg.Sync.Disabled)
				assert.Nil(t, cfg.Adapter.RetryDelays)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-tasks-url", "https://tasks.example.com/v1",
				"-calendar-url", "https://calendar.example.com/v3",
				"-request-timeout", "30s",
				"-retry-delays", "100ms,200ms",
				"-d", "local.db",
				"-token-file", "/tmp/token.json",
				"-list-name", "Custom Inbox",
				"-poll-interval", "5m",
				"-no-sync",
				"-c", "/tmp/config.json",
			},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://tasks.example.com/v1", cfg.Adapter.TasksBaseURL)
				assert.Equal(t, "https://calendar.example.com/v3", cfg.Adapter.CalendarBaseURL)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, cfg.Adapter.RetryDelays)
				assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/tmp/token.json", cfg.Auth.TokenFile)
				assert.Equal(t, "Custom Inbox", cfg.Sync.InboxListName)
				assert.Equal(t, 5*time.Minute, cfg.Sync.PollInterval)
				assert.True(t, cfg.Sync.Disabled)
				assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/tmp/config.json"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			tt.want(t, cfg)
		})
	}
}

func TestParseRetryDelays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []time.Duration
	}{
		{name: "empty", input: "", want: nil},
		{name: "blank", input: "   ", want: nil},
		{name: "single", input: "350ms", want: []time.Duration{350 * time.Millisecond}},
		{name: "schedule", input: "350ms,900ms,1800ms", want: []time.Duration{350 * time.Millisecond, 900 * time.Millisecond, 1800 * time.Millisecond}},
		{name: "spaces tolerated", input: " 350ms , 900ms ", want: []time.Duration{350 * time.Millisecond, 900 * time.Millisecond}},
		{name: "empty segments ignored", input: "350ms,,900ms", want: []time.Duration{350 * time.Millisecond, 900 * time.Millisecond}},
		{name: "one bad segment drops all", input: "350ms,banana,900ms", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetryDelays(tt.input))
		})
	}
}
