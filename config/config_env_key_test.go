package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"events": map[string]any{
			"topicId": "",
			"natsUrl": "",
		},
		"session": map[string]any{
			"idleTtl": "2h",
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "EVENTS_TOPICID", want: "events.topicId"},
		{envKey: "EVENTS_NATSURL", want: "events.natsUrl"},
		{envKey: "SESSION_IDLETTL", want: "session.idleTtl"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.IdleTTL != 2*time.Hour {
		t.Fatalf("session idle ttl = %s, want 2h", cfg.Session.IdleTTL)
	}
	if cfg.Storage.BucketURL != "mem://" {
		t.Fatalf("storage bucket = %q, want mem://", cfg.Storage.BucketURL)
	}
	if len(cfg.Storage.AllowedExtensions) != 4 {
		t.Fatalf("allowed extensions = %v", cfg.Storage.AllowedExtensions)
	}
	if cfg.Events.Provider != "none" {
		t.Fatalf("events provider = %q, want none", cfg.Events.Provider)
	}
	if cfg.Database.SlowQueryThreshold != 200*time.Millisecond || cfg.Database.MigrateOnStart {
		t.Fatalf("database defaults = %+v", cfg.Database)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{IdleTTL: time.Minute, SweepInterval: time.Second},
		Storage: &StorageConfig{BucketURL: "file:///tmp/x", MaxUploadSize: 1, AllowedExtensions: []string{".pdf"}},
	}
	applyDefaults(cfg)

	if cfg.Session.IdleTTL != time.Minute || cfg.Session.SweepInterval != time.Second {
		t.Fatalf("session overridden: %+v", cfg.Session)
	}
	if cfg.Storage.BucketURL != "file:///tmp/x" || cfg.Storage.MaxUploadSize != 1 {
		t.Fatalf("storage overridden: %+v", cfg.Storage)
	}
}
