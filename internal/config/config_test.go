package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "USERNAME", "JOIN_TIMEOUT_MS",
		"CAPABILITY_STRING", "SHUTDOWN_ON_UNKNOWN_PACKET",
		"PACKET_CAPTURE_DIR", "PACKET_CAPTURE_DEDUP", "LOG_LEVEL",
	} {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadWithOverrides(t *testing.T) {
	tests := []struct {
		name    string
		opts    LoadOptions
		envVars map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults with required overrides",
			opts: LoadOptions{Host: "fc.example.com", Username: "despot"},
			want: &Config{
				Server: ServerConfig{Host: "fc.example.com", Port: "6556"},
				Client: ClientConfig{
					Username:                "despot",
					JoinTimeout:             10 * time.Second,
					CapabilityString:        "+Freeciv.Devel-3.4-2025.Nov.29",
					ShutdownOnUnknownPacket: true,
				},
				Logging: LoggingConfig{Level: "info"},
			},
		},
		{
			name: "environment variables override defaults",
			opts: LoadOptions{},
			envVars: map[string]string{
				"SERVER_HOST":       "10.0.0.5",
				"SERVER_PORT":       "6557",
				"USERNAME":          "civbot",
				"JOIN_TIMEOUT_MS":   "5000",
				"CAPABILITY_STRING": "+Freeciv.Devel-3.3",
				"LOG_LEVEL":         "debug",
			},
			want: &Config{
				Server: ServerConfig{Host: "10.0.0.5", Port: "6557"},
				Client: ClientConfig{
					Username:                "civbot",
					JoinTimeout:             5 * time.Second,
					CapabilityString:        "+Freeciv.Devel-3.3",
					ShutdownOnUnknownPacket: true,
				},
				Logging: LoggingConfig{Level: "debug"},
			},
		},
		{
			name: "dedup captures flag enables it",
			opts: LoadOptions{Host: "fc.example.com", Username: "despot", DedupCaptures: true},
			want: &Config{
				Server: ServerConfig{Host: "fc.example.com", Port: "6556"},
				Client: ClientConfig{
					Username:                "despot",
					JoinTimeout:             10 * time.Second,
					CapabilityString:        "+Freeciv.Devel-3.4-2025.Nov.29",
					ShutdownOnUnknownPacket: true,
				},
				Capture: CaptureConfig{DedupCaptures: true},
				Logging: LoggingConfig{Level: "info"},
			},
		},
		{
			name: "missing host is an error",
			opts:    LoadOptions{Username: "despot"},
			wantErr: true,
		},
		{
			name:    "missing username is an error",
			opts:    LoadOptions{Host: "fc.example.com"},
			wantErr: true,
		},
		{
			name: "invalid log level is an error",
			opts: LoadOptions{Host: "fc.example.com", Username: "despot"},
			envVars: map[string]string{
				"LOG_LEVEL": "trace",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				require.NoError(t, os.Setenv(k, v))
			}
			t.Cleanup(func() { clearEnv(t) })

			got, err := LoadWithOverrides(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Server, got.Server)
			assert.Equal(t, tt.want.Client, got.Client)
			assert.Equal(t, tt.want.Capture, got.Capture)
			assert.Equal(t, tt.want.Logging, got.Logging)
		})
	}
}

func TestGetGlobalConfig(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() { clearEnv(t) })

	cfg, err := LoadWithOverrides(LoadOptions{Host: "fc.example.com", Username: "despot"})
	require.NoError(t, err)

	got := GetGlobalConfig()
	require.NotNil(t, got)
	assert.Equal(t, cfg.Server.Host, got.Server.Host)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server:  ServerConfig{Host: "fc.example.com", Port: "6556"},
			Client:  ClientConfig{Username: "despot", JoinTimeout: time.Second, CapabilityString: "+cap"},
			Logging: LoggingConfig{Level: "info"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = "not-a-port"
		require.Error(t, cfg.Validate())
	})

	t.Run("non positive join timeout", func(t *testing.T) {
		cfg := base()
		cfg.Client.JoinTimeout = 0
		require.Error(t, cfg.Validate())
	})
}
