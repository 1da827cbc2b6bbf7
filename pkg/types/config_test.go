package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{DataDir: "/tmp/data", LogLevel: "verbose"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "unknown log format returns ErrLogFormatUnknown",
			config:  Config{DataDir: "/tmp/data", LogFormat: "xml"},
			wantErr: ErrLogFormatUnknown,
		},
		{
			name:   "data dir only is valid",
			config: Config{DataDir: "/tmp/data"},
		},
		{
			name:   "level and format in upper case are valid",
			config: Config{DataDir: "/tmp/data", LogLevel: "DEBUG", LogFormat: "Json"},
		},
		{
			name:   "full config is valid",
			config: Config{DataDir: "/tmp/data", LogLevel: LogLevelDebug, LogFormat: LogFormatJSON},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("expected %v to be a config error", err)
			}
		})
	}
}
