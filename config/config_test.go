package config

import (
	"strings"
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		netatmo NetatmoConfig
		wantErr bool
	}{
		{
			name: "full credential triple",
			netatmo: NetatmoConfig{
				ClientID:     "abc",
				ClientSecret: "xyz",
				RefreshToken: "rt-1",
			},
			wantErr: false,
		},
		{
			name:    "access token only",
			netatmo: NetatmoConfig{AccessToken: "tok-1"},
			wantErr: false,
		},
		{
			name: "missing refresh token",
			netatmo: NetatmoConfig{
				ClientID:     "abc",
				ClientSecret: "xyz",
			},
			wantErr: true,
		},
		{
			name:    "nothing set",
			netatmo: NetatmoConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Netatmo: tt.netatmo,
				Logging: LoggingConfig{Level: "info", Format: "console"},
			}

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "netatmo") {
				t.Errorf("validate() error message = %v, want message about netatmo credentials", err.Error())
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		logging LoggingConfig
		wantErr bool
	}{
		{name: "info console", logging: LoggingConfig{Level: "info", Format: "console"}},
		{name: "trace json", logging: LoggingConfig{Level: "trace", Format: "json"}},
		{name: "bad level", logging: LoggingConfig{Level: "verbose", Format: "console"}, wantErr: true},
		{name: "bad format", logging: LoggingConfig{Level: "info", Format: "logfmt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Netatmo: NetatmoConfig{AccessToken: "tok-1"},
				Logging: tt.logging,
			}

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
