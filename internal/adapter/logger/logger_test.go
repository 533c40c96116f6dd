package logger

import (
	"testing"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.App
		wantErr bool
		level   string
	}{
		{name: "develop", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}, level: "debug"},
		{name: "production", conf: config.App{LogLevel: "warn", Mode: config.AppModeProduction}, level: "warn"},
		{name: "bad level", conf: config.App{LogLevel: "loud", Mode: config.AppModeDevelop}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(&tt.conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lvl, err := zap.ParseAtomicLevel(tt.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(lvl.Level()))
		})
	}
}
