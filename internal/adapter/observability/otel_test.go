package observability

import (
	"context"
	"testing"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), &config.Telemetry{ServiceName: "orderdesk"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_Endpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), &config.Telemetry{
		OTLPEndpoint: "http://localhost:4318",
		ServiceName:  "orderdesk",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// nothing was exported, so shutdown has nothing to flush
	_ = shutdown(ctx)
}
