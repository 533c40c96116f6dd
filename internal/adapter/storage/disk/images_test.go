package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewImageStorage(&config.Storage{UploadDir: dir, PublicPath: "/uploads"})
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Save(ctx, "1700000000000-abc.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-abc.png", p)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = s.Save(ctx, "1700000000000-abc.png", strings.NewReader("again"))
	assert.Error(t, err)

	require.NoError(t, s.Remove(ctx, "1700000000000-abc.png"))
	assert.NoError(t, s.Remove(ctx, "1700000000000-abc.png"))

	_, err = s.Save(ctx, "../escape.png", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Error(t, s.Remove(ctx, ""))
}
