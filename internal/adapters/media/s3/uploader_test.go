package s3

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidverse/vidverse_backend/internal/platform/config"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUploaderConfig(endpoint string) *config.Config {
	return &config.Config{
		MediaBucket:    "vidverse-media-test",
		MediaRegion:    "us-east-1",
		MediaEndpoint:  endpoint,
		MediaAccessKey: "test-access-key",
		MediaSecretKey: "test-secret-key",
	}
}

// stageTempFile writes a fake PNG into the OS temp dir, the way the
// register handler stages uploads.
func stageTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(os.TempDir(), uuid.NewString()+".png")
	require.NoError(t, os.WriteFile(path, pngMagic, 0o600))
	return path
}

func TestUpload_BlankPathIsNoop(t *testing.T) {
	u := &Uploader{logger: discardLogger()}

	assert.Nil(t, u.Upload(context.Background(), ""))
}

func TestUpload_Success(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := NewUploader(context.Background(), testUploaderConfig(srv.URL), discardLogger())
	require.NoError(t, err)

	path := stageTempFile(t)
	result := u.Upload(context.Background(), path)

	require.NotNil(t, result)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/vidverse-media-test/media/"), "unexpected path %q", gotPath)
	assert.Equal(t, "image/png", gotContentType)

	assert.True(t, strings.HasPrefix(result.Key, "media/"))
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, srv.URL+"/vidverse-media-test/"+result.Key, result.URL)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "temp file must be removed after upload")
}

func TestUpload_RemoteFailureDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	u, err := NewUploader(context.Background(), testUploaderConfig(srv.URL), discardLogger())
	require.NoError(t, err)

	path := stageTempFile(t)
	result := u.Upload(context.Background(), path)

	assert.Nil(t, result)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "temp file must be removed even on failure")
}

func TestPublicURL_PrefersConfiguredBase(t *testing.T) {
	u := &Uploader{
		bucket:        "vidverse-media",
		region:        "eu-west-1",
		publicBaseURL: "https://cdn.example.com",
	}
	assert.Equal(t, "https://cdn.example.com/media/a.png", u.publicURL("media/a.png"))

	u.publicBaseURL = ""
	u.endpoint = "http://localhost:9000"
	assert.Equal(t, "http://localhost:9000/vidverse-media/media/a.png", u.publicURL("media/a.png"))

	u.endpoint = ""
	assert.Equal(t, "https://vidverse-media.s3.eu-west-1.amazonaws.com/media/a.png", u.publicURL("media/a.png"))
}
