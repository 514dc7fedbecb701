package utils

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewNRGBA(image.Rect(0, 0, 4, 4))))

	mux := http.NewServeMux()
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(img.Bytes())
	})
	mux.HandleFunc("/page.html", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html><body>not an image</body></html>")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestDownload_Image(t *testing.T) {
	srv := newImageServer(t)

	f, err := DownloadImage(srv.URL + "/image.png")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestDownload_ShouldRejectNonImages(t *testing.T) {
	srv := newImageServer(t)

	_, err := DownloadImage(srv.URL + "/page.html")
	assert.ErrorContains(t, err, "not a valid image")

	_, err = DownloadImage(srv.URL + "/missing.png")
	assert.ErrorContains(t, err, "404")
}

func TestDownload_IsValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://example.com/image.jpg"))
	assert.True(t, IsValidUrl("http://localhost:8080/a.png"))
	assert.False(t, IsValidUrl("image.jpg"))
	assert.False(t, IsValidUrl("/tmp/image.jpg"))
	assert.False(t, IsValidUrl("-"))
	assert.False(t, IsValidUrl(""))
}

func TestDownload_DetectContentType(t *testing.T) {
	dir := t.TempDir()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	pngPath := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(pngPath, img.Bytes(), 0644))

	ctype, err := DetectContentType(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	emptyPath := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0644))
	ctype, err = DetectContentType(emptyPath)
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", ctype)

	_, err = DetectContentType(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
