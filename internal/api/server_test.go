package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	app "delta-detect/internal/application"
	"delta-detect/internal/domain/entity"
	"delta-detect/internal/infrastructure/imaging"
)

type fakeEngine struct {
	rows   [][]float32
	loaded bool
}

func (f *fakeEngine) Detect(ctx context.Context, frame *entity.Frame, confThreshold float64) ([][]float32, error) {
	return f.rows, nil
}

func (f *fakeEngine) IsLoaded() bool {
	return f.loaded
}

func newTestServer(engine *fakeEngine) *Server {
	detections := app.NewDetectionService(engine, nil)
	analysis := app.NewAnalysisService(detections, app.NewColorService(), nil, nil)
	return NewServer(analysis, engine, imaging.NewStdDecoder(), 0, nil)
}

func pngBase64(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func postDetect(t *testing.T, srv *Server, body DetectionRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/detect", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeEngine{loaded: false})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "healthy", resp.Status)
	require.False(t, resp.ModelLoaded)
}

func TestDetect_ModelNotLoadedDegrades(t *testing.T) {
	srv := newTestServer(&fakeEngine{loaded: false})

	rec := postDetect(t, srv, DetectionRequest{
		Image:              pngBase64(t, 8, 6, color.RGBA{255, 0, 0, 255}),
		ColorblindnessType: "protanopia",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.DetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Empty(t, result.Objects)
	require.Equal(t, 8, result.FrameWidth)
	require.Equal(t, 6, result.FrameHeight)
}

func TestDetect_UnknownProfileDegradesToNormal(t *testing.T) {
	row := make([]float32, 4+len(entity.COCOClasses))
	row[0], row[1], row[2], row[3] = 0.5, 0.5, 0.5, 0.5
	row[4+11] = 0.9 // stop sign
	srv := newTestServer(&fakeEngine{loaded: true, rows: [][]float32{row}})

	rec := postDetect(t, srv, DetectionRequest{
		Image:              pngBase64(t, 20, 20, color.RGBA{255, 0, 0, 255}),
		ColorblindnessType: "not-a-profile",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.DetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Objects, 1)
	// Normal profile: red is not problematic, no warning.
	require.False(t, result.Objects[0].IsProblematicColor)
	require.Empty(t, result.Objects[0].ColorWarning)
	require.Empty(t, result.AlertMessage)
}

func TestDetect_DataURLPrefixAccepted(t *testing.T) {
	srv := newTestServer(&fakeEngine{loaded: false})

	rec := postDetect(t, srv, DetectionRequest{
		Image: "data:image/png;base64," + pngBase64(t, 4, 4, color.RGBA{0, 0, 0, 255}),
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDetect_BadRequests(t *testing.T) {
	srv := newTestServer(&fakeEngine{loaded: false})

	// Method not allowed.
	req := httptest.NewRequest(http.MethodGet, "/detect", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	// Garbage base64.
	rec = postDetect(t, srv, DetectionRequest{Image: "!!not base64!!"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Valid base64 but not an image.
	rec = postDetect(t, srv, DetectionRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("hello")),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&fakeEngine{loaded: false})

	req := httptest.NewRequest(http.MethodOptions, "/detect", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
