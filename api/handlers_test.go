package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/domain/bsqr"
	"github.com/prasetyowira/bsqr/infrastructure/cache"
	"github.com/prasetyowira/bsqr/infrastructure/preset"
	"github.com/prasetyowira/bsqr/infrastructure/qrcode"
	"github.com/prasetyowira/bsqr/infrastructure/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEncoder is a mock QR encoder for testing
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(payload string, level qrcode.Level) (*qrcode.Matrix, error) {
	args := m.Called(payload, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*qrcode.Matrix), args.Error(1)
}

func newTestHandler(base preset.Preset) *Handler {
	return NewHandler(resource.NewLoader(), base, cache.NewNamespaceLRU(10))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestNewHandler(t *testing.T) {
	// Arrange
	loader := resource.NewLoader()
	lru := cache.NewNamespaceLRU(1)
	base := preset.Preset{Primary: "#fff"}

	// Act
	handler := NewHandler(loader, base, lru)

	// Assert
	assert.NotNil(t, handler)
	assert.Equal(t, loader, handler.loader)
	assert.Equal(t, base, handler.preset)
	assert.Equal(t, lru, handler.cache)
	assert.NotNil(t, handler.encoder)
}

func TestRenderImage_GetDefaults(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	req := httptest.NewRequest(http.MethodGet, "/api/bsqr?payload=hello", nil)
	w := httptest.NewRecorder()

	// Act
	handler.RenderImage(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constant.ContentTypeSVG, w.Header().Get(constant.HeaderContentType))
	assert.Equal(t, constant.CacheMiss, w.Header().Get(constant.HeaderCache))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1034.8 1222.116">`))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), "</svg>"))
}

func TestRenderImage_ServesRepeatedRequestsFromCache(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	target := "/api/bsqr?payload=hello&position=top"

	first := httptest.NewRecorder()
	handler.RenderImage(first, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, first.Code)

	// Act
	second := httptest.NewRecorder()
	handler.RenderImage(second, httptest.NewRequest(http.MethodGet, target, nil))

	// Assert
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, constant.CacheHit, second.Header().Get(constant.HeaderCache))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, handler.cache.Size())
}

func TestRenderImage_WithoutCache(t *testing.T) {
	// Arrange
	handler := NewHandler(resource.NewLoader(), preset.Preset{}, nil)

	// Act
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.RenderImage(w, httptest.NewRequest(http.MethodGet, "/api/bsqr?payload=x", nil))

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, constant.CacheMiss, w.Header().Get(constant.HeaderCache))
	}
}

func TestRenderImage_PostJSON(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	body := `{"payload":"hello","position":"LEFT","border":false,"width":200,"height":100,"unit":"mm"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bsqr", strings.NewReader(body))
	w := httptest.NewRecorder()

	// Act
	handler.RenderImage(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `viewBox="0 0 1204.716 1000"`)
	assert.Contains(t, w.Body.String(), `width="120.4716mm"`)
	assert.Contains(t, w.Body.String(), `height="100mm"`)
}

func TestRenderImage_ServerPresetAndOverride(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{Primary: "#abcdef", LogoPosition: "NONE"})

	// Act
	base := httptest.NewRecorder()
	handler.RenderImage(base, httptest.NewRequest(http.MethodGet, "/api/bsqr", nil))
	overridden := httptest.NewRecorder()
	handler.RenderImage(overridden, httptest.NewRequest(http.MethodGet, "/api/bsqr?primary="+url.QueryEscape("#123456"), nil))

	// Assert
	require.Equal(t, http.StatusOK, base.Code)
	assert.Contains(t, base.Body.String(), "stroke:#abcdef")
	assert.Contains(t, base.Body.String(), `viewBox="0 0 1034.8 1034.8"`)
	require.Equal(t, http.StatusOK, overridden.Code)
	assert.Contains(t, overridden.Body.String(), "stroke:#123456")
}

func TestRenderImage_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"border", "/api/bsqr?border=maybe"},
		{"size", "/api/bsqr?size=big"},
		{"position", "/api/bsqr?position=middle"},
		{"ec level", "/api/bsqr?ec=Z"},
		{"logo", "/api/bsqr?logo=stamp"},
		{"half outer size", "/api/bsqr?width=10"},
		{"negative size", "/api/bsqr?size=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := newTestHandler(preset.Preset{})
			w := httptest.NewRecorder()

			// Act
			handler.RenderImage(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, constant.ContentTypeJSON, w.Header().Get(constant.HeaderContentType))
			resp := decodeError(t, w)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRenderImage_MalformedJSON(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	w := httptest.NewRecorder()

	// Act
	handler.RenderImage(w, httptest.NewRequest(http.MethodPost, "/api/bsqr", strings.NewReader("{")))

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeError(t, w).Error)
}

func TestRenderImage_UnsupportedLogoKind(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	w := httptest.NewRecorder()

	// Act
	handler.RenderImage(w, httptest.NewRequest(http.MethodGet, "/api/bsqr?payload=x&logo=invoice", nil))

	// Assert
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "unsupported logo kind: INVOICE", decodeError(t, w).Error)
	assert.Equal(t, 0, handler.cache.Size())
}

func TestRenderImage_EncoderFailure(t *testing.T) {
	// Arrange
	handler := newTestHandler(preset.Preset{})
	encoder := new(MockEncoder)
	encoder.On("Encode", "too long", bsqr.ECLevelL).Return(nil, errors.New("content too long"))
	handler.encoder = encoder
	w := httptest.NewRecorder()

	// Act
	handler.RenderImage(w, httptest.NewRequest(http.MethodGet, "/api/bsqr?payload=too+long", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to render image", decodeError(t, w).Error)
	encoder.AssertExpectations(t)
}

func TestParseQuery(t *testing.T) {
	// Arrange
	q := url.Values{
		"payload":  {"abc"},
		"logo":     {"pay"},
		"position": {"top"},
		"border":   {"false"},
		"ec":       {"H"},
		"size":     {"25.5"},
		"unit":     {"mm"},
	}

	// Act
	req, err := parseQuery(q)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "abc", req.Payload)
	assert.Equal(t, "pay", req.Logo)
	assert.Equal(t, "top", req.LogoPosition)
	require.NotNil(t, req.Border)
	assert.False(t, *req.Border)
	assert.Equal(t, "H", req.ECLevel)
	require.NotNil(t, req.InnerSize)
	assert.Equal(t, 25.5, *req.InnerSize)
	assert.Nil(t, req.OuterWidth)
	assert.Equal(t, "mm", req.Unit)

	_, err = parseQuery(url.Values{"height": {"tall"}})
	assert.EqualError(t, err, "height: invalid number")
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("x", preset.Preset{Primary: "#000"})
	b := cacheKey("x", preset.Preset{Primary: "#000"})
	c := cacheKey("x", preset.Preset{Primary: "#111"})
	d := cacheKey("y", preset.Preset{Primary: "#000"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Len(t, a, 64)
}
