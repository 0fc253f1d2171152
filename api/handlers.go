package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/domain/bsqr"
	"github.com/prasetyowira/bsqr/infrastructure/cache"
	appLogger "github.com/prasetyowira/bsqr/infrastructure/logger"
	"github.com/prasetyowira/bsqr/infrastructure/preset"
	"github.com/prasetyowira/bsqr/infrastructure/qrcode"
	"github.com/prasetyowira/bsqr/infrastructure/svg"
)

// Handler contains service dependencies for API handlers
type Handler struct {
	encoder bsqr.Encoder
	loader  bsqr.ResourceLoader
	preset  preset.Preset
	cache   *cache.NamespaceLRU
}

// RenderRequest is the request object for the render endpoint.
// The embedded preset fields override the server preset.
type RenderRequest struct {
	Payload string `json:"payload"`
	preset.Preset
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// paramError reports a query or body field that could not be parsed
type paramError struct {
	param string
	err   error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %v", e.param, e.err)
}

func (e *paramError) Unwrap() error {
	return e.err
}

// NewHandler creates a new API handler. base is applied to every render before
// the request options; a nil cache disables response caching.
func NewHandler(loader bsqr.ResourceLoader, base preset.Preset, c *cache.NamespaceLRU) *Handler {
	return &Handler{
		encoder: qrcode.NewEncoder(),
		loader:  loader,
		preset:  base,
		cache:   c,
	}
}

// RenderImage renders a bysquare image from query parameters (GET) or a JSON body (POST)
func (h *Handler) RenderImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgRenderRequest, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderImage,
		Data: map[string]interface{}{
			constant.DataMethod: r.Method,
		},
	})

	var req RenderRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			appLogger.CtxError(ctx, "Error decoding request body", appLogger.LoggerInfo{
				ContextFunction: constant.CtxRenderImage,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAPIDecodeRequest,
					Message: err.Error(),
					Type:    constant.ErrTypeAPI,
				},
			})

			WriteJSONError(w, "Invalid request format", http.StatusBadRequest)
			return
		}
	} else {
		parsed, err := parseQuery(r.URL.Query())
		if err != nil {
			h.invalidParam(w, r, err)
			return
		}
		req = parsed
	}

	options := h.preset.Merge(req.Preset)
	logo, err := options.LogoKind()
	if err != nil {
		h.invalidParam(w, r, &paramError{param: "logo", err: err})
		return
	}

	key := cacheKey(req.Payload, options)
	if h.cache != nil {
		if body, ok := h.cache.Get(constant.RenderNamespace, key); ok {
			appLogger.CtxDebug(ctx, constant.MsgServedFromCache, appLogger.LoggerInfo{
				ContextFunction: constant.CtxRenderImage,
				Data: map[string]interface{}{
					constant.DataCacheHit: true,
				},
			})
			writeSVG(w, body, constant.CacheHit)
			return
		}
	}

	renderer := bsqr.NewRenderer(h.encoder, svg.NewConverter(), h.loader)
	if err := options.Apply(renderer); err != nil {
		h.invalidParam(w, r, err)
		return
	}

	doc, err := renderer.Render(ctx, req.Payload, logo)
	if err != nil {
		h.renderFailed(w, r, err)
		return
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	if h.cache != nil {
		h.cache.Set(constant.RenderNamespace, key, buf.Bytes())
	}

	appLogger.CtxInfo(ctx, constant.MsgRenderCompleted, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderImage,
		Data: map[string]interface{}{
			constant.DataPayloadLength: len(req.Payload),
			constant.DataLogoKind:      logo,
			constant.DataViewBox:       doc.ViewBox(),
			constant.DataSize:          buf.Len(),
		},
	})

	writeSVG(w, buf.Bytes(), constant.CacheMiss)
}

func (h *Handler) invalidParam(w http.ResponseWriter, r *http.Request, err error) {
	appLogger.CtxWarn(r.Context(), constant.MsgInvalidRenderParam, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderImage,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeAPIInvalidParam,
			Message: err.Error(),
			Type:    constant.ErrTypeValidation,
		},
	})

	WriteJSONError(w, err.Error(), http.StatusBadRequest)
}

func (h *Handler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, bsqr.ErrUnsupportedLogoKind) {
		appLogger.CtxWarn(r.Context(), constant.MsgRenderFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxRenderImage,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIUnsupportedLogo,
				Message: err.Error(),
				Type:    constant.ErrTypeConfiguration,
			},
		})

		WriteJSONError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	appLogger.CtxError(r.Context(), constant.MsgRenderFailed, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRenderImage,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeAPIRenderError,
			Message: err.Error(),
			Type:    constant.ErrTypeAPI,
		},
	})

	WriteJSONError(w, "Failed to render image", http.StatusInternalServerError)
}

// parseQuery maps query parameters onto a render request
func parseQuery(q url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Payload: q.Get("payload"),
		Preset: preset.Preset{
			Logo:         q.Get("logo"),
			LogoPosition: q.Get("position"),
			Primary:      q.Get("primary"),
			Secondary:    q.Get("secondary"),
			CodeColor:    q.Get("code_color"),
			ECLevel:      q.Get("ec"),
			Unit:         q.Get("unit"),
		},
	}

	if v := q.Get("border"); v != "" {
		border, err := strconv.ParseBool(v)
		if err != nil {
			return RenderRequest{}, &paramError{param: "border", err: errors.New(constant.ErrInvalidBool)}
		}
		req.Border = &border
	}

	for param, dst := range map[string]**float64{
		"size":   &req.InnerSize,
		"width":  &req.OuterWidth,
		"height": &req.OuterHeight,
	} {
		v := q.Get(param)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return RenderRequest{}, &paramError{param: param, err: errors.New(constant.ErrInvalidNumber)}
		}
		*dst = &f
	}

	return req, nil
}

// cacheKey identifies a render by its payload and the effective options
func cacheKey(payload string, options preset.Preset) string {
	encoded, _ := json.Marshal(RenderRequest{Payload: payload, Preset: options})
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}

func writeSVG(w http.ResponseWriter, body []byte, cacheStatus string) {
	w.Header().Set(constant.HeaderContentType, constant.ContentTypeSVG)
	w.Header().Set(constant.HeaderCache, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set(constant.HeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

// WriteJSONError writes a JSON error response
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{
		Error: message,
		Code:  statusCode,
	}, statusCode)
}
