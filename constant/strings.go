package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names and values
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderCache       = "X-Cache"

	ContentTypeSVG  = "image/svg+xml"
	ContentTypeJSON = "application/json"

	CacheHit  = "HIT"
	CacheMiss = "MISS"
)

// Function/Context names
const (
	// Domain context names
	CtxRender = "Render"

	// Infrastructure context names
	CtxPreset = "Preset"

	// API context names
	CtxAPI         = "api"
	CtxRouter      = "Router"
	CtxRenderImage = "RenderImage"

	// Executables
	CtxMain = "Main"
	CtxCLI  = "cli"
)

// Data field keys
const (
	// Render data fields
	DataPayloadLength = "payload_length"
	DataLogoKind      = "logo_kind"
	DataLogoPosition  = "logo_position"
	DataBorder        = "border"
	DataECLevel       = "ec_level"
	DataViewBox       = "view_box"
	DataWidth         = "width"
	DataHeight        = "height"
	DataParam         = "param"
	DataCacheHit      = "cache_hit"
	DataOutput        = "output"

	// API data fields
	DataMethod     = "method"
	DataPath       = "path"
	DataStatus     = "status"
	DataLatency    = "latency"
	DataSize       = "size"
	DataRemoteAddr = "remote_addr"
	DataUserAgent  = "user_agent"

	// Application data fields
	DataPort        = "port"
	DataEnvironment = "environment"
	DataCacheSize   = "cache_size"
	DataResourceDir = "resource_dir"
	DataPresetFile  = "preset_file"
)

// Error message constants
const (
	ErrUnsupportedLogoKind = "unsupported logo kind"
	ErrInvalidLogoPosition = "invalid logo position"
	ErrInvalidLogoKind     = "invalid logo kind"
	ErrInvalidECLevel      = "invalid error correction level"
	ErrInvalidNumber       = "invalid number"
	ErrInvalidBool         = "invalid boolean"
	ErrInvalidSizing       = "invalid sizing"
)

// API routes
const (
	RouteRender      = "/api/bsqr"
	RouteHealthcheck = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants
const (
	MsgApplicationStarting = "Application starting"
	MsgFailedToLoadConfig  = "Failed to load configuration"
	MsgFailedToInitLogger  = "Failed to initialize logger"
	MsgFailedToLoadPreset  = "Failed to load render preset"
	MsgServerStarting      = "Server starting"
	MsgServerFailedToStart = "Server failed to start"
	MsgServerShuttingDown  = "Server shutting down"
	MsgServerShutdownError = "Error during server shutdown"
	MsgServerStopped       = "Server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgSettingUpRoutes     = "Setting up API routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"

	MsgRenderStarted       = "Rendering bysquare image"
	MsgRenderCompleted     = "Bysquare image rendered"
	MsgUnsupportedLogoKind = "Unsupported logo kind requested"
	MsgRenderRequest       = "Handling render request"
	MsgInvalidRenderParam  = "Invalid render parameter"
	MsgRenderFailed        = "Failed to render bysquare image"
	MsgServedFromCache     = "Rendered image served from cache"
	MsgImageWritten        = "Bysquare image written"
)

// Cache Namespace
const (
	RenderNamespace = "SVG"
)
