package constant

// Render engine error codes
const (
	// Configuration errors (0xx)
	ErrCodeUnsupportedLogoKind = "BSQ001"

	// Collaborator errors (1xx)
	ErrCodeEncodeFailure = "BSQ101"
	ErrCodeResourceLoad  = "BSQ102"
)

// API error codes
const (
	ErrCodeAPIDecodeRequest   = "API001"
	ErrCodeAPIInvalidParam    = "API002"
	ErrCodeAPIRenderError     = "API003"
	ErrCodeAPIUnsupportedLogo = "API004"
	ErrCodeAPIWriteResponse   = "API005"
)

// Application error codes
const (
	ErrCodeAppConfig         = "APP001"
	ErrCodeAppPreset         = "APP002"
	ErrCodeAppServerStart    = "APP003"
	ErrCodeAppServerShutdown = "APP004"
	ErrCodeAppLogger         = "APP005"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeConfiguration = "configuration"
	ErrTypeValidation    = "validation"

	// Collaborator error types
	ErrTypeEncoding = "encoding"
	ErrTypeResource = "resource"

	// Outer layers
	ErrTypeAPI = "api"
	ErrTypeApp = "application"
)
