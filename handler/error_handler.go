package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/requestid"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Notification toast.Notification
	Classes      []string
	StatusCode   int
	RequestID    string
}

// ErrorToastConfig places error toasts. It is tagged for pkg/config.
type ErrorToastConfig struct {
	Container toast.Container `env:"TOAST_ERROR_CONTAINER" envDefault:"top-right" validate:"oneof=top-left top-right bottom-left bottom-right"`
	Insert    toast.Insertion `env:"TOAST_ERROR_INSERT" envDefault:"top" validate:"oneof=top bottom"`
	// Timeout auto-dismisses error toasts; zero keeps them until dismissed.
	Timeout time.Duration `env:"TOAST_ERROR_TIMEOUT" envDefault:"5s" validate:"gte=0"`
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	Toast ErrorToastConfig

	// Defaults fill the transition options of error toasts; nil uses toast.DefaultDefaults.
	Defaults *toast.Defaults
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       toast.Type
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineToastType maps HTTP status codes to built-in toast types.
func determineToastType(statusCode int) toast.Type {
	switch {
	case isClientError(statusCode):
		return toast.TypeWarning
	case statusCode >= http.StatusInternalServerError:
		return toast.TypeDanger
	default:
		return toast.TypeInfo
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.Toast.Container == "" {
		cfg.Toast.Container = toast.ContainerTopRight
	}
	if cfg.Toast.Insert == "" {
		cfg.Toast.Insert = toast.InsertTop
	}
	if cfg.Defaults == nil {
		d := toast.DefaultDefaults()
		cfg.Defaults = &d
	}
	return cfg
}

// formatValidationErrors joins every field message of verrs.
func formatValidationErrors(verrs validator.ValidationErrors) string {
	if verrs.IsEmpty() {
		return "Validation failed"
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, e.Error())
	}
	return strings.Join(messages, "; ")
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	// Validation errors override an HTTP error wrapped alongside them.
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusBadRequest
		info.Message = formatValidationErrors(verrs)
	}

	info.Type = determineToastType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func errorToast(cfg ErrorHandlerConfig, info ErrorInfo) (toast.Notification, error) {
	opts := toast.Options{
		toast.KeyType:      string(info.Type),
		toast.KeyMessage:   info.Message,
		toast.KeyContainer: string(cfg.Toast.Container),
		toast.KeyInsert:    string(cfg.Toast.Insert),
	}
	if cfg.Toast.Timeout > 0 {
		opts[toast.KeyTimeoutDismiss] = map[string]any{"duration": cfg.Toast.Timeout}
	}
	return toast.Parse(opts, *cfg.Defaults)
}

func renderDataStarResponse(w http.ResponseWriter, r *http.Request, cfg ErrorHandlerConfig, info ErrorInfo, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.WarnContext(r.Context(), "no error toast component configured for DataStar request",
			logger.Component("error_handler"),
		)
		return
	}

	n, err := errorToast(cfg, info)
	if err != nil {
		log.ErrorContext(r.Context(), "invalid error toast configuration",
			logger.Error(err),
			logger.Component("error_handler"),
		)
		return
	}
	classes, err := toast.Classes(n)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to resolve error toast classes",
			logger.Error(err),
			logger.ToastType(string(n.Type)),
		)
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Notification: n,
		Classes:      classes,
		StatusCode:   info.StatusCode,
		RequestID:    requestid.FromContext(r.Context()),
	})

	// SSE responses keep status 200 so the client applies the patch.
	if err := Toast(n, component).Render(w, r); err != nil {
		log.ErrorContext(r.Context(), "failed to render error toast",
			logger.Error(err),
			logger.NotificationID(n.ID),
			logger.Container(string(n.Container)),
			logger.Event("render_error_toast"),
		)
	}
}

func renderHTTPResponse(w http.ResponseWriter, r *http.Request, cfg ErrorHandlerConfig, info ErrorInfo, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}

	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestid.FromContext(r.Context()),
		RetryURL:   r.URL.Path,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if err := component.Render(r.Context(), w); err != nil {
		log.ErrorContext(r.Context(), "failed to render error page",
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates an error handler that adapts to the request type.
// DataStar requests receive an error toast patched into the configured
// container (warning for 4xx, danger for 5xx); regular requests receive the
// error page, or a plain-text error when no page is configured.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := classifyError(err)
		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) {
			renderDataStarResponse(w, r, cfg, info, log)
			return
		}
		renderHTTPResponse(w, r, cfg, info, log)
	}
}
