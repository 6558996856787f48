package handler

import "net/http"

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc handles a request and returns either a Response or an error.
type HandlerFunc func(r *http.Request) (Response, error)

// ErrorHandler reports a failed request to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Wrap converts h to an http.HandlerFunc. Errors returned by h or raised while
// rendering its response are passed to onError; a nil onError falls back to
// http.Error.
//
//	errs := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
//		ErrorToast: views.ErrorToast,
//		ErrorPage:  views.ErrorPage,
//	})
//	mux.Handle("POST /profile", handler.Wrap(saveProfile, errs))
func Wrap(h HandlerFunc, onError ErrorHandler) http.HandlerFunc {
	if onError == nil {
		onError = defaultErrorHandler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h(r)
		if err != nil {
			onError(w, r, err)
			return
		}
		if resp == nil {
			onError(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			onError(w, r, err)
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	info := classifyError(err)
	http.Error(w, info.Message, info.StatusCode)
}
