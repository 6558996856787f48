// Package handler delivers validated toast notifications over HTTP.
//
// Responses implement Response and adapt to the request: DataStar requests
// (see IsDataStar) receive Server-Sent Event element patches produced with
// github.com/starfederation/datastar-go, regular requests receive HTML.
//
// Toast patches a rendered notification into the element of its container,
// prepending for InsertTop and appending for InsertBottom:
//
//	func createToast(r *http.Request) (handler.Response, error) {
//		opts, err := handler.ReadToastOptions(r)
//		if err != nil {
//			return nil, err
//		}
//		n, err := toast.Parse(opts, defaults)
//		if err != nil {
//			return nil, err
//		}
//		return handler.Toast(n, views.Toast(n)), nil
//	}
//
//	mux.Handle("POST /toasts", handler.Wrap(createToast, errs))
//
// The page is expected to contain one element per container, with the ids
// returned by toast.Container.ElementID ("toast-container-top-right", ...).
//
// NewErrorHandler turns handler errors into error toasts for DataStar
// requests and error pages otherwise. Validation errors map to 400, HTTPError
// values keep their code and anything else is a 500.
package handler
