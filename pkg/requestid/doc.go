// Package requestid correlates log records and error toasts of one HTTP
// request through an X-Request-ID header.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	srv := requestid.Middleware(mux)
//
// Client-supplied ids are reused when they are at most 128 characters of
// letters, digits, '-' and '_'; anything else is replaced by a new UUID.
package requestid
