package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

const (
	// DataStarAcceptHeader is sent by DataStar clients expecting an SSE stream.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"

	dataStarContentType = "application/x-datastar"
)

// Element patch modes used by toast responses.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was issued by a DataStar client.
func IsDataStar(r *http.Request) bool {
	switch {
	case strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader):
		return true
	case r.URL.Query().Has(DataStarQueryParam):
		return true
	default:
		return strings.Contains(r.Header.Get("Content-Type"), dataStarContentType)
	}
}

// InsertPatchMode maps an insertion direction onto the patch mode that places
// a new element at that end of its container.
func InsertPatchMode(insert toast.Insertion) datastar.ElementPatchMode {
	if insert == toast.InsertBottom {
		return PatchAppend
	}
	return PatchPrepend
}
