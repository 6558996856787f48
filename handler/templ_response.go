package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, for TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch pairs component with the options that place it in the DOM.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
}

// Render sends one SSE patch per component to DataStar clients and the
// concatenated HTML to regular requests.
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a single component. DataStar requests receive it as an SSE
// element patch shaped by opts; regular requests receive plain HTML.
//
//	return handler.Templ(views.Profile(user), handler.WithTarget("#profile")), nil
func Templ(component templ.Component, opts ...TemplOption) Response {
	return TemplMulti(Patch(component, opts...))
}

// TemplMulti renders several components, each with its own target:
//
//	return handler.TemplMulti(
//		handler.Patch(views.Profile(user), handler.WithTarget("#profile")),
//		handler.Patch(views.Toast(n), handler.WithTarget("#toast-container-top-right"),
//			handler.WithPatchMode(handler.PatchPrepend)),
//	), nil
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}
