package handler

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// ToastPatchOptions returns the patch options that insert n into its
// container: prepended for InsertTop, appended for InsertBottom.
func ToastPatchOptions(n toast.Notification) []TemplOption {
	return []TemplOption{
		WithTarget("#" + n.Container.ElementID()),
		WithPatchMode(InsertPatchMode(n.Insert)),
	}
}

// Toast renders component as the notification n. DataStar clients receive an
// element patch into the container of n; regular requests receive the HTML.
//
//	n, err := toast.Parse(opts, defaults)
//	if err != nil {
//		return nil, err
//	}
//	return handler.Toast(n, views.Toast(n)), nil
func Toast(n toast.Notification, component templ.Component) Response {
	return toastResponse{patches: []TemplPatch{Patch(component, ToastPatchOptions(n)...)}}
}

// TemplWithToast renders the primary component followed by a toast.
func TemplWithToast(primary TemplPatch, n toast.Notification, component templ.Component) Response {
	return toastResponse{patches: []TemplPatch{
		primary,
		Patch(component, ToastPatchOptions(n)...),
	}}
}

type toastResponse struct {
	patches []TemplPatch
}

func (t toastResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for _, patch := range t.patches {
		if patch.Component == nil {
			return ErrNoToastComponent
		}
	}
	return templMultiResponse(t).Render(w, r)
}

// DismissToast removes the notification n from the page. Regular requests
// get 204 No Content since there is nothing to render.
func DismissToast(n toast.Notification) Response {
	return dismissResponse{selector: "#" + n.ElementID()}
}

type dismissResponse struct {
	selector string
}

func (d dismissResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	sse := datastar.NewSSE(w, r)
	return sse.PatchElements("", WithTarget(d.selector), WithPatchMode(PatchRemove))
}

// ReadToastOptions decodes toast options from the "toast" DataStar signal:
//
//	<button data-signals="{toast: {type: 'info', message: 'Hi', container: 'top-right'}}"
//	        data-on-click="@post('/toasts')">
func ReadToastOptions(r *http.Request) (toast.Options, error) {
	var signals struct {
		Toast toast.Options `json:"toast"`
	}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if signals.Toast == nil {
		return nil, ErrBadRequest
	}
	return signals.Toast, nil
}
