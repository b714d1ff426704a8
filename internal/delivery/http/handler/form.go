package handler

import (
	"net/http"

	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/pkg/response"

	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

// maxFormBytes bounds urlencoded bodies; the largest form has six short fields.
const maxFormBytes = 64 << 10

var formDecoder = form.NewDecoder()

// decodeForm parses an urlencoded body into a typed request DTO.
// Fields absent from the body decode to their zero value.
func decodeForm(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// renderPage writes a rendered page, or fallback as plain text when rendering fails.
func renderPage(w http.ResponseWriter, renderer *view.Renderer, log *logrus.Logger, page string, data interface{}, fallback string) {
	body, err := renderer.Render(page, data)
	if err != nil {
		log.Warnf("Failed to render %s page: %+v", page, err)
		response.Text(w, http.StatusOK, fallback)
		return
	}
	response.HTML(w, http.StatusOK, body)
}
