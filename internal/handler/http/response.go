package http

import (
	"net/http"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/internal/validators"
	"github.com/MKhiriev/selisih-berat/models"
)

func writeOK(w http.ResponseWriter, status int, message string, data any) {
	if message == "" {
		message = app.MsgOK
	}
	utils.WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, status)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}

// writeError logs err and renders it as an error envelope. Validation
// errors carry their field messages; 500 responses carry the error text
// only in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	resp := models.Response{Success: false, Message: message}
	if fields, ok := validators.Fields(err); ok {
		resp.Errors = fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		if h.cfg.Development {
			resp.Detail = err.Error()
		}
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}
