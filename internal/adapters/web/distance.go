package web

import (
	"net/http"

	"github.com/corey/distance/internal/domain/geometry"
	"github.com/corey/distance/internal/ports"
)

// handleDistance answers GET /api/distance?x=..&y=..&z=..
// Absent or empty parameters count as 0. Any other text that is not a finite
// number gets a 400 with a fixed message; the error is not logged.
func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := geometry.ParsePoint(q.Get(ports.ParamX), q.Get(ports.ParamY), q.Get(ports.ParamZ))
	if err != nil {
		writeInvalidInput(w)
		return
	}

	d, err := geometry.Distance(p)
	if err != nil {
		writeInvalidInput(w)
		return
	}

	writeJSON(w, http.StatusOK, ports.DistanceResponse{Distance: d})
}

func writeInvalidInput(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ports.ErrorResponse{Error: geometry.ErrInvalidInput.Error()})
}
