package debugserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/sdp/internal/logger"
)

// fixtureResponse is the JSON body returned for a decoded fixture.
type fixtureResponse struct {
	Record        string `json:"record"`
	BytesConsumed int    `json:"bytes_consumed"`
	Value         any    `json:"value"`
}

// getFixture decodes the named record's golden fixture from testdata and
// returns it as JSON. id is accepted for future multi-fixture-per-record
// layouts but is not currently consulted; there is exactly one canonical
// golden file per record name.
func (s *Server) getFixture(w http.ResponseWriter, r *http.Request) {
	recordName := chi.URLParam(r, "record")

	factory, ok := s.registry[recordName]
	if !ok {
		http.Error(w, "unknown record: "+recordName, http.StatusNotFound)
		return
	}

	raw, err := s.readFixture(recordName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "no fixture for "+recordName, http.StatusNotFound)
			return
		}
		logger.Error("debugserver: read fixture failed", "record", recordName, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	dec := factory()
	n, err := dec.DecodeFromSlice(raw)
	if err != nil {
		logger.Error("debugserver: decode fixture failed", "record", recordName, "error", err)
		http.Error(w, "decode failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, fixtureResponse{Record: recordName, BytesConsumed: n, Value: dec})
}

// postFixture decodes an uploaded .sdpb body and reports the outcome to
// the configured audit callback, if any. Authentication is enforced by
// requireBearerToken.
func (s *Server) postFixture(w http.ResponseWriter, r *http.Request) {
	recordName := chi.URLParam(r, "record")

	factory, ok := s.registry[recordName]
	if !ok {
		http.Error(w, "unknown record: "+recordName, http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 64<<20))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	dec := factory()
	n, err := dec.DecodeFromSlice(body)
	if s.auditFunc != nil {
		s.auditFunc(r.Context(), recordName, n, err == nil)
	}
	if err != nil {
		http.Error(w, "decode failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, fixtureResponse{Record: recordName, BytesConsumed: n, Value: dec})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("debugserver: write response failed", "error", err)
	}
}
