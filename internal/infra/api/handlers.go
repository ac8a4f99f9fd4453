package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
)

const maxBodyBytes = 64 << 10

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type smsResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleSendSMS(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithChannel(r.Context(), "sms")

	var req model.SMSRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	verdict, err := s.smsUC.Send(ctx, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !verdict.Success {
		writeJSON(w, http.StatusInternalServerError, smsResponse{
			Success: false,
			Error:   "sms dispatch failed",
			Details: verdict.RawResponse,
		})
		return
	}
	writeJSON(w, http.StatusOK, smsResponse{Success: true})
}

func (s *Server) handleSendTelegram(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithChannel(r.Context(), "telegram")

	var req model.BroadcastRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	res, err := s.broadcastUC.Broadcast(ctx, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeError maps the domain taxonomy onto HTTP: validation is the caller's
// fault, missing configuration and everything else is ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing required fields", Details: err.Error()})
	case errors.Is(err, domain.ErrNotConfigured):
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "server configuration error", Details: err.Error()})
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Msg("dispatch failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
