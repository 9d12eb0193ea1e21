package handlers

import (
	"net/http"

	"github.com/glassbrowser/glassd/internal/auth"
	"github.com/glassbrowser/glassd/internal/httpserver/deps"
)

type beginAuthResponse struct {
	AuthURL string `json:"authUrl"`
}

type authStatusResponse struct {
	State auth.FlowState `json:"state"`
	Token string         `json:"token,omitempty"`
	Error string         `json:"error,omitempty"`
}

// BeginAuth starts a sign-in flow and returns the provider URL to open.
// The outcome is collected by polling AuthStatus.
func BeginAuth(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL, err := d.Auth.Begin()
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusAccepted, beginAuthResponse{AuthURL: authURL})
	}
}

func AuthStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, token, err := d.Auth.Status()
		resp := authStatusResponse{State: state, Token: token}
		if err != nil {
			resp.Error = err.Error()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func CancelAuth(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Auth.Cancel()
		w.WriteHeader(http.StatusNoContent)
	}
}
