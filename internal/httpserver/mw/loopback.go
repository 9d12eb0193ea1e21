package mw

import (
	"net"
	"net/http"

	"github.com/glassbrowser/glassd/internal/logger"
)

// LoopbackOnly rejects requests from non-loopback peers. The control API
// drives a local shell and is never meant to be reachable from the network.
func LoopbackOnly(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			ip := net.ParseIP(host)
			if ip == nil || !ip.IsLoopback() {
				log.Warn("rejected non-loopback request",
					logger.String("remote_ip", r.RemoteAddr),
					logger.String("path", r.URL.Path))
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
