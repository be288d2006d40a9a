package operations

import "net/http"

// Metrics exposes dispatch counters and handler latencies for Prometheus.
//
//encore:api public raw path=/metrics method=GET
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	s.metrics.Handler().ServeHTTP(w, req)
}
