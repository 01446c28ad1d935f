// Package http is the REST transport of the server.
//
// It wires chi routes to the service layer and owns the cross-cutting
// request concerns: trace IDs, access logging, Prometheus metrics, CORS,
// compression, request timeouts, rate limiting, JWT authentication and the
// admin role check. Every response is a [models.Response] envelope.
package http
