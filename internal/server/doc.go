// Package server runs the API listener, the optional metrics listener and
// the background workers, and stops all of them gracefully on SIGTERM,
// SIGINT or SIGQUIT.
package server
