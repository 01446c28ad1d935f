package http

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// withRealIP replaces RemoteAddr with the forwarded client address, but only
// when the direct peer is one of the trusted proxies. Walking X-Forwarded-For
// from the right, the first hop that is not a trusted proxy is the client;
// entries to its left are client-controlled and ignored.
func (h *Handler) withRealIP(next http.Handler) http.Handler {
	if len(h.trustedProxies) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip, ok := h.forwardedClientIP(r); ok {
			r.RemoteAddr = ip.String()
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) forwardedClientIP(r *http.Request) (netip.Addr, bool) {
	peer, ok := parseIP(clientIP(r))
	if !ok || !h.isTrustedProxy(peer) {
		return netip.Addr{}, false
	}

	hops := forwardedFor(r)
	for i := len(hops) - 1; i >= 0; i-- {
		hop, ok := parseIP(hops[i])
		if !ok {
			return netip.Addr{}, false
		}
		if !h.isTrustedProxy(hop) {
			return hop, true
		}
	}

	if ip, ok := parseIP(r.Header.Get("X-Real-IP")); ok {
		return ip, true
	}
	return netip.Addr{}, false
}

func (h *Handler) isTrustedProxy(ip netip.Addr) bool {
	for _, prefix := range h.trustedProxies {
		if prefix.Contains(ip) {
			return true
		}
	}
	return false
}

func forwardedFor(r *http.Request) []string {
	var hops []string
	for _, value := range r.Header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(value, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}

func parseIP(raw string) (netip.Addr, bool) {
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	ip, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}
