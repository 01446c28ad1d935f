package http

import (
	"net/http"
	"strings"
)

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.writeError(w, r, err, "*Handler.leaderboard")
		return
	}

	board, err := h.services.DashboardService.Leaderboard(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err, "*Handler.leaderboard")
		return
	}

	writeOK(w, http.StatusOK, "", board)
}

// userStats returns the caller's statistics. Admins may ask for another
// user with ?username=.
func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.userStats")
		return
	}

	username := claims.Username
	if requested := strings.TrimSpace(r.URL.Query().Get("username")); requested != "" && claims.IsAdmin() {
		username = requested
	}

	stats, err := h.services.DashboardService.UserStats(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err, "*Handler.userStats")
		return
	}

	writeOK(w, http.StatusOK, "", stats)
}

func (h *Handler) globalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DashboardService.GlobalStats(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.globalStats")
		return
	}

	writeOK(w, http.StatusOK, "", stats)
}

func (h *Handler) earnings(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.DashboardService.Earnings(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.earnings")
		return
	}

	writeOK(w, http.StatusOK, "", report)
}
