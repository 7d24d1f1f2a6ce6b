package handler

import (
	"net/http"

	"github.com/osse101/QuestBoard_Go/internal/activity"
	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/user"
)

// ActivityResponse is the caller's activity feed
type ActivityResponse struct {
	Activities []domain.ActivityEntry `json:"activities"`
}

// HandleGetDashboard returns the caller's stats, recent activity and other players
// @Summary Get dashboard
// @Tags users
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/dashboard [get]
func HandleGetDashboard(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, opGetDashboard, err)
			return
		}

		respondJSON(w, http.StatusOK, dashboard)
	}
}

// HandleGetActivity returns the caller's newest activity entries
// @Summary Get activity feed
// @Tags users
// @Produce json
// @Param limit query int false "Number of entries (default 5, max 50)"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/activity [get]
func HandleGetActivity(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		limit, ok := getOptionalIntParam(w, r, "limit", activity.DefaultRecentLimit)
		if !ok {
			return
		}

		entries, err := svc.Recent(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, opGetActivity, err)
			return
		}
		if entries == nil {
			entries = []domain.ActivityEntry{}
		}

		respondJSON(w, http.StatusOK, ActivityResponse{Activities: entries})
	}
}
