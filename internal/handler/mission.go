package handler

import (
	"net/http"

	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/logger"
	"github.com/osse101/QuestBoard_Go/internal/mission"
)

// MissionListResponse is the missions page payload
type MissionListResponse struct {
	Missions []domain.MissionView `json:"missions"`
}

// CompleteMissionResponse reports the rewards of a completed mission
type CompleteMissionResponse struct {
	Message string                   `json:"message"`
	Result  *domain.CompletionResult `json:"result"`
}

// HandleListMissions lists every mission with the caller's availability
// @Summary List missions
// @Description Returns all missions with status, completedAt and nextAvailableAt for the caller
// @Tags missions
// @Produce json
// @Success 200 {object} MissionListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/missions [get]
func HandleListMissions(svc mission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		views, err := svc.ListMissions(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, opListMissions, err)
			return
		}
		if views == nil {
			views = []domain.MissionView{}
		}

		respondJSON(w, http.StatusOK, MissionListResponse{Missions: views})
	}
}

// HandleCompleteMission completes a mission for the caller and grants its rewards atomically
// @Summary Complete mission
// @Description Awards XP, money and items; fails with 429 while the mission is on cooldown and 409 on a concurrent completion
// @Tags missions
// @Produce json
// @Param missionID path string true "Mission ID"
// @Success 200 {object} CompleteMissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/missions/{missionID}/complete [post]
func HandleCompleteMission(svc mission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		missionID, ok := getIdentifierParam(w, r, "missionID")
		if !ok {
			return
		}

		result, err := svc.CompleteMission(r.Context(), userID, missionID)
		if err != nil {
			respondServiceError(w, r, opCompleteMission, err)
			return
		}

		log.Debug("Mission completion returned", "mission_id", missionID, "leveled_up", result.LeveledUp)
		respondJSON(w, http.StatusOK, CompleteMissionResponse{
			Message: "Completed mission: " + result.MissionTitle,
			Result:  result,
		})
	}
}
