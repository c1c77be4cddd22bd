package web

import (
	"net/http"

	"experiencebuddy/internal/application/orchestrators"
)

// handleAPIExpressInterest handles POST /api/experiences/interest
// Body: {"experience_id": "..."} — the acting user comes from the session,
// or the placeholder identity for anonymous visitors.
func handleAPIExpressInterest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ExperienceID string `json:"experience_id"`
	}
	if err := strictDecode(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request body.",
		})
		return
	}

	userID, userName := actingUser(r, placeholderInterestUser, "")
	result := orchestrators.ExecuteExpressInterest(r.Context(), orchestrators.ExpressInterestInput{
		ExperienceID: body.ExperienceID,
		UserID:       userID,
		UserName:     userName,
	}, orchestrators.ExpressInterestDeps{
		ExperienceStore: stores.ExperienceStore,
		AccountStore:    stores.AccountStore,
		EmailSender:     emailSender,
		EmailFrom:       emailFromAddress,
		EmailReplyTo:    emailReplyTo,
	})

	status := http.StatusOK
	if !result.Success {
		switch result.Message {
		case "Missing experience ID.":
			status = http.StatusBadRequest
		case "Failed to express interest. Experience might not exist.":
			status = http.StatusNotFound
		default:
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, map[string]any{
		"success": result.Success,
		"message": result.Message,
	})
}
