package web

import (
	"errors"
	"net/http"
	"strings"

	"experiencebuddy/internal/application/orchestrators"

	experienceStore "experiencebuddy/internal/adapters/storage/experience"
	domain "experiencebuddy/internal/domain/experience"
)

// handleExperiences handles both GET (list) and POST (create) for /experiences
func handleExperiences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		q := r.URL.Query()
		filter := experienceStore.Filter{
			Query:    q.Get("q"),
			Category: q.Get("category"),
			Location: q.Get("location"),
		}

		list, err := stores.ExperienceStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "experiences.html", map[string]any{
				"Experiences": list,
				"Query":       filter.Query,
				"Category":    filter.Category,
				"Location":    filter.Location,
				"HasFilters":  filter.Query != "" || filter.Category != "" || filter.Location != "",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"experiences": list})
		return
	}

	if r.Method == "POST" {
		form := domain.CreateForm{}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			form.Title = r.FormValue("title")
			form.Description = r.FormValue("description")
			form.Date = r.FormValue("date")
			form.Time = r.FormValue("time")
			form.Location = r.FormValue("location")
			form.Category = r.FormValue("category")
			form.ImageURL = r.FormValue("imageUrl")
		} else {
			if err := strictDecode(r, &form); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		// Date arrives as yyyy-mm-dd from the HTML date input; the record
		// keeps the full ISO form.
		if len(form.Date) == len("2006-01-02") {
			form.Date += "T00:00:00.000Z"
		}

		creatorID, creatorName := actingUser(r, placeholderCreatorID, placeholderCreatorName)
		result := orchestrators.ExecuteCreateExperience(ctx, orchestrators.CreateExperienceInput{
			Form:        form,
			CreatorID:   creatorID,
			CreatorName: creatorName,
		}, orchestrators.CreateExperienceDeps{
			ExperienceStore: stores.ExperienceStore,
			GenerateID:      generateID,
			Now:             timeNow,
		})

		if !result.Success {
			status := http.StatusUnprocessableEntity
			if result.FieldErrors == nil {
				status = http.StatusInternalServerError
			}
			if isHTML {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(status)
				renderTemplate(w, r, "experience_create.html", map[string]any{
					"Form":        form,
					"FieldErrors": result.FieldErrors,
					"Error":       result.Message,
				})
				return
			}
			writeJSON(w, status, map[string]any{
				"success": false,
				"message": result.Message,
				"errors":  result.FieldErrors,
			})
			return
		}

		if isHTML {
			http.Redirect(w, r, "/experiences", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":    true,
			"message":    result.Message,
			"experience": result.Experience,
		})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleExperienceCreateForm handles GET /experiences/new
func handleExperienceCreateForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "experience_create.html", map[string]any{
		"Form":        domain.CreateForm{},
		"FieldErrors": domain.FieldErrors(nil),
	})
}

// handleExperienceDetail handles GET /experiences/{id}
func handleExperienceDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/experiences/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	exp, err := stores.ExperienceStore.GetByID(r.Context(), id)
	if errors.Is(err, experienceStore.ErrNotFound) {
		if isHTMLRequest(r) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			renderTemplate(w, r, "not_found.html", map[string]any{"ID": id})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Experience not found.",
		})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	userID, _ := actingUser(r, placeholderInterestUser, "")
	if isHTMLRequest(r) {
		renderTemplate(w, r, "experience_detail.html", map[string]any{
			"Experience":   exp,
			"IsCreator":    exp.CreatorID == userID,
			"IsInterested": exp.HasAttendee(userID),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"experience": exp})
}

// handleAPIExperiences serves the JSON listing regardless of Accept header.
func handleAPIExperiences(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" && r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	r.Header.Set("Accept", "application/json")
	handleExperiences(w, r)
}
