package web

import "net/http"

// registerRoutes wires every page and API endpoint onto the mux.
func registerRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/experiences", handleExperiences)
	mux.HandleFunc("/experiences/new", handleExperienceCreateForm)
	mux.HandleFunc("/experiences/", handleExperienceDetail)

	// Auth
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// JSON API
	mux.HandleFunc("/api/experiences", handleAPIExperiences)
	mux.HandleFunc("/api/experiences/interest", handleAPIExpressInterest)
}
