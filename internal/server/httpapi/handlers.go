package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/weatherhub/internal/common"
	"github.com/dmitrijs2005/weatherhub/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(r.Context(), "error writing response", "error", err.Error())
	}
}

func (s *HTTPServer) registerHandler(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	_, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			http.Error(w, "Username and password are required.", http.StatusBadRequest)
			return
		}
		// duplicates and storage failures are both a 500 here, as they have
		// always been; the cause only goes to the log
		s.logger.Error(r.Context(), "error registering user", "username", req.Username, "error", err.Error())
		http.Error(w, "Error registering user.", http.StatusInternalServerError)
		return
	}

	s.logger.Info(r.Context(), "registered", "username", req.Username)
	w.Write([]byte("User registered successfully."))
}

func (s *HTTPServer) loginHandler(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			http.Error(w, "User not found.", http.StatusNotFound)
		case errors.Is(err, common.ErrorInvalidCredentials):
			http.Error(w, "Invalid password.", http.StatusUnauthorized)
		default:
			s.logger.Error(r.Context(), "error logging in", "username", req.Username, "error", err.Error())
			http.Error(w, "Error logging in.", http.StatusInternalServerError)
		}
		return
	}

	s.writeJSON(w, r, loginResponse{Auth: true, Token: token})
}

func (s *HTTPServer) weatherHandler(w http.ResponseWriter, r *http.Request) {

	location := r.URL.Query().Get("location")
	if location == "" {
		http.Error(w, "Location is required.", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Failed to authenticate token.", http.StatusInternalServerError)
		return
	}

	report, err := s.weather.GetWeather(r.Context(), userID, location)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// provider-reported failure, its message is safe to forward
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.logger.Error(r.Context(), "error fetching weather", "location", location, "error", err.Error())
		http.Error(w, "Error fetching weather data.", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, r, report)
}

func (s *HTTPServer) historyHandler(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Failed to authenticate token.", http.StatusInternalServerError)
		return
	}

	records, err := s.weather.History(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "error retrieving search history", "user_id", userID, "error", err.Error())
		http.Error(w, "Error retrieving search history.", http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []*models.HistoryRecord{}
	}

	s.writeJSON(w, r, records)
}
