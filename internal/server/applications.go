// ABOUTME: Application handlers for submitting, listing, and withdrawing applications
// ABOUTME: Job Seekers submit and withdraw; Employers list applications to their jobs

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/store"
)

// applicationRequest is the JSON request body for submitting an application.
type applicationRequest struct {
	JobID       string `json:"job_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CoverLetter string `json:"cover_letter"`
}

// handlePostApplication handles POST /api/v1/application/post. Job Seeker only.
func (s *Server) handlePostApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.JobID == "" || req.Name == "" || req.Email == "" ||
		req.Phone == "" || req.Address == "" || req.CoverLetter == "" {
		s.sendError(w, http.StatusBadRequest, "please fill all fields")
		return
	}

	job, err := s.store.GetJob(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			s.sendError(w, http.StatusNotFound, "job not found")
			return
		}
		s.logger.Error("failed to get job", "error", err, "job_id", req.JobID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := auth.MustFromContext(r.Context())

	app := &store.Application{
		ID:          uuid.New().String(),
		JobID:       job.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CoverLetter: req.CoverLetter,
		ApplicantID: user.ID,
		EmployerID:  job.PostedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateApplication(r.Context(), app); err != nil {
		s.logger.Error("failed to create application", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "application submitted successfully",
		"application": app,
	})
}

// handleSeekerApplications handles GET /api/v1/application/jobseeker/getall.
func (s *Server) handleSeekerApplications(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())

	apps, err := s.store.ListApplicationsByApplicant(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err, "user_id", user.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"applications": apps,
	})
}

// handleEmployerApplications handles GET /api/v1/application/employer/getall.
func (s *Server) handleEmployerApplications(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())

	apps, err := s.store.ListApplicationsByEmployer(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("failed to list applications", "error", err, "user_id", user.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"applications": apps,
	})
}

// handleDeleteApplication handles DELETE /api/v1/application/delete/{id}.
// Job Seeker only; an applicant may only withdraw their own application.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	app, err := s.store.GetApplication(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			s.sendError(w, http.StatusNotFound, "application not found")
			return
		}
		s.logger.Error("failed to get application", "error", err, "application_id", id)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := auth.MustFromContext(r.Context())
	if app.ApplicantID != user.ID {
		s.sendError(w, http.StatusForbidden, "you are not the owner of this application")
		return
	}

	if err := s.store.DeleteApplication(r.Context(), app.ID); err != nil {
		s.logger.Error("failed to delete application", "error", err, "application_id", id)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "application deleted successfully",
	})
}
