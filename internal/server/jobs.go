// ABOUTME: Job posting handlers for listing, posting, updating, and deleting jobs
// ABOUTME: Mutation routes are employer-only; reads require any authenticated principal

package server

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/store"
)

// jobRequest is the JSON request body for posting and updating jobs.
type jobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Location    string `json:"location"`
	FixedSalary int64  `json:"fixed_salary"`
	SalaryFrom  int64  `json:"salary_from"`
	SalaryTo    int64  `json:"salary_to"`
	Expired     *bool  `json:"expired,omitempty"`
}

// jobDetailResponse augments a job with its description rendered as HTML.
type jobDetailResponse struct {
	*store.Job
	DescriptionHTML string `json:"description_html"`
}

// validateSalary enforces that exactly one salary form is provided.
func validateSalary(req *jobRequest) string {
	hasFixed := req.FixedSalary != 0
	hasRange := req.SalaryFrom != 0 || req.SalaryTo != 0

	switch {
	case !hasFixed && !hasRange:
		return "please either provide fixed salary or ranged salary"
	case hasFixed && hasRange:
		return "cannot enter fixed and ranged salary together"
	case hasRange && (req.SalaryFrom == 0 || req.SalaryTo == 0):
		return "please provide both salary_from and salary_to"
	}
	return ""
}

// handleGetAllJobs handles GET /api/v1/job/getall.
func (s *Server) handleGetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActiveJobs(r.Context())
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    jobs,
	})
}

// handleJobDetail handles GET /api/v1/job/{id}.
// The description is also returned rendered from markdown for display.
func (s *Server) handleJobDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			s.sendError(w, http.StatusNotFound, "job not found")
			return
		}
		s.logger.Error("failed to get job", "error", err, "job_id", id)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var htmlBuf bytes.Buffer
	if err := goldmark.Convert([]byte(job.Description), &htmlBuf); err != nil {
		s.logger.Error("failed to render job description", "error", err, "job_id", id)
		htmlBuf.Reset()
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"job": jobDetailResponse{
			Job:             job,
			DescriptionHTML: htmlBuf.String(),
		},
	})
}

// handlePostJob handles POST /api/v1/job/post. Employer only.
func (s *Server) handlePostJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title == "" || req.Description == "" || req.Category == "" ||
		req.Country == "" || req.City == "" || req.Location == "" {
		s.sendError(w, http.StatusBadRequest, "please provide full job details")
		return
	}

	if msg := validateSalary(&req); msg != "" {
		s.sendError(w, http.StatusBadRequest, msg)
		return
	}

	user := auth.MustFromContext(r.Context())

	job := &store.Job{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		PostedBy:    user.ID,
		PostedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateJob(r.Context(), job); err != nil {
		s.logger.Error("failed to create job", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "job posted successfully",
		"job":     job,
	})
}

// handleMyJobs handles GET /api/v1/job/getmyjobs. Employer only.
func (s *Server) handleMyJobs(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())

	jobs, err := s.store.ListJobsByPoster(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err, "user_id", user.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    jobs,
	})
}

// ownedJob loads a job and checks that the principal posted it.
// Writes the appropriate error response and returns nil when the caller
// should stop.
func (s *Server) ownedJob(w http.ResponseWriter, r *http.Request, id string) *store.Job {
	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			s.sendError(w, http.StatusNotFound, "job not found")
			return nil
		}
		s.logger.Error("failed to get job", "error", err, "job_id", id)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return nil
	}

	user := auth.MustFromContext(r.Context())
	if job.PostedBy != user.ID {
		s.sendError(w, http.StatusForbidden, "you are not the owner of this job")
		return nil
	}

	return job
}

// handleUpdateJob handles PUT /api/v1/job/update/{id}. Employer only, owner only.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	job := s.ownedJob(w, r, r.PathValue("id"))
	if job == nil {
		return
	}

	var req jobRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Category != "" {
		job.Category = req.Category
	}
	if req.Country != "" {
		job.Country = req.Country
	}
	if req.City != "" {
		job.City = req.City
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.FixedSalary != 0 || req.SalaryFrom != 0 || req.SalaryTo != 0 {
		if msg := validateSalary(&req); msg != "" {
			s.sendError(w, http.StatusBadRequest, msg)
			return
		}
		job.FixedSalary = req.FixedSalary
		job.SalaryFrom = req.SalaryFrom
		job.SalaryTo = req.SalaryTo
	}
	if req.Expired != nil {
		job.Expired = *req.Expired
	}

	if err := s.store.UpdateJob(r.Context(), job); err != nil {
		s.logger.Error("failed to update job", "error", err, "job_id", job.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "job updated successfully",
		"job":     job,
	})
}

// handleDeleteJob handles DELETE /api/v1/job/delete/{id}. Employer only, owner only.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	job := s.ownedJob(w, r, r.PathValue("id"))
	if job == nil {
		return
	}

	if err := s.store.DeleteJob(r.Context(), job.ID); err != nil {
		s.logger.Error("failed to delete job", "error", err, "job_id", job.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "job deleted successfully",
	})
}
