package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/handler/http/response"
)

type RecruitmentHandler interface {
	CreatePosting(w http.ResponseWriter, r *http.Request)
	UpdatePosting(w http.ResponseWriter, r *http.Request)
	DeletePosting(w http.ResponseWriter, r *http.Request)
	GetPosting(w http.ResponseWriter, r *http.Request)
	ListPostings(w http.ResponseWriter, r *http.Request)

	ListPublicPostings(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)

	ListApplications(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		recruitmentService: recruitmentService,
	}
}

// CreatePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.CreatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

// UpdatePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated successfully", result)
}

// DeletePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeletePosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recruitmentService.DeletePosting(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}

// GetPosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recruitmentService.GetPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPostings implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	filter := recruitment.PostingFilter{
		Department: queryString(r, "department"),
		Status:     queryString(r, "status"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.recruitmentService.ListPostings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, result.Meta)
}

// ListPublicPostings implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListPublicPostings(w http.ResponseWriter, r *http.Request) {
	filter := recruitment.PostingFilter{
		Department: queryString(r, "department"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	result, err := h.recruitmentService.ListPublicPostings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, result.Meta)
}

// Apply implements RecruitmentHandler. The candidate details arrive in the
// "data" part and the resume, when provided, in the "resume" file part.
func (h *recruitmentHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var req recruitment.ApplyRequest
	if data := r.FormValue("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			slog.Error("Failed to parse data field", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.JobPostingID = chi.URLParam(r, "id")

	if _, header, err := r.FormFile("resume"); err == nil {
		req.Resume = header
	}

	result, err := h.recruitmentService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted successfully", result)
}

// ListApplications implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := recruitment.ApplicationFilter{
		JobPostingID: queryString(r, "job_posting_id"),
		Status:       queryString(r, "status"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	result, err := h.recruitmentService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, result.Meta)
}

// UpdateApplicationStatus implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdateApplicationStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated", result)
}
