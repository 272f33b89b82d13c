package recruitment

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/appdotbuilder/hrd-manager/internal/domain/authz"
	"github.com/appdotbuilder/hrd-manager/internal/domain/recruitment"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/clock"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/pagination"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/storage"
)

type RecruitmentServiceImpl struct {
	postingRepo     recruitment.PostingRepository
	applicationRepo recruitment.ApplicationRepository
	fileStorage     storage.FileStorage
	clock           clock.Clock
}

func NewRecruitmentService(
	postingRepo recruitment.PostingRepository,
	applicationRepo recruitment.ApplicationRepository,
	fileStorage storage.FileStorage,
	clk clock.Clock,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		postingRepo:     postingRepo,
		applicationRepo: applicationRepo,
		fileStorage:     fileStorage,
		clock:           clk,
	}
}

// CreatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreatePosting(ctx context.Context, req recruitment.CreatePostingRequest) (recruitment.PostingResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	if !requester.IsHr() {
		return recruitment.PostingResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}

	posting := recruitment.JobPosting{
		Title:          req.Title,
		Department:     req.Department,
		Description:    req.Description,
		Requirements:   req.Requirements,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		EmploymentType: recruitment.EmploymentType(req.EmploymentType),
		Location:       req.Location,
		Status:         recruitment.PostingDraft,
		CreatedBy:      requester.ID,
	}

	if req.Deadline != nil {
		deadline, _ := time.Parse(time.DateOnly, *req.Deadline)
		posting.Deadline = &deadline
	}

	created, err := s.postingRepo.Create(ctx, posting)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}

	return recruitment.NewPostingResponse(created), nil
}

// UpdatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdatePosting(ctx context.Context, req recruitment.UpdatePostingRequest) (recruitment.PostingResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	if !requester.IsHr() {
		return recruitment.PostingResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}

	posting, err := s.postingRepo.GetByID(ctx, req.ID)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Department != nil {
		posting.Department = *req.Department
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.Requirements != nil {
		posting.Requirements = req.Requirements
	}
	if req.SalaryMin != nil {
		posting.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		posting.SalaryMax = req.SalaryMax
	}
	if req.EmploymentType != nil {
		posting.EmploymentType = recruitment.EmploymentType(*req.EmploymentType)
	}
	if req.Location != nil {
		posting.Location = req.Location
	}
	if req.Status != nil {
		posting.Status = recruitment.PostingStatus(*req.Status)
	}
	if req.Deadline != nil {
		deadline, _ := time.Parse(time.DateOnly, *req.Deadline)
		posting.Deadline = &deadline
	}

	updated, err := s.postingRepo.Update(ctx, posting)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}

	return recruitment.NewPostingResponse(updated), nil
}

// DeletePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeletePosting(ctx context.Context, id string) error {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return err
	}
	if !requester.IsHr() {
		return authz.ErrForbidden
	}

	return s.postingRepo.Delete(ctx, id)
}

// GetPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetPosting(ctx context.Context, id string) (recruitment.PostingResponse, error) {
	posting, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}

	return recruitment.NewPostingResponse(posting), nil
}

// ListPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListPostings(ctx context.Context, filter recruitment.PostingFilter) (recruitment.ListPostingsResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return recruitment.ListPostingsResponse{}, err
	}
	if !requester.IsHr() {
		return recruitment.ListPostingsResponse{}, authz.ErrForbidden
	}

	if err := filter.Validate(); err != nil {
		return recruitment.ListPostingsResponse{}, err
	}

	postings, total, err := s.postingRepo.List(ctx, filter)
	if err != nil {
		return recruitment.ListPostingsResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return recruitment.ListPostingsResponse{
		Postings: recruitment.NewPostingResponses(postings),
		Meta:     &meta,
	}, nil
}

// ListPublicPostings implements recruitment.RecruitmentService. No
// authentication: this is the public job board.
func (s *RecruitmentServiceImpl) ListPublicPostings(ctx context.Context, filter recruitment.PostingFilter) (recruitment.ListPostingsResponse, error) {
	if err := filter.Validate(); err != nil {
		return recruitment.ListPostingsResponse{}, err
	}

	postings, total, err := s.postingRepo.ListPublished(ctx, filter)
	if err != nil {
		return recruitment.ListPostingsResponse{}, err
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return recruitment.ListPostingsResponse{
		Postings: recruitment.NewPostingResponses(postings),
		Meta:     &meta,
	}, nil
}

// Apply implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) Apply(ctx context.Context, req recruitment.ApplyRequest) (recruitment.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	posting, err := s.postingRepo.GetByID(ctx, req.JobPostingID)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	if !posting.IsPublished() {
		return recruitment.ApplicationResponse{}, recruitment.ErrPostingNotOpen
	}
	if !recruitment.DeadlineOpen(posting.Deadline, s.clock.Now()) {
		return recruitment.ApplicationResponse{}, recruitment.ErrDeadlinePassed
	}

	application := recruitment.JobApplication{
		JobPostingID:   req.JobPostingID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidatePhone: req.CandidatePhone,
		CoverLetter:    req.CoverLetter,
	}

	if req.Resume != nil {
		file, err := req.Resume.Open()
		if err != nil {
			return recruitment.ApplicationResponse{}, fmt.Errorf("failed to open resume upload: %w", err)
		}
		defer file.Close()

		path := fmt.Sprintf("resumes/%s/%s%s",
			req.JobPostingID, uuid.NewString(), filepath.Ext(req.Resume.Filename))

		storedPath, err := s.fileStorage.Upload(ctx, file, path)
		if err != nil {
			return recruitment.ApplicationResponse{}, fmt.Errorf("failed to store resume: %w", err)
		}
		application.ResumePath = &storedPath
	}

	created, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	created.PostingTitle = posting.Title
	return recruitment.NewApplicationResponse(created, s.resumeURL(created.ResumePath)), nil
}

// ListApplications implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListApplications(ctx context.Context, filter recruitment.ApplicationFilter) (recruitment.ListApplicationsResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return recruitment.ListApplicationsResponse{}, err
	}
	if !requester.IsHr() {
		return recruitment.ListApplicationsResponse{}, authz.ErrForbidden
	}

	if err := filter.Validate(); err != nil {
		return recruitment.ListApplicationsResponse{}, err
	}

	applications, total, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return recruitment.ListApplicationsResponse{}, err
	}

	responses := make([]recruitment.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, recruitment.NewApplicationResponse(a, s.resumeURL(a.ResumePath)))
	}

	meta := pagination.NewMeta(filter.Page, filter.Limit, total)
	return recruitment.ListApplicationsResponse{
		Applications: responses,
		Meta:         &meta,
	}, nil
}

// UpdateApplicationStatus implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateApplicationStatus(ctx context.Context, req recruitment.UpdateApplicationStatusRequest) (recruitment.ApplicationResponse, error) {
	requester, err := authz.RequesterFromContext(ctx)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	if !requester.IsHr() {
		return recruitment.ApplicationResponse{}, authz.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, req.ID, recruitment.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	return recruitment.NewApplicationResponse(updated, s.resumeURL(updated.ResumePath)), nil
}

func (s *RecruitmentServiceImpl) resumeURL(path *string) *string {
	if path == nil {
		return nil
	}
	url := s.fileStorage.GetURL(*path)
	return &url
}
