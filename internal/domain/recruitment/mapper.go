package recruitment

import "time"

const timestampFormat = "2006-01-02 15:04:05"

// NewPostingResponse maps a job posting to its API shape.
func NewPostingResponse(p JobPosting) PostingResponse {
	resp := PostingResponse{
		ID:               p.ID,
		Title:            p.Title,
		Department:       p.Department,
		Description:      p.Description,
		Requirements:     p.Requirements,
		EmploymentType:   string(p.EmploymentType),
		Location:         p.Location,
		Status:           string(p.Status),
		ApplicationCount: p.ApplicationCount,
		CreatedAt:        p.CreatedAt.Format(timestampFormat),
	}

	if p.SalaryMin != nil {
		salaryMin := p.SalaryMin.String()
		resp.SalaryMin = &salaryMin
	}

	if p.SalaryMax != nil {
		salaryMax := p.SalaryMax.String()
		resp.SalaryMax = &salaryMax
	}

	if p.Deadline != nil {
		deadline := p.Deadline.Format(time.DateOnly)
		resp.Deadline = &deadline
	}

	return resp
}

func NewPostingResponses(postings []JobPosting) []PostingResponse {
	responses := make([]PostingResponse, 0, len(postings))
	for _, p := range postings {
		responses = append(responses, NewPostingResponse(p))
	}
	return responses
}

// NewApplicationResponse maps a job application to its API shape. The
// resume URL is resolved by the caller from the stored path.
func NewApplicationResponse(a JobApplication, resumeURL *string) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		JobPostingID:   a.JobPostingID,
		PostingTitle:   a.PostingTitle,
		CandidateName:  a.CandidateName,
		CandidateEmail: a.CandidateEmail,
		CandidatePhone: a.CandidatePhone,
		CoverLetter:    a.CoverLetter,
		ResumeURL:      resumeURL,
		Status:         string(a.Status),
		Notes:          a.Notes,
		AppliedAt:      a.AppliedAt.Format(timestampFormat),
	}
}
