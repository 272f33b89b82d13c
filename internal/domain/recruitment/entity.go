package recruitment

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

var ValidEmploymentTypes = []string{
	string(EmploymentFullTime),
	string(EmploymentPartTime),
	string(EmploymentContract),
	string(EmploymentInternship),
}

type PostingStatus string

const (
	PostingDraft     PostingStatus = "draft"
	PostingPublished PostingStatus = "published"
	PostingClosed    PostingStatus = "closed"
)

var ValidPostingStatuses = []string{
	string(PostingDraft),
	string(PostingPublished),
	string(PostingClosed),
}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationHired     ApplicationStatus = "hired"
)

var ValidApplicationStatuses = []string{
	string(ApplicationPending),
	string(ApplicationReviewing),
	string(ApplicationInterview),
	string(ApplicationRejected),
	string(ApplicationHired),
}

// JobPosting is an open position. Only published postings are visible on
// the public job board.
type JobPosting struct {
	ID             string
	Title          string
	Department     string
	Description    string
	Requirements   *string
	SalaryMin      *decimal.Decimal
	SalaryMax      *decimal.Decimal
	EmploymentType EmploymentType
	Location       *string
	Status         PostingStatus
	Deadline       *time.Time
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// ApplicationCount is joined for HR listings.
	ApplicationCount int
}

// IsPublished reports whether candidates can apply to the posting.
func (p JobPosting) IsPublished() bool { return p.Status == PostingPublished }

// JobApplication is an external candidate's application to a posting. The
// resume lives in file storage, the row only keeps its path.
type JobApplication struct {
	ID             string
	JobPostingID   string
	CandidateName  string
	CandidateEmail string
	CandidatePhone *string
	CoverLetter    *string
	ResumePath     *string
	Status         ApplicationStatus
	Notes          *string
	AppliedAt      time.Time
	UpdatedAt      time.Time

	// PostingTitle is joined for listings.
	PostingTitle string
}
