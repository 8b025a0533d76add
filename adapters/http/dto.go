package http

import (
	"github.com/sachin22-web/sachin-portfolio/internal/domain/resume"
)

// Project requests
type CreateProjectRequest struct {
	Title               string   `json:"title" binding:"required"`
	Slug                string   `json:"slug"`
	ShortDescription    string   `json:"short_description"`
	DetailedDescription string   `json:"detailed_description"`
	TechStack           []string `json:"tech_stack"`
	Category            string   `json:"category"`
	CoverImageURL       *string  `json:"cover_image_url"`
	GithubURL           *string  `json:"github_url"`
	LiveURL             *string  `json:"live_url"`
	IsFeatured          bool     `json:"is_featured"`
	DisplayOrder        int      `json:"display_order"`
	ReadmeContent       string   `json:"readme_content"`
}

type UpdateProjectRequest = CreateProjectRequest

// Blog requests
type CreateBlogRequest struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" binding:"required"`
	FeaturedImage *string  `json:"featured_image"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	IsPublished   bool     `json:"is_published"`
}

type UpdateBlogRequest = CreateBlogRequest

// Content section request. The body is the whole document; every update
// replaces the stored content for the key.
type UpsertContentRequest struct {
	Content map[string]any `json:"content" binding:"required"`
}

// Resume requests
type SaveResumeRequest struct {
	FullName     string                  `json:"full_name" binding:"required"`
	Title        string                  `json:"title"`
	Email        string                  `json:"email" binding:"required,email"`
	Phone        *string                 `json:"phone"`
	Location     string                  `json:"location"`
	ProfileImage *string                 `json:"profile_image"`
	Summary      string                  `json:"summary"`
	Experience   []resume.ExperienceItem `json:"experience"`
	Education    []resume.EducationItem  `json:"education"`
	Skills       []resume.SkillCategory  `json:"skills"`
	IsActive     bool                    `json:"is_active"`
}

// Experience requests
type SaveExperienceRequest struct {
	Position     string   `json:"position" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Location     string   `json:"location"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	CompanyLogo  *string  `json:"company_logo"`
}

// Certification requests
type SaveCertificationRequest struct {
	Title            string   `json:"title" binding:"required"`
	Issuer           string   `json:"issuer" binding:"required"`
	IssueDate        string   `json:"issue_date"`
	ExpiryDate       *string  `json:"expiry_date"`
	CredentialID     *string  `json:"credential_id"`
	CredentialURL    *string  `json:"credential_url"`
	CertificateImage *string  `json:"certificate_image"`
	Description      string   `json:"description"`
	Skills           []string `json:"skills"`
}

// Contact form request
type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
