package certification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Issuer           string    `json:"issuer"`
	IssueDate        string    `json:"issue_date"`
	ExpiryDate       *string   `json:"expiry_date"`
	CredentialID     *string   `json:"credential_id"`
	CredentialURL    *string   `json:"credential_url"`
	CertificateImage *string   `json:"certificate_image"`
	Description      string    `json:"description"`
	Skills           []string  `json:"skills"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

var ErrCertificationNotFound = errors.New("certification not found")

type Repository interface {
	Save(ctx context.Context, c *Certification) error
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	List(ctx context.Context, limit, offset int) ([]*Certification, error)
}
