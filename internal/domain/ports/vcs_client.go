package ports

import (
	"context"

	"github.com/Tomas-vilte/MailMate/internal/domain/models"
)

// VCSClient define las operaciones que necesitamos del tracker remoto.
type VCSClient interface {
	// CreateIssue crea una issue con título, cuerpo y labels ya transformados
	CreateIssue(ctx context.Context, title, body string, labels []string) (*models.Issue, error)

	// GetAuthenticatedUser obtiene el username del token configurado
	GetAuthenticatedUser(ctx context.Context) (string, error)

	// EnsureLabels crea en el repo las labels permitidas que falten
	EnsureLabels(ctx context.Context) error
}
