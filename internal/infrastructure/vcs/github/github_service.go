package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Tomas-vilte/MailMate/internal/domain/models"
	"github.com/Tomas-vilte/MailMate/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/MailMate/internal/errors"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error)
}

type UsersService interface {
	Get(ctx context.Context, user string) (*github.User, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	usersService  UsersService
	owner         string
	repo          string
	trans         *i18n.Translations
}

// allowedLabels define el color y la descripción de cada label que MailMate crea.
var allowedLabels = map[string]struct {
	Color string
	Key   string
}{
	"urgent":   {"B60205", "label.urgent"},
	"bug":      {"FF0000", "label.bug"},
	"feature":  {"00FF00", "label.feature"},
	"question": {"CC317C", "label.question"},
	"docs":     {"0075CA", "label.docs"},
	"infra":    {"808080", "label.infra"},
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		usersService:  client.Users,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	issuesService IssuesService,
	usersService UsersService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		usersService:  usersService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// CreateIssue crea una issue en el repositorio configurado.
func (ghc *GitHubClient) CreateIssue(ctx context.Context, title, body string, labels []string) (*models.Issue, error) {
	request := &github.IssueRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	}
	if len(labels) > 0 {
		request.Labels = &labels
	}

	issue, resp, err := ghc.issuesService.Create(ctx, ghc.owner, ghc.repo, request)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, domainErrors.ErrGitHubTokenInvalid.WithError(err)
			case http.StatusForbidden:
				return nil, domainErrors.ErrGitHubRateLimit.WithError(err)
			}
		}
		return nil, fmt.Errorf("error creando issue en %s/%s: %w", ghc.owner, ghc.repo, err)
	}

	issueLabels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		issueLabels = append(issueLabels, label.GetName())
	}

	return &models.Issue{
		ID:     int(issue.GetID()),
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		State:  issue.GetState(),
		Labels: issueLabels,
		URL:    issue.GetHTMLURL(),
	}, nil
}

// GetAuthenticatedUser retorna el login del usuario dueño del token.
func (ghc *GitHubClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, resp, err := ghc.usersService.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return "", domainErrors.ErrGitHubTokenInvalid.WithError(err)
		}
		return "", fmt.Errorf("error obteniendo el usuario autenticado: %w", err)
	}
	return user.GetLogin(), nil
}

// EnsureLabels crea en el repositorio las labels conocidas que falten.
func (ghc *GitHubClient) EnsureLabels(ctx context.Context) error {
	existing, _, err := ghc.issuesService.ListLabels(ctx, ghc.owner, ghc.repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return fmt.Errorf("error listando labels de %s/%s: %w", ghc.owner, ghc.repo, err)
	}

	existingNames := make([]string, 0, len(existing))
	for _, label := range existing {
		existingNames = append(existingNames, label.GetName())
	}

	for name, meta := range allowedLabels {
		if ghc.labelExists(existingNames, name) {
			continue
		}

		description := ghc.trans.GetMessage(meta.Key, 0, nil)
		_, _, err := ghc.issuesService.CreateLabel(ctx, ghc.owner, ghc.repo, &github.Label{
			Name:        github.Ptr(name),
			Color:       github.Ptr(meta.Color),
			Description: github.Ptr(description),
		})
		if err != nil {
			if strings.Contains(err.Error(), "already_exists") || strings.Contains(err.Error(), "422") {
				continue
			}
			return fmt.Errorf("error creando label '%s': %w", name, err)
		}
	}

	return nil
}

func (ghc *GitHubClient) labelExists(existingLabels []string, target string) bool {
	for _, l := range existingLabels {
		if strings.EqualFold(l, target) {
			return true
		}
	}
	return false
}
