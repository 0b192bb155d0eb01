package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	domainErrors "github.com/Tomas-vilte/MailMate/internal/errors"
	"github.com/Tomas-vilte/MailMate/internal/i18n"
	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T) (*GitHubClient, *MockIssuesService, *MockUsersService) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	issues := new(MockIssuesService)
	users := new(MockUsersService)
	client := NewGitHubClientWithServices(issues, users, "acme", "backend", trans)

	return client, issues, users
}

func ghResponse(statusCode int) *github.Response {
	return &github.Response{Response: &http.Response{StatusCode: statusCode}}
}

func TestCreateIssue(t *testing.T) {
	t.Run("creates the issue with title, body and labels", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("Create", mock.Anything, "acme", "backend", mock.MatchedBy(func(req *github.IssueRequest) bool {
			return req.GetTitle() == "[Bug] Fix the build" &&
				req.GetBody() == "the body" &&
				req.Labels != nil && len(*req.Labels) == 1
		})).Return(&github.Issue{
			ID:      github.Ptr(int64(99)),
			Number:  github.Ptr(7),
			Title:   github.Ptr("[Bug] Fix the build"),
			State:   github.Ptr("open"),
			HTMLURL: github.Ptr("https://github.com/acme/backend/issues/7"),
			Labels:  []*github.Label{{Name: github.Ptr("bug")}},
		}, ghResponse(http.StatusCreated), nil)

		issue, err := client.CreateIssue(context.Background(), "[Bug] Fix the build", "the body", []string{"bug"})

		assert.NoError(t, err)
		assert.Equal(t, 7, issue.Number)
		assert.Equal(t, 99, issue.ID)
		assert.Equal(t, "open", issue.State)
		assert.Equal(t, []string{"bug"}, issue.Labels)
		assert.Equal(t, "https://github.com/acme/backend/issues/7", issue.URL)
		issues.AssertExpectations(t)
	})

	t.Run("no labels omits the field entirely", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("Create", mock.Anything, "acme", "backend", mock.MatchedBy(func(req *github.IssueRequest) bool {
			return req.Labels == nil
		})).Return(&github.Issue{Number: github.Ptr(1)}, ghResponse(http.StatusCreated), nil)

		_, err := client.CreateIssue(context.Background(), "title", "body", nil)

		assert.NoError(t, err)
	})

	t.Run("401 maps to the invalid token error", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("Create", mock.Anything, "acme", "backend", mock.Anything).
			Return(nil, ghResponse(http.StatusUnauthorized), errors.New("bad credentials"))

		_, err := client.CreateIssue(context.Background(), "title", "body", nil)

		assert.ErrorIs(t, err, domainErrors.ErrGitHubTokenInvalid)
	})

	t.Run("403 maps to the rate limit error", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("Create", mock.Anything, "acme", "backend", mock.Anything).
			Return(nil, ghResponse(http.StatusForbidden), errors.New("rate limit exceeded"))

		_, err := client.CreateIssue(context.Background(), "title", "body", nil)

		assert.ErrorIs(t, err, domainErrors.ErrGitHubRateLimit)
	})

	t.Run("other failures are wrapped with the repo", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("Create", mock.Anything, "acme", "backend", mock.Anything).
			Return(nil, ghResponse(http.StatusBadGateway), errors.New("boom"))

		_, err := client.CreateIssue(context.Background(), "title", "body", nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "acme/backend")
	})
}

func TestGetAuthenticatedUser(t *testing.T) {
	t.Run("returns the token owner login", func(t *testing.T) {
		client, _, users := setupClient(t)

		users.On("Get", mock.Anything, "").
			Return(&github.User{Login: github.Ptr("tomas")}, ghResponse(http.StatusOK), nil)

		login, err := client.GetAuthenticatedUser(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "tomas", login)
	})

	t.Run("401 maps to the invalid token error", func(t *testing.T) {
		client, _, users := setupClient(t)

		users.On("Get", mock.Anything, "").
			Return(nil, ghResponse(http.StatusUnauthorized), errors.New("bad credentials"))

		_, err := client.GetAuthenticatedUser(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrGitHubTokenInvalid)
	})
}

func TestEnsureLabels(t *testing.T) {
	t.Run("creates only the missing labels", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("ListLabels", mock.Anything, "acme", "backend", mock.Anything).
			Return([]*github.Label{
				{Name: github.Ptr("bug")},
				{Name: github.Ptr("Docs")},
			}, ghResponse(http.StatusOK), nil)

		issues.On("CreateLabel", mock.Anything, "acme", "backend", mock.Anything).
			Return(&github.Label{}, ghResponse(http.StatusCreated), nil)

		err := client.EnsureLabels(context.Background())

		assert.NoError(t, err)
		// bug y docs ya existen, quedan 4 por crear
		issues.AssertNumberOfCalls(t, "CreateLabel", 4)
	})

	t.Run("listing failure aborts", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("ListLabels", mock.Anything, "acme", "backend", mock.Anything).
			Return(nil, ghResponse(http.StatusForbidden), errors.New("forbidden"))

		err := client.EnsureLabels(context.Background())

		assert.Error(t, err)
		issues.AssertNotCalled(t, "CreateLabel")
	})

	t.Run("races with another creator are tolerated", func(t *testing.T) {
		client, issues, _ := setupClient(t)

		issues.On("ListLabels", mock.Anything, "acme", "backend", mock.Anything).
			Return([]*github.Label{}, ghResponse(http.StatusOK), nil)

		issues.On("CreateLabel", mock.Anything, "acme", "backend", mock.Anything).
			Return(nil, ghResponse(http.StatusUnprocessableEntity), errors.New("already_exists"))

		err := client.EnsureLabels(context.Background())

		assert.NoError(t, err)
	})
}
