package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
)

// ValidateToken performs the publish workflow's repository-access check
// alone, classifying failures into distinct user-actionable reasons for
// pre-flight feedback. A nil return means the token can see the
// repository and carries push permission.
func (c *Client) ValidateToken(ctx context.Context) error {
	var repo *github.Repository
	err := c.retry(ctx, func() error {
		var err error
		repo, _, err = c.gh.Repositories.Get(ctx, c.owner, c.repo)
		return err
	})
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			switch ghErr.Response.StatusCode {
			case http.StatusNotFound:
				return fmt.Errorf("repository %s/%s not found, or the token cannot see it", c.owner, c.repo)
			case http.StatusUnauthorized:
				return errors.New("token is invalid or expired")
			case http.StatusForbidden:
				return errors.New("token does not have sufficient permissions")
			default:
				return fmt.Errorf("unexpected response from GitHub (HTTP %d): %s", ghErr.Response.StatusCode, ghErr.Message)
			}
		}
		return fmt.Errorf("GitHub API unreachable: %w", err)
	}

	if !repo.GetPermissions()["push"] {
		return fmt.Errorf("token cannot push to %s/%s", c.owner, c.repo)
	}
	return nil
}
