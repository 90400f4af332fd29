package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
)

const (
	readmePath = "README.md"

	commitMessage = "docs: add generated README"
	prTitle       = "Add generated README"
	prBody        = "This pull request adds a generated `README.md`. Review and merge at your discretion.\n\n---\n*Opened by [docdroid](https://github.com/docdroid/docdroid).*"
)

// Outcome is the structured result of a publish attempt. Exactly one of
// PullRequestURL (on success) or Reason (on failure) is meaningful.
type Outcome struct {
	Success        bool
	PullRequestURL string
	Reason         string
}

func failure(format string, args ...any) Outcome {
	return Outcome{Reason: fmt.Sprintf(format, args...)}
}

// PublishReadme pushes the document to a fresh branch off the default
// branch's tip and opens a pull request. Each step's failure
// short-circuits to a failed Outcome with a specific reason; nothing is
// raised past this boundary.
func (c *Client) PublishReadme(ctx context.Context, content string) Outcome {
	// Step 1: repository must be reachable and the token must carry
	// push permission.
	var repo *github.Repository
	err := c.retry(ctx, func() error {
		var err error
		repo, _, err = c.gh.Repositories.Get(ctx, c.owner, c.repo)
		return err
	})
	if err != nil {
		return failure("repository %s/%s is inaccessible: %v", c.owner, c.repo, err)
	}
	if !repo.GetPermissions()["push"] {
		return failure("token lacks push permission on %s/%s", c.owner, c.repo)
	}

	// Step 2: resolve the default branch's tip commit.
	baseBranch := repo.GetDefaultBranch()
	if baseBranch == "" {
		baseBranch = "main"
	}
	var baseRef *github.Reference
	err = c.retry(ctx, func() error {
		var err error
		baseRef, _, err = c.gh.Git.GetRef(ctx, c.owner, c.repo, "heads/"+baseBranch)
		return err
	})
	if err != nil {
		return failure("resolving tip of default branch %q: %v", baseBranch, err)
	}
	tipSHA := baseRef.GetObject().GetSHA()

	// Step 3: create a uniquely named branch at that tip.
	newBranch := fmt.Sprintf("docdroid/readme-%d", c.now().Unix())
	ref := &github.Reference{
		Ref:    github.Ptr("refs/heads/" + newBranch),
		Object: &github.GitObject{SHA: github.Ptr(tipSHA)},
	}
	var resp *github.Response
	err = c.retry(ctx, func() error {
		var err error
		_, resp, err = c.gh.Git.CreateRef(ctx, c.owner, c.repo, ref)
		return err
	})
	if err != nil {
		return failure("branch creation failed for %q: %v", newBranch, err)
	}
	if resp == nil || resp.StatusCode != http.StatusCreated {
		return failure("branch creation failed for %q: unexpected status", newBranch)
	}

	// Step 4: probe for an existing README on the default branch. The
	// API rejects a blind create over an existing path without its
	// blob SHA.
	var existingSHA string
	_, sha, err := c.getFile(ctx, readmePath, baseBranch)
	switch {
	case err == nil:
		existingSHA = sha
	case errors.Is(err, ErrNotFound):
		// Fresh create.
	default:
		return failure("probing existing %s: %v", readmePath, err)
	}

	// Step 5: write the document on the new branch.
	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(commitMessage),
		Content: []byte(content),
		Branch:  github.Ptr(newBranch),
	}
	err = c.retry(ctx, func() error {
		var err error
		if existingSHA != "" {
			opts.SHA = github.Ptr(existingSHA)
			_, _, err = c.gh.Repositories.UpdateFile(ctx, c.owner, c.repo, readmePath, opts)
		} else {
			_, _, err = c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, readmePath, opts)
		}
		return err
	})
	if err != nil {
		return failure("writing %s on branch %q: %v", readmePath, newBranch, err)
	}

	// Step 6: open the pull request into the default branch.
	var pr *github.PullRequest
	err = c.retry(ctx, func() error {
		var err error
		pr, resp, err = c.gh.PullRequests.Create(ctx, c.owner, c.repo, &github.NewPullRequest{
			Title: github.Ptr(prTitle),
			Head:  github.Ptr(newBranch),
			Base:  github.Ptr(baseBranch),
			Body:  github.Ptr(prBody),
		})
		return err
	})
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Message != "" {
			return failure("pull request creation failed: %s", ghErr.Message)
		}
		return failure("pull request creation failed: %v", err)
	}
	if resp == nil || resp.StatusCode != http.StatusCreated {
		return failure("pull request creation failed: unexpected status")
	}

	return Outcome{Success: true, PullRequestURL: pr.GetHTMLURL()}
}
