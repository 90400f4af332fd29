package hosting

import (
	"context"
	"log"

	"github.com/google/go-github/v68/github"
)

// Contributor is one of the repository's top contributors.
type Contributor struct {
	Login         string
	Contributions int
}

// Release describes the repository's latest published release.
type Release struct {
	Tag         string
	PublishedAt string
}

// Commit describes the repository's most recent commit.
type Commit struct {
	ShortHash string
	Message   string
	Author    string
	Date      string
}

// Metadata holds best-effort repository facts. Found reports whether
// the repository record itself resolved; every other field may be
// missing independently and renders as a documented placeholder
// downstream.
type Metadata struct {
	Found bool

	Name        string
	FullName    string
	Description string
	Stars       int
	Forks       int
	Watchers    int
	OpenIssues  int
	License     string
	Topics      []string
	Language    string
	PushedAt    string

	Languages    map[string]int
	Contributors []Contributor

	LatestRelease *Release
	LatestCommit  *Commit
}

const maxContributors = 5

// FetchMetadata gathers repository facts. It never returns an error:
// each sub-call's failure degrades only its own field, and a failure
// to resolve the repository record at all yields a zero Metadata.
func (c *Client) FetchMetadata(ctx context.Context) Metadata {
	var md Metadata

	err := c.retry(ctx, func() error {
		repo, _, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
		if err != nil {
			return err
		}
		md.Found = true
		md.Name = repo.GetName()
		md.FullName = repo.GetFullName()
		md.Description = repo.GetDescription()
		md.Stars = repo.GetStargazersCount()
		md.Forks = repo.GetForksCount()
		md.Watchers = repo.GetSubscribersCount()
		md.OpenIssues = repo.GetOpenIssuesCount()
		md.License = repo.GetLicense().GetName()
		md.Topics = repo.Topics
		md.Language = repo.GetLanguage()
		if ts := repo.GetPushedAt(); !ts.IsZero() {
			md.PushedAt = ts.Format("2006-01-02")
		}
		return nil
	})
	if err != nil {
		log.Printf("metadata: repository record unavailable for %s/%s: %v", c.owner, c.repo, err)
		return md
	}

	c.fetchLatestCommit(ctx, &md)
	c.fetchLatestRelease(ctx, &md)
	c.fetchLanguages(ctx, &md)
	c.fetchContributors(ctx, &md)

	return md
}

func (c *Client) fetchLatestCommit(ctx context.Context, md *Metadata) {
	err := c.retry(ctx, func() error {
		commits, _, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, &github.CommitsListOptions{
			ListOptions: github.ListOptions{PerPage: 1},
		})
		if err != nil {
			return err
		}
		if len(commits) == 0 {
			return nil
		}
		head := commits[0]
		sha := head.GetSHA()
		if len(sha) > 7 {
			sha = sha[:7]
		}
		commit := &Commit{
			ShortHash: sha,
			Message:   firstLine(head.GetCommit().GetMessage()),
			Author:    head.GetCommit().GetAuthor().GetName(),
		}
		if ts := head.GetCommit().GetAuthor().GetDate(); !ts.IsZero() {
			commit.Date = ts.Format("2006-01-02")
		}
		md.LatestCommit = commit
		return nil
	})
	if err != nil {
		log.Printf("metadata: latest commit unavailable: %v", err)
	}
}

func (c *Client) fetchLatestRelease(ctx context.Context, md *Metadata) {
	err := c.retry(ctx, func() error {
		release, _, err := c.gh.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
		if err != nil {
			return err
		}
		rel := &Release{Tag: release.GetTagName()}
		if ts := release.GetPublishedAt(); !ts.IsZero() {
			rel.PublishedAt = ts.Format("2006-01-02")
		}
		md.LatestRelease = rel
		return nil
	})
	if err != nil && !isNotFound(err) {
		log.Printf("metadata: latest release unavailable: %v", err)
	}
}

func (c *Client) fetchLanguages(ctx context.Context, md *Metadata) {
	err := c.retry(ctx, func() error {
		langs, _, err := c.gh.Repositories.ListLanguages(ctx, c.owner, c.repo)
		if err != nil {
			return err
		}
		md.Languages = langs
		return nil
	})
	if err != nil {
		log.Printf("metadata: language breakdown unavailable: %v", err)
	}
}

func (c *Client) fetchContributors(ctx context.Context, md *Metadata) {
	err := c.retry(ctx, func() error {
		contribs, _, err := c.gh.Repositories.ListContributors(ctx, c.owner, c.repo, &github.ListContributorsOptions{
			ListOptions: github.ListOptions{PerPage: maxContributors},
		})
		if err != nil {
			return err
		}
		for i, contrib := range contribs {
			if i >= maxContributors {
				break
			}
			md.Contributors = append(md.Contributors, Contributor{
				Login:         contrib.GetLogin(),
				Contributions: contrib.GetContributions(),
			})
		}
		return nil
	})
	if err != nil {
		log.Printf("metadata: contributors unavailable: %v", err)
	}
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
