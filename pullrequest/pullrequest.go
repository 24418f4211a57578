package pullrequest

// PullRequest represents a pull request
type PullRequest struct {
	Number            int
	Title             string
	URL               string
	HeadRepository    string
	BaseRepository    string
	IsCrossRepository bool
}

// Repository represents the repository a pull request is verified against
type Repository struct {
	FullName string
}
