package domain

const (
	// PlatformGitHub is the host name shown in the identity line.
	PlatformGitHub = "github"

	// ToolName identifies the program in the User-Agent header and version banner.
	ToolName = "GitHubFetch"
)
