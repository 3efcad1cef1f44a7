package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vilaca/githubfetch/internal/domain"
)

// Renderer handles everything the CLI prints.
type Renderer interface {
	RenderSummary(w io.Writer, summary *domain.Summary) error
	RenderHelp(w io.Writer) error
	RenderVersion(w io.Writer, version string) error
	RenderError(w io.Writer, err error) error
	RenderHint(w io.Writer) error
}

// RendererConfig holds configuration for creating a TextRenderer.
type RendererConfig struct {
	Styler Styler
	// Banner prefixes every profile summary with the ASCII-art logo.
	Banner bool
}

// TextRenderer implements Renderer for plain terminal text.
type TextRenderer struct {
	styler Styler
	banner bool
}

// NewTextRenderer creates a new text renderer. A nil Styler means no styling.
func NewTextRenderer(cfg RendererConfig) *TextRenderer {
	styler := cfg.Styler
	if styler == nil {
		styler = PlainStyler{}
	}

	return &TextRenderer{
		styler: styler,
		banner: cfg.Banner,
	}
}

// field is one "Label: value" line of the summary.
type field struct {
	label string
	value string
}

// Render formats a summary as a fixed-order block, one line per field.
// Absent fields render as "" or 0; the "Total Stars" line is only present
// when the star total was computed.
func (r *TextRenderer) Render(summary *domain.Summary) string {
	var profile *domain.Profile
	var starTotal *int
	if summary != nil {
		profile = summary.Profile
		starTotal = summary.StarTotal
	}

	login := profile.GetLogin()

	fields := []field{
		{"ID", strconv.FormatInt(profile.GetID(), 10)},
		{"Name", profile.GetName()},
		{"Company", profile.GetCompany()},
		{"Blog", profile.GetBlog()},
		{"Location", profile.GetLocation()},
		{"Email", profile.GetEmail()},
		{"Bio", profile.GetBio()},
		{"Public Repos", strconv.Itoa(profile.GetPublicRepos())},
		{"Public Gists", strconv.Itoa(profile.GetPublicGists())},
		{"Followers", strconv.Itoa(profile.GetFollowers())},
		{"Following", strconv.Itoa(profile.GetFollowing())},
	}
	if starTotal != nil {
		fields = append(fields, field{"Total Stars", strconv.Itoa(*starTotal)})
	}
	fields = append(fields, field{"Created At", profile.GetCreatedAt()})

	var b strings.Builder
	if r.banner {
		b.WriteString(Banner)
		b.WriteByte('\n')
	}

	host := "@" + domain.PlatformGitHub
	b.WriteString(r.styler.Identity(login))
	b.WriteString(r.styler.Identity(host))
	b.WriteByte('\n')

	// The underline spans the whole identity line.
	b.WriteString(strings.Repeat("-", utf8.RuneCountInString(login)+utf8.RuneCountInString(host)))
	b.WriteByte('\n')

	for _, f := range fields {
		b.WriteString(r.styler.Label(f.label))
		b.WriteString(": ")
		b.WriteString(f.value)
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderSummary writes the rendered summary to w.
func (r *TextRenderer) RenderSummary(w io.Writer, summary *domain.Summary) error {
	_, err := io.WriteString(w, r.Render(summary))
	return err
}

// RenderHelp writes the usage text.
func (r *TextRenderer) RenderHelp(w io.Writer) error {
	_, err := io.WriteString(w, usageText)
	return err
}

// RenderVersion writes the logo, tool name, version and license notice.
func (r *TextRenderer) RenderVersion(w io.Writer, version string) error {
	_, err := fmt.Fprintf(w, "%s\n%s v%s\nFetch GitHub profile info by username\n\n%s\n",
		Banner, domain.ToolName, version, licenseText)
	return err
}

// RenderError writes a labeled failure message.
func (r *TextRenderer) RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "%s: %v\n", r.styler.ErrorTag("error"), err)
	return werr
}

// RenderHint writes the pointer to the help flag.
func (r *TextRenderer) RenderHint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: use `-h` or `--help` to get usage help\n", r.styler.HintTag("help"))
	return err
}
