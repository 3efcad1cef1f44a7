package render

import (
	"github.com/gookit/color"
)

// Styler decorates plain strings for display.
// Implementations must only add presentation; the text itself never changes.
type Styler interface {
	// Identity styles the "login@host" line.
	Identity(s string) string
	// Label styles a field label such as "Followers".
	Label(s string) string
	// ErrorTag styles the "error" prefix of failure messages.
	ErrorTag(s string) string
	// HintTag styles the "help" prefix of advisory messages.
	HintTag(s string) string
}

// PlainStyler returns every string unchanged.
type PlainStyler struct{}

func (PlainStyler) Identity(s string) string { return s }
func (PlainStyler) Label(s string) string    { return s }
func (PlainStyler) ErrorTag(s string) string { return s }
func (PlainStyler) HintTag(s string) string  { return s }

// ColorStyler renders ANSI colors through gookit/color.
// gookit/color itself drops the codes when it detects no color support.
type ColorStyler struct {
	identity color.Style
	label    color.Style
	errorTag color.Style
	hintTag  color.Style
}

// NewColorStyler creates a ColorStyler with the default palette:
// blue identity and labels, bold red errors, bold cyan hints.
func NewColorStyler() *ColorStyler {
	return &ColorStyler{
		identity: color.New(color.FgBlue),
		label:    color.New(color.FgBlue),
		errorTag: color.New(color.FgRed, color.OpBold),
		hintTag:  color.New(color.FgCyan, color.OpBold),
	}
}

func (c *ColorStyler) Identity(s string) string { return c.identity.Sprint(s) }
func (c *ColorStyler) Label(s string) string    { return c.label.Sprint(s) }
func (c *ColorStyler) ErrorTag(s string) string { return c.errorTag.Sprint(s) }
func (c *ColorStyler) HintTag(s string) string  { return c.hintTag.Sprint(s) }
