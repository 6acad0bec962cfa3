package mdlex

import (
	"sort"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiFaint     = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles Format applies per token kind.
type Styles struct {
	Position       Style
	Paragraph      Style
	Heading        [maxHeadingLevel]Style
	Code           Style
	InlineCode     Style
	Blockquote     Style
	Link           Style
	LinkReference  Style
	Image          Style
	ImageReference Style
	Break          Style
}

// ForToken returns the style for tok.
func (s Styles) ForToken(tok Token) Style {
	switch tok.Kind {
	case KindParagraph:
		return s.Paragraph
	case KindHeading:
		if tok.Level >= 1 && tok.Level <= maxHeadingLevel {
			return s.Heading[tok.Level-1]
		}
		return s.Paragraph
	case KindCode:
		return s.Code
	case KindInlineCode:
		return s.InlineCode
	case KindBlockquote:
		return s.Blockquote
	case KindLink:
		return s.Link
	case KindLinkReference:
		return s.LinkReference
	case KindImage:
		return s.Image
	case KindImageReference:
		return s.ImageReference
	case KindBreak:
		return s.Break
	}
	return Style{}
}

// Theme provides named styles for token dumps.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	return Style{Prefix: strings.Join(prefixes, "")}
}

func fg(n string) string {
	return "\x1b[38;5;" + n + "m"
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Position:       style(ansiFaint),
		Paragraph:      style(fg("252")),
		Heading:        [maxHeadingLevel]Style{style(ansiBold, fg("213")), style(ansiBold, fg("177")), style(ansiBold, fg("141")), style(fg("141")), style(fg("105")), style(fg("105"))},
		Code:           style(fg("114")),
		InlineCode:     style(fg("150")),
		Blockquote:     style(ansiItalic, fg("245")),
		Link:           style(ansiUnderline, fg("75")),
		LinkReference:  style(fg("75")),
		Image:          style(ansiUnderline, fg("180")),
		ImageReference: style(fg("180")),
		Break:          style(ansiFaint),
	}},
	"gruvbox": theme{name: "gruvbox", styles: Styles{
		Position:       style(fg("243")),
		Paragraph:      style(fg("223")),
		Heading:        [maxHeadingLevel]Style{style(ansiBold, fg("208")), style(ansiBold, fg("214")), style(ansiBold, fg("142")), style(fg("108")), style(fg("109")), style(fg("175"))},
		Code:           style(fg("142")),
		InlineCode:     style(fg("214")),
		Blockquote:     style(ansiItalic, fg("246")),
		Link:           style(ansiUnderline, fg("109")),
		LinkReference:  style(fg("109")),
		Image:          style(ansiUnderline, fg("175")),
		ImageReference: style(fg("175")),
		Break:          style(fg("239")),
	}},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	t, ok := builtinThemes[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns the built-in theme without any styling.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
