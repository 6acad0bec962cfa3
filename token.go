package mdlex

import "strconv"

// Kind identifies the Markdown construct a Token represents.
type Kind uint8

const (
	// KindParagraph is a run of plain text up to the end of a line.
	KindParagraph Kind = iota
	// KindHeading is an ATX heading of level 1 to 6.
	KindHeading
	// KindCode is a fenced code block.
	KindCode
	// KindInlineCode is a backtick code span.
	KindInlineCode
	// KindBlockquote is a '>' quote running to the next blank line.
	KindBlockquote
	// KindLink is an inline link [label](href).
	KindLink
	// KindLinkReference is a reference link [label][identifier].
	KindLinkReference
	// KindImage is an inline image ![alt](src).
	KindImage
	// KindImageReference is a reference image ![alt][identifier].
	KindImageReference
	// KindBreak is a single newline.
	KindBreak

	// The kinds below are part of the token model but are not produced by
	// Tokenize yet. Consumers may switch on them.

	KindThematicBreak
	KindHTML
	KindList
	KindListItem
	KindDefinition
	KindEmphasis
	KindStrong
)

var kindNames = [...]string{
	KindParagraph:      "Paragraph",
	KindHeading:        "Heading",
	KindCode:           "Code",
	KindInlineCode:     "InlineCode",
	KindBlockquote:     "Blockquote",
	KindLink:           "Link",
	KindLinkReference:  "LinkReference",
	KindImage:          "Image",
	KindImageReference: "ImageReference",
	KindBreak:          "Break",
	KindThematicBreak:  "ThematicBreak",
	KindHTML:           "Html",
	KindList:           "List",
	KindListItem:       "ListItem",
	KindDefinition:     "Definition",
	KindEmphasis:       "Emphasis",
	KindStrong:         "Strong",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Produced reports whether Tokenize can emit tokens of this kind.
func (k Kind) Produced() bool {
	return k <= KindBreak
}

// Token is one classified unit of Markdown source.
//
// Payload fields hold text with the identifying delimiters removed.
// Which fields are set depends on Kind:
//
//	Paragraph, InlineCode, Blockquote   Text
//	Heading                             Level, Text
//	Code                                Lang, Text (the body)
//	Link, Image                         Text (label/alt), Dest (href/src)
//	LinkReference, ImageReference       Text (label/alt), Dest (identifier)
//	Break                               none
type Token struct {
	Kind  Kind
	Level int
	Text  string
	Lang  string
	Dest  string

	// Pos is where the token starts in the source; End is the byte offset
	// just past the last source byte it consumed.
	Pos Pos
	End int
}

// IsLink reports whether the token is a link, image or one of their
// reference forms.
func (t Token) IsLink() bool {
	switch t.Kind {
	case KindLink, KindLinkReference, KindImage, KindImageReference:
		return true
	}
	return false
}

// String returns a compact, unambiguous form such as Heading(2, "Intro").
func (t Token) String() string {
	var buf []byte
	buf = append(buf, t.Kind.String()...)
	switch t.Kind {
	case KindBreak, KindThematicBreak:
		return string(buf)
	case KindHeading:
		buf = append(buf, '(')
		buf = strconv.AppendInt(buf, int64(t.Level), 10)
		buf = append(buf, ", "...)
		buf = strconv.AppendQuote(buf, t.Text)
	case KindCode:
		buf = append(buf, '(')
		buf = strconv.AppendQuote(buf, t.Lang)
		buf = append(buf, ", "...)
		buf = strconv.AppendQuote(buf, t.Text)
	case KindLink, KindLinkReference, KindImage, KindImageReference, KindDefinition:
		buf = append(buf, '(')
		buf = strconv.AppendQuote(buf, t.Text)
		buf = append(buf, ", "...)
		buf = strconv.AppendQuote(buf, t.Dest)
	default:
		buf = append(buf, '(')
		buf = strconv.AppendQuote(buf, t.Text)
	}
	buf = append(buf, ')')
	return string(buf)
}
