// Package mdlex splits Markdown source into a flat sequence of tokens.
//
// The tokenizer recognizes a pragmatic subset of Markdown: ATX headings,
// paragraphs, fenced and inline code, blockquotes, links, images and
// their reference forms. Everything else is plain text. It does not build
// a tree, resolve references or render; those are left to consumers of
// the token sequence.
//
// Recognition is speculative: a recognizer marks the cursor before it
// consumes anything and, if the construct turns out to be malformed,
// rewinds to the mark and reads the line as a paragraph. No input is lost
// or duplicated, and tokenizing never fails.
//
// Example:
//
//	for _, tok := range mdlex.Tokenize("# Hello\n\nSee [docs](https://pkt.systems).\n") {
//		fmt.Println(tok)
//	}
//
// Readers are handled by Lex and TokenizeReader, which can validate input
// and skip front matter, and Format prints a token sequence for humans.
package mdlex
