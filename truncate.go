package mdlex

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

func truncateWithEllipsis(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit == 1 {
		return ellipsis
	}
	return truncate.StringWithTail(text, uint(limit), ellipsis)
}
