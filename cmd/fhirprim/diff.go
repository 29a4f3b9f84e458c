package main

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// charDiff renders the character differences from from to to inline,
// deletions as [-x-] and insertions as {+x+}. It returns "" when the texts
// are equal.
func charDiff(from, to string, c *Colors) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	b := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			b.WriteString(c.Delete("[-%s-]", diff.Text))
		case diffpatch.DiffInsert:
			b.WriteString(c.Insert("{+%s+}", diff.Text))
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
