package ui

import (
	"fmt"
	"strings"

	"github.com/corvusworks/seedscan/internal/criteria"
	"github.com/corvusworks/seedscan/internal/scan"
)

// Summary renders the pre-search header: global settings followed by one
// block per compiled criterion.
func Summary(q *criteria.Query, format string, verbosity int) string {
	var b strings.Builder

	b.WriteString(Header("Search:"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, " verbosity: %d\n", verbosity)
	fmt.Fprintf(&b, "    format: %s\n", format)
	fmt.Fprintf(&b, "     depth: %d to %d\n", q.DepthMin, q.DepthMax)
	fmt.Fprintf(&b, "      seed: %d to %d\n", q.SeedMin, q.SeedMax)

	b.WriteString(Header("Criteria:"))
	b.WriteByte('\n')
	for _, c := range q.Criteria {
		b.WriteString(c.String())
	}

	return b.String()
}

// Results renders confirmed matches grouped by seed. Verbosity controls
// detail: 1 lists seeds, 2 adds depths, 3 adds the matched objects.
// Object lines are truncated to the display width.
func Results(ctx *DisplayContext, matches []scan.Match, verbosity int) string {
	var b strings.Builder

	if len(matches) > 0 {
		b.WriteString(Header("Matches:"))
		b.WriteString("\n\n")
	}

	var (
		seeds uint32
		seed  uint32
		depth uint8
	)
	for _, m := range matches {
		if m.Seed != seed {
			seed = m.Seed
			depth = 0
			seeds++
			fmt.Fprintf(&b, "%s %d\n", Accent.Render("Seed"), m.Seed)
		}
		if m.Depth != depth && verbosity > 1 {
			depth = m.Depth
			fmt.Fprintf(&b, "    %s\n", Muted.Render(fmt.Sprintf("Depth %d", m.Depth)))
		}
		if verbosity > 2 {
			fmt.Fprintf(&b, "        %s\n", truncate(m.String(), ctx.TermWidth-8))
		}
	}

	fmt.Fprintf(&b, "\n...%d matching %s found.\n", seeds, pluralize("seed", int(seeds)))
	return b.String()
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}

func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
