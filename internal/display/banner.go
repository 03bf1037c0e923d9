package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art followed by the tagline lines, each
// block centred for the current terminal width.
func RenderBanner(tagline ...string) string {
	art := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	var b strings.Builder
	width := termWidth()
	writeCentred(&b, art, width)
	if len(tagline) > 0 {
		b.WriteByte('\n')
		writeCentred(&b, tagline, width)
	}
	return b.String()
}

// writeCentred pads every line by the same amount so the block keeps its
// shape.
func writeCentred(b *strings.Builder, lines []string, width int) {
	maxW := 0
	for _, l := range lines {
		if len(l) > maxW {
			maxW = len(l)
		}
	}
	pad := 0
	if width > maxW {
		pad = (width - maxW) / 2
	}
	for _, l := range lines {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
