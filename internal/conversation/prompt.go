package conversation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Confirmer   = (*LinePrompter)(nil)
	_ domain.ImagePicker = (*LinePrompter)(nil)
)

// LinePrompter asks questions on the REPL and takes the next input line
// as the answer. The caller must not read the same channel concurrently.
type LinePrompter struct {
	in      <-chan string
	printFn PrintFunc
	log     *logger.Logger
}

// NewLinePrompter creates a prompter reading answers from in.
// If printFn is nil, fmt.Printf is used.
func NewLinePrompter(in <-chan string, printFn PrintFunc, log *logger.Logger) *LinePrompter {
	return &LinePrompter{in: in, printFn: orPrintf(printFn), log: log}
}

// Confirm prints message and waits for y/yes. Any other answer declines.
func (p *LinePrompter) Confirm(ctx context.Context, message string) (bool, error) {
	p.printFn("%s [y/N]", message)
	line, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Pick asks for a photo path or URL. A blank answer means no photo. Local
// paths must exist and are returned absolute.
func (p *LinePrompter) Pick(ctx context.Context) (string, bool, error) {
	p.printFn("Photo path or URL (blank to skip):")
	line, err := p.readLine(ctx)
	if err != nil {
		return "", false, err
	}

	ref := strings.Trim(strings.TrimSpace(line), `"'`)
	if ref == "" {
		return "", false, nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, true, nil
	}

	if strings.HasPrefix(ref, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			ref = filepath.Join(home, ref[2:])
		}
	}
	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		p.log.Debug("image pick: %s is not a file", abs)
		p.printFn("No file at %s, photo not changed.", abs)
		return "", false, nil
	}
	return abs, true, nil
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.in:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
