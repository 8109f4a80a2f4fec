// Package filepick offers an fzf-assisted file prompt for the CLI's exemplar
// (-in) flag. Adapted from the teacher's pkg/cli/fzf.go and
// pkg/cli/utils.go's PromptLine/PromptLineOrFzf: the terminal-aware preview
// command selection is reused verbatim (it has nothing to do with what kind
// of image is being browsed), but the search is narrowed from
// jpg/png/gif/tiff to this module's own .bmp exemplars, and the preview
// pane invokes no JPEG-specific tooling.
package filepick

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// terminalHints abstracts the three protocol checks filepick needs from
// internal/termpreview, without importing it directly (that package's
// detection logic is self-contained and has no BMP-specific concerns).
type terminalHints struct {
	kitty  func() bool
	inline func() bool
	sixel  func() bool
}

var hints = terminalHints{
	kitty:  isKitty,
	inline: isInlineImageCapable,
	sixel:  isSixelCapable,
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "vscode", "VSCode":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

func isSixelCapable() bool {
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "foot") || os.Getenv("WT_SESSION") != ""
}

// previewCommand builds the fzf --preview command string for the
// detected terminal, trying the best available renderer first and
// falling back to chafa's block-symbol rendering.
func previewCommand() string {
	switch {
	case hints.kitty():
		return "kitty +kitten icat --silent {} 2>/dev/null || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	case hints.inline():
		return "imgcat {} 2>/dev/null || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	case hints.sixel():
		return "img2sixel {} 2>/dev/null || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	default:
		return "chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	}
}

// SelectBMPFile launches fzf over the .bmp files found under startDir and
// returns the selected path. It requires both `find` and `fzf` on PATH.
func SelectBMPFile(startDir string) (string, error) {
	quotedDir := strconv.Quote(startDir)
	cmdStr := fmt.Sprintf(
		"find %s -type f -iname '*.bmp' | fzf --height 100%% --border --prompt='BMP files> ' --preview=%q --preview-window='right:60%%'",
		quotedDir, previewCommand(),
	)
	cmd := exec.Command("bash", "-lc", cmdStr)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("filepick: running fzf: %w", err)
	}

	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("filepick: no file selected")
	}
	return selection, nil
}

// PromptLine displays a prompt on out and reads a trimmed line from in.
func PromptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptBMPPathOrFzf reads a line from in; a lone "/" launches the fzf BMP
// picker rooted at searchDir instead of taking the typed value literally.
func PromptBMPPathOrFzf(in io.Reader, out io.Writer, prompt, searchDir string) (string, error) {
	input, err := PromptLine(in, out, prompt)
	if err != nil {
		return "", err
	}
	if input != "/" {
		return input, nil
	}
	sel, err := SelectBMPFile(searchDir)
	if err != nil {
		return "", fmt.Errorf("filepick: fzf selection failed: %w", err)
	}
	fmt.Fprintf(out, " [fzf] %s\n", sel)
	return sel, nil
}
