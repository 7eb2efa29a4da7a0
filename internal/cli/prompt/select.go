// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/logging"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

// Sentinel errors for client selection.
var (
	ErrNoClients        = errors.New("no clients to select from")
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrSelectionCancelled is shared with the CLI error set so callers can
	// treat a dismissed picker as a clean exit.
	ErrSelectionCancelled = errors.ErrSelectionCancelled
)

// finder picks an index from n items; it is fuzzyfinder.Find in production.
type finder func(profiles []*clients.Profile) (int, error)

// Selector handles interactive client selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
	find   finder
}

// NewSelector creates a Selector on stdin and stderr. When stdin is a
// terminal the fuzzy finder is used instead of a numbered list.
func NewSelector() *Selector {
	s := &Selector{
		reader: os.Stdin,
		writer: os.Stderr,
	}
	if logging.IsInteractive(os.Stdin) {
		s.find = fuzzyFind
	}
	return s
}

// NewSelectorWithIO creates a numbered-list Selector with custom reader and
// writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectClient prompts the user to choose one of profiles.
//
// Returns:
//   - ErrNoClients if the list is empty
//   - The profile if only one exists (auto-selects without prompting)
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled on EOF or when the finder is aborted
func (s *Selector) SelectClient(profiles []*clients.Profile) (*clients.Profile, error) {
	if len(profiles) == 0 {
		return nil, ErrNoClients
	}
	if len(profiles) == 1 {
		return profiles[0], nil
	}

	if s.find != nil {
		idx, err := s.find(profiles)
		if err != nil {
			return nil, err
		}
		return profiles[idx], nil
	}
	return s.selectNumbered(profiles)
}

func (s *Selector) selectNumbered(profiles []*clients.Profile) (*clients.Profile, error) {
	fmt.Fprintln(s.writer, "Select the client to configure:")
	for i, p := range profiles {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, p.DisplayName, p.ID)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return nil, ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "reading selection")
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return profiles[0], nil
	}

	// Accept an id as well as a number.
	for _, p := range profiles {
		if strings.EqualFold(input, p.ID) {
			return p, nil
		}
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number or client id", input)
	}
	if selection < 1 || selection > len(profiles) {
		return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(profiles))
	}
	return profiles[selection-1], nil
}

func fuzzyFind(profiles []*clients.Profile) (int, error) {
	idx, err := fuzzyfinder.Find(
		profiles,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", profiles[i].DisplayName, profiles[i].ID)
		},
		fuzzyfinder.WithPromptString("client> "),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return preview(profiles[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "interactive client selection failed")
	}
	return idx, nil
}

// preview renders the finder's side panel for p.
func preview(p *clients.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Client: %s\nID: %s\nFormat: %s\n", p.DisplayName, p.ID, p.ConfigFormat)
	if p.ConfigRootKey != "" {
		fmt.Fprintf(&b, "Root key: %s\n", p.ConfigRootKey)
	}
	switch p.CLI.Mode {
	case clients.CLIUnsupported:
		fmt.Fprintf(&b, "\n%s\n", p.CLI.Reason)
	default:
		fmt.Fprintf(&b, "Install: %s\n", p.CLI.Mode)
	}
	return b.String()
}
