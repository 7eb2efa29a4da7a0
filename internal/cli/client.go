// Package cli provides CLI-specific views and helpers for the
// mcp-config-glean command.
package cli

import (
	"strings"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

// ListSuggestion points users at the command that lists client ids.
const ListSuggestion = "Run: mcp-config-glean clients"

// ClientInfo is a display row for one catalog entry.
type ClientInfo struct {
	ID          string
	DisplayName string

	// Status is "configurable", "web_ui_only" or "admin_managed".
	Status string

	// Install describes how BuildCommand installs the server: "native_cli",
	// "command_builder" or empty when there is no command line.
	Install string

	// Format is the client's configuration file format.
	Format string

	// Path is the client's config file on the given OS, or empty.
	Path string

	// Note explains why a client cannot be configured or installed.
	Note string
}

// Clients returns a row per registered client, in catalog order.
func Clients(reg *clients.Registry, goos string) []ClientInfo {
	profiles := reg.Profiles()
	infos := make([]ClientInfo, 0, len(profiles))
	for _, p := range profiles {
		info := ClientInfo{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Status:      p.Availability.String(),
		}
		if !p.IsConfigurable() {
			info.Note = p.Message
			infos = append(infos, info)
			continue
		}

		info.Format = string(p.ConfigFormat)
		info.Path = p.ConfigPath(goos)
		if p.CLI.Mode != clients.CLIUnsupported {
			info.Install = string(p.CLI.Mode)
		} else {
			info.Note = p.CLI.Reason
		}
		infos = append(infos, info)
	}
	return infos
}

// ResolveBuilder creates a builder for id and turns registry failures into
// user errors that carry a suggestion.
func ResolveBuilder(reg *clients.Registry, id string) (*clients.Builder, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewUserError(errors.New("no client specified"), "Pass --client <id>. "+ListSuggestion)
	}

	b, err := reg.CreateBuilder(id)
	if err == nil {
		return b, nil
	}

	var unsupported *clients.UnsupportedClientError
	if errors.As(err, &unsupported) {
		return nil, errors.NewUserError(err, "Use one of: "+strings.Join(reg.Configurable(), ", "))
	}
	if errors.Is(err, clients.ErrUnknownClient) {
		return nil, errors.NewUserError(err, ListSuggestion)
	}
	return nil, errors.NewSystemError(err, "")
}
