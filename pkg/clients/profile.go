package clients

import (
	"github.com/iancoleman/strcase"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// KeyNaming is the case convention a client uses for entry field names.
type KeyNaming int

const (
	// NamingCamel produces lowerCamelCase field names (httpUrl).
	NamingCamel KeyNaming = iota
	// NamingSnake produces snake_case field names (http_headers).
	NamingSnake
)

// Apply converts a canonical lowerCamelCase field name to n.
func (n KeyNaming) Apply(field string) string {
	if n == NamingSnake {
		return strcase.ToSnake(field)
	}
	return strcase.ToLowerCamel(field)
}

func (n KeyNaming) String() string {
	if n == NamingSnake {
		return "snake_case"
	}
	return "camelCase"
}

// TransportSupport declares which transports a client can represent.
type TransportSupport struct {
	// Stdio reports that the client can launch local processes.
	Stdio bool

	// HTTPNative reports that the client speaks streamable HTTP itself.
	HTTPNative bool

	// HTTPBridge reports that http is emulated with a stdio mcp-remote
	// process. Only consulted when HTTPNative is false.
	HTTPBridge bool
}

// Supports reports whether t can be represented by the client.
func (ts TransportSupport) Supports(t mcp.Transport) bool {
	switch t {
	case mcp.TransportStdio:
		return ts.Stdio
	case mcp.TransportHTTP:
		return ts.HTTPNative || ts.HTTPBridge
	default:
		return false
	}
}

// CLIMode selects how an install command is produced for a client.
type CLIMode string

const (
	// CLINative uses the client's own command, e.g. `claude mcp add`.
	CLINative CLIMode = "native_cli"
	// CLICommandBuilder invokes the shared configure-mcp-server tool.
	CLICommandBuilder CLIMode = "command_builder"
	// CLIUnsupported means the client has no command-line surface.
	CLIUnsupported CLIMode = "unsupported"
)

// NativeInput is what a native command function receives. Server and Entry
// are the exact values BuildConfiguration emits for the same params.
type NativeInput struct {
	ClientID string
	Server   *mcp.Server
	Entry    map[string]any
}

// NativeCommandFunc produces a client's own install command.
type NativeCommandFunc func(in NativeInput) (*Command, error)

// CLIInstall is the tagged union over CLIMode.
type CLIInstall struct {
	Mode CLIMode

	// Native is required when Mode is CLINative.
	Native NativeCommandFunc

	// Reason explains why there is no CLI when Mode is CLIUnsupported.
	Reason string
}

// Availability says whether a client can be configured locally at all.
type Availability int

const (
	// Configurable clients accept a local config file or CLI command.
	Configurable Availability = iota
	// WebUIOnly clients are configured exclusively through a web UI.
	WebUIOnly
	// AdminManaged clients have their server list set by an organization admin.
	AdminManaged
)

func (a Availability) String() string {
	switch a {
	case Configurable:
		return "configurable"
	case WebUIOnly:
		return "web_ui_only"
	case AdminManaged:
		return "admin_managed"
	default:
		return "unknown"
	}
}

// ConfigFormat is the serialization a client's config file uses.
type ConfigFormat string

// Config file formats.
const (
	FormatJSON  ConfigFormat = "json"
	FormatJSONC ConfigFormat = "jsonc"
	FormatYAML  ConfigFormat = "yaml"
	FormatTOML  ConfigFormat = "toml"
)

// Profile is the declarative description of one supported client. All
// per-client variation lives here; the builder holds none.
//
// Profiles are immutable once registered and must not be modified.
type Profile struct {
	// ID is the unique client identifier, e.g. "claude-code".
	ID string

	// DisplayName is the human-readable client name.
	DisplayName string

	// Availability is Configurable for every client a builder can be made for.
	Availability Availability

	// Message explains why a non-configurable client is refused.
	Message string

	// ConfigRootKey is the top-level key of the generated server collection.
	ConfigRootKey string

	// KeyNaming is applied to every entry field name.
	KeyNaming KeyNaming

	// Transports declares transport capability.
	Transports TransportSupport

	// TypeField maps the effective transport to the value of an explicit
	// "type" discriminator. A missing transport means no type field.
	TypeField map[mcp.Transport]string

	// FieldMap renames canonical fields: command, args, env, url, headers, type.
	FieldMap map[string]string

	// NameField, when set, repeats the member key inside the entry.
	NameField string

	// StaticFields are fixed fields the client schema requires.
	StaticFields map[string]any

	// CLI selects the install command strategy.
	CLI CLIInstall

	// ConfigFormat is the serialization of the client's config file.
	ConfigFormat ConfigFormat

	// ConfigPaths maps GOOS to the documented config file location.
	ConfigPaths map[string]string
}

// field returns the client's name for a canonical field.
func (p *Profile) field(canonical string) string {
	name := canonical
	if renamed, ok := p.FieldMap[canonical]; ok {
		name = renamed
	}
	return p.KeyNaming.Apply(name)
}

// ConfigPath returns the documented config file path for goos, or "" when
// the client has none.
func (p *Profile) ConfigPath(goos string) string {
	return p.ConfigPaths[goos]
}

// IsConfigurable reports whether a builder can be created for p.
func (p *Profile) IsConfigurable() bool {
	return p.Availability == Configurable
}

// validate checks the catalog invariants for a single profile.
func (p *Profile) validate() error {
	if p.ID == "" {
		return errors.Wrap(ErrInvalidProfile, "profile id is empty")
	}
	if p.ID != normalizeID(p.ID) {
		return errors.Wrapf(ErrInvalidProfile, "client %q: id must be lowercase without surrounding spaces", p.ID)
	}
	if !p.IsConfigurable() {
		if p.Message == "" {
			return errors.Wrapf(ErrInvalidProfile, "client %q: non-configurable profile needs a message", p.ID)
		}
		return nil
	}
	if p.ConfigRootKey == "" {
		return errors.Wrapf(ErrInvalidProfile, "client %q: config root key is empty", p.ID)
	}
	if !p.Transports.Stdio && !p.Transports.HTTPNative && !p.Transports.HTTPBridge {
		return errors.Wrapf(ErrInvalidProfile, "client %q: no supported transport", p.ID)
	}
	switch p.CLI.Mode {
	case CLINative:
		if p.CLI.Native == nil {
			return errors.Wrapf(ErrInvalidProfile, "client %q: native CLI mode without command function", p.ID)
		}
	case CLICommandBuilder, CLIUnsupported:
	default:
		return errors.Wrapf(ErrInvalidProfile, "client %q: unknown CLI mode %q", p.ID, p.CLI.Mode)
	}
	switch p.ConfigFormat {
	case FormatJSON, FormatJSONC, FormatYAML, FormatTOML:
	default:
		return errors.Wrapf(ErrInvalidProfile, "client %q: unknown config format %q", p.ID, p.ConfigFormat)
	}
	return nil
}
