package clients

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// Config is a client-shaped configuration: one root key holding one member.
// It is a plain nested mapping ready for serialization.
type Config map[string]any

// Members returns the server collection under rootKey.
func (c Config) Members(rootKey string) map[string]any {
	members, _ := c[rootKey].(map[string]any)
	return members
}

// Entry returns the single member of the collection under rootKey.
func (c Config) Entry(rootKey string) (string, map[string]any, bool) {
	members := c.Members(rootKey)
	if len(members) != 1 {
		return "", nil, false
	}
	for name, v := range members {
		if entry, ok := v.(map[string]any); ok {
			return name, entry, true
		}
	}
	return "", nil, false
}

// CLIReason classifies the result of SupportsCLIInstallation.
type CLIReason string

// CLI installation reasons.
const (
	ReasonNativeCLI      CLIReason = "native_cli"
	ReasonCommandBuilder CLIReason = "command_builder"
	ReasonNoConfigPath   CLIReason = "no_config_path"
)

// CLIStatus reports whether BuildCommand can return a command.
type CLIStatus struct {
	Supported bool
	Reason    CLIReason
	// Message is set when Supported is false.
	Message string
}

// Builder produces configuration and install commands for one client.
// It holds no mutable state and is safe for concurrent use.
type Builder struct {
	profile *Profile
}

// NewBuilder binds a builder to p. Most callers use Registry.CreateBuilder,
// which also enforces that p is configurable.
func NewBuilder(p *Profile) (*Builder, error) {
	if p == nil {
		return nil, errors.Wrap(ErrInvalidProfile, "profile is nil")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if !p.IsConfigurable() {
		return nil, unsupportedError(p)
	}
	return &Builder{profile: p}, nil
}

// ClientID returns the id of the bound client.
func (b *Builder) ClientID() string {
	return b.profile.ID
}

// Profile returns the bound profile. It must not be modified.
func (b *Builder) Profile() *Profile {
	return b.profile
}

// BuildServer returns the canonical entry the client will receive for p:
// a native entry, or a bridged stdio entry for http on clients without
// native HTTP support.
func (b *Builder) BuildServer(p mcp.Params) (*mcp.Server, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !b.profile.Transports.Supports(p.Transport) {
		return nil, errors.Wrapf(ErrTransportNotSupported, "%s does not support %s transport", b.profile.DisplayName, p.Transport)
	}
	if p.Transport == mcp.TransportHTTP && !b.profile.Transports.HTTPNative {
		return mcp.NewBridgedServer(p)
	}
	return mcp.NewServer(p)
}

// BuildConfiguration returns the client-shaped configuration for p.
//
// The result always has exactly one key, the profile's ConfigRootKey,
// holding exactly one member whose key depends only on the transport.
func (b *Builder) BuildConfiguration(p mcp.Params) (Config, error) {
	server, err := b.BuildServer(p)
	if err != nil {
		return nil, err
	}
	return Config{
		b.profile.ConfigRootKey: map[string]any{
			server.Name: b.entry(server),
		},
	}, nil
}

// BuildCommand returns the install command for p, or nil when the client
// has no command-line installation path.
func (b *Builder) BuildCommand(p mcp.Params) (*Command, error) {
	server, err := b.BuildServer(p)
	if err != nil {
		return nil, err
	}

	switch b.profile.CLI.Mode {
	case CLINative:
		cmd, err := b.profile.CLI.Native(NativeInput{
			ClientID: b.profile.ID,
			Server:   server,
			Entry:    b.entry(server),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "building %s command", b.profile.DisplayName)
		}
		return cmd, nil
	case CLICommandBuilder:
		return configureCommand(b.profile.ID, p), nil
	default:
		return nil, nil
	}
}

// SupportsCLIInstallation reports whether BuildCommand produces a command
// for this client and why.
func (b *Builder) SupportsCLIInstallation() CLIStatus {
	switch b.profile.CLI.Mode {
	case CLINative:
		return CLIStatus{Supported: true, Reason: ReasonNativeCLI}
	case CLICommandBuilder:
		return CLIStatus{Supported: true, Reason: ReasonCommandBuilder}
	default:
		msg := b.profile.CLI.Reason
		if msg == "" {
			msg = fmt.Sprintf("%s has no configuration file path; configure the server through its own UI", b.profile.DisplayName)
		}
		return CLIStatus{Supported: false, Reason: ReasonNoConfigPath, Message: msg}
	}
}

// entry renders server into the client's field names.
func (b *Builder) entry(server *mcp.Server) map[string]any {
	p := b.profile
	e := make(map[string]any)

	if p.NameField != "" {
		e[p.KeyNaming.Apply(p.NameField)] = server.Name
	}
	if typ, ok := p.TypeField[server.Transport]; ok {
		e[p.field("type")] = typ
	}

	if server.IsLocal() {
		e[p.field("command")] = server.Command
		e[p.field("args")] = slices.Clone(server.Args)
		if len(server.Env) > 0 {
			e[p.field("env")] = maps.Clone(server.Env)
		}
	} else {
		e[p.field("url")] = server.URL
		if len(server.Headers) > 0 {
			e[p.field("headers")] = maps.Clone(server.Headers)
		}
	}

	for name, v := range p.StaticFields {
		e[p.field(name)] = v
	}
	return e
}
