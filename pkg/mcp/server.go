package mcp

import (
	"maps"
	"slices"
)

// Server is the canonical server entry derived from [Params]. Client
// profiles rename and reshape its fields but never recompute them, so every
// output for the same params agrees on name, command, URL and env.
type Server struct {
	// Name is the member key under the client's server collection.
	Name string

	// Transport is the transport the client actually speaks. Bridged
	// entries are stdio even though the params asked for http.
	Transport Transport

	// Command is the executable for stdio entries.
	Command string

	// Args are the arguments passed to Command.
	Args []string

	// Env contains environment variables for stdio entries.
	Env map[string]string

	// URL is the remote endpoint for native http entries.
	URL string

	// Headers contains HTTP headers for native http entries.
	Headers map[string]string

	// Bridged reports that an http connection is emulated through mcp-remote.
	Bridged bool
}

// IsLocal reports whether s is launched as a local process.
func (s *Server) IsLocal() bool {
	return s.Transport == TransportStdio
}

// IsRemote reports whether s connects to a URL directly.
func (s *Server) IsRemote() bool {
	return s.Transport == TransportHTTP
}

// ServerName returns the member key for a transport.
func ServerName(t Transport) string {
	if t == TransportHTTP {
		return RemoteServerName
	}
	return LocalServerName
}

// NewServer builds the canonical entry for valid params. For http params
// the entry is a native remote entry; use [NewBridgedServer] for clients
// that cannot speak HTTP.
func NewServer(p Params) (*Server, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.Transport == TransportHTTP {
		return &Server{
			Name:      RemoteServerName,
			Transport: TransportHTTP,
			URL:       p.ServerURL,
			Headers:   cloneNonEmpty(p.Headers),
		}, nil
	}

	return &Server{
		Name:      LocalServerName,
		Transport: TransportStdio,
		Command:   PackageRunner,
		Args:      []string{"-y", LocalServerPackage},
		Env:       maps.Clone(p.Env),
	}, nil
}

// NewBridgedServer builds a stdio entry that runs mcp-remote against the
// params' server URL. Headers are passed as --header arguments in sorted
// order. Stdio params are returned as a regular local entry.
func NewBridgedServer(p Params) (*Server, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Transport != TransportHTTP {
		return NewServer(p)
	}

	args := []string{"-y", BridgePackage, p.ServerURL}
	for _, name := range slices.Sorted(maps.Keys(p.Headers)) {
		args = append(args, "--header", name+": "+p.Headers[name])
	}

	return &Server{
		Name:      RemoteServerName,
		Transport: TransportStdio,
		Command:   PackageRunner,
		Args:      args,
		Bridged:   true,
	}, nil
}

// cloneNonEmpty copies m, returning nil for an empty map so absence is
// preserved downstream.
func cloneNonEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}
