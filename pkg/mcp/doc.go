// Package mcp defines the client-agnostic description of a Glean MCP server
// connection and the canonical server entry derived from it.
//
// A [Params] value is the single input shape consumed by every client
// builder in package clients. It is selected by transport:
//
//	// Local stdio server launched through npx
//	params := mcp.Params{
//	    Transport: mcp.TransportStdio,
//	    Env:       mcp.GleanEnv("my-company", "my-api-token"),
//	}
//
//	// Remote streamable HTTP server
//	params := mcp.Params{
//	    Transport: mcp.TransportHTTP,
//	    ServerURL: mcp.GleanServerURL("my-company"),
//	    Headers:   mcp.GleanHeaders("my-api-token"),
//	}
//
// Omitting the token (no GLEAN_API_TOKEN entry, nil headers) signals that the
// client should go through the OAuth flow. Absence is the only representation
// of "no token"; empty values are never emitted.
//
// # Canonical Server
//
// [NewServer] turns params into a [Server], the entry every client shape is
// rendered from. Clients that cannot speak HTTP get a bridged server from
// [NewBridgedServer], a stdio entry that runs mcp-remote against the URL.
//
// # Validation
//
// [Params.Validate] reports caller contract violations such as an http
// transport without a server URL. Builders call it before producing any
// output so malformed params never yield a partial configuration.
package mcp
