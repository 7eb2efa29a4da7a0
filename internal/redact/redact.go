// Package redact masks credentials in generated configuration, install
// commands and log attributes before they are shown to a user.
//
// Masking is display-only. Builders always produce the real values; callers
// decide whether to pass them through [Config] or [Args] before printing.
package redact

import (
	"encoding/json"
	"maps"
	"net/url"
	"strings"
)

// SecretKeyPatterns contains substrings that mark a key as sensitive.
// Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// TokenPrefixes contains well-known credential prefixes that are masked
// regardless of the key they appear under.
var TokenPrefixes = []string{
	"ghp_",  // GitHub personal access token
	"gho_",  // GitHub OAuth token
	"sk-",   // OpenAI/Anthropic keys
	"AKIA",  // AWS access key prefix
	"xoxb-", // Slack bot token
	"xoxp-", // Slack user token
}

const mask = "********"

// ShouldMask reports whether key names a sensitive value.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// Value masks a sensitive string, keeping the last four characters of
// values longer than eight so users can tell tokens apart.
func Value(value string) string {
	if len(value) <= 8 {
		return mask
	}
	return "****" + value[len(value)-4:]
}

// Bearer masks an Authorization header value, keeping the scheme.
func Bearer(value string) string {
	scheme, cred, ok := strings.Cut(value, " ")
	if !ok || cred == "" {
		return Value(value)
	}
	return scheme + " " + Value(cred)
}

// Env returns a copy of env with sensitive values masked.
func Env(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	out := maps.Clone(env)
	for k, v := range out {
		out[k] = keyed(k, v)
	}
	return out
}

// URL masks a password embedded in rawURL. Unparseable URLs are returned
// unchanged.
func URL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	password, ok := u.User.Password()
	if !ok || password == "" {
		return rawURL
	}
	u.User = url.UserPassword(u.User.Username(), Value(password))
	return u.String()
}

// Config returns a deep copy of a configuration document with every
// secret leaf masked. Argument lists are masked with [Args].
func Config(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = node(k, v)
	}
	return out
}

func node(key string, v any) any {
	switch v := v.(type) {
	case map[string]any:
		return Config(v)
	case map[string]string:
		return Env(v)
	case []string:
		return Args(v)
	case string:
		return keyed(key, v)
	default:
		return v
	}
}

func keyed(key, value string) string {
	switch {
	case strings.EqualFold(key, "authorization"):
		return Bearer(value)
	case ShouldMask(key), ContainsTokenPrefix(value):
		return Value(value)
	default:
		return value
	}
}

// Args returns a copy of a command's arguments with flag values that carry
// credentials masked: --token values, --header "Name: value" pairs,
// --env NAME=value pairs and the JSON payload of --add-mcp.
func Args(args []string) []string {
	if args == nil {
		return nil
	}
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i < len(out)-1; i++ {
		next := out[i+1]
		switch out[i] {
		case "--token":
			out[i+1] = Value(next)
		case "--header":
			if name, value, ok := strings.Cut(next, ":"); ok {
				out[i+1] = name + ": " + keyed(name, strings.TrimSpace(value))
			}
		case "--env", "-e":
			if name, value, ok := strings.Cut(next, "="); ok {
				out[i+1] = name + "=" + keyed(name, value)
			}
		case "--add-mcp":
			out[i+1] = jsonPayload(next)
		default:
			continue
		}
		i++
	}
	return out
}

// jsonPayload masks a JSON object argument. Payloads that do not decode as
// an object are masked whole when they look like credentials.
func jsonPayload(payload string) string {
	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		if ContainsTokenPrefix(payload) {
			return Value(payload)
		}
		return payload
	}
	data, err := json.Marshal(decoded(doc))
	if err != nil {
		return mask
	}
	return string(data)
}

// decoded masks a document produced by encoding/json, whose nested objects
// are map[string]any and arrays []any.
func decoded(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		switch v := v.(type) {
		case map[string]any:
			out[k] = decoded(v)
		case []any:
			strs := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					strs = nil
					break
				}
				strs = append(strs, s)
			}
			if strs != nil {
				out[k] = Args(strs)
			} else {
				out[k] = v
			}
		case string:
			out[k] = keyed(k, v)
		default:
			out[k] = v
		}
	}
	return out
}
