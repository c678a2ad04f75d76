package client

import (
	"net/url"
	"strings"

	"github.com/paularlott/cli"
)

// Flags returns flags plus the connection and output flags every client command takes.
func Flags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		&cli.StringFlag{Name: "server", Usage: "Server URL", EnvVars: []string{"NETINV_SERVER_URL"}, DefaultValue: DefaultServerURL()},
		&cli.StringFlag{Name: "api-token", Usage: "API authentication token", EnvVars: []string{"NETINV_API_TOKEN"}},
		&cli.StringFlag{Name: "output", Usage: "Output format (table, json, yaml, toml)", DefaultValue: string(FormatTable)},
	)
}

// FromCommand builds a client and output format from the flags added by Flags.
func FromCommand(cmd *cli.Command) (*Client, Format, error) {
	format, err := ParseFormat(cmd.GetString("output"))
	if err != nil {
		return nil, "", err
	}
	return New(cmd.GetString("server"), cmd.GetString("api-token")), format, nil
}

// ParseList splits a comma-separated flag value, dropping empty items.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// Path joins escaped path segments onto prefix.
func Path(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Query appends the non-empty values as a query string.
func Query(path string, kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
