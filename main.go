package main

import (
	"context"
	"fmt"
	"os"

	"github.com/martinsuchenak/netinv/cmd/dns"
	"github.com/martinsuchenak/netinv/cmd/element"
	"github.com/martinsuchenak/netinv/cmd/facility"
	"github.com/martinsuchenak/netinv/cmd/group"
	"github.com/martinsuchenak/netinv/cmd/image"
	"github.com/martinsuchenak/netinv/cmd/platform"
	"github.com/martinsuchenak/netinv/cmd/role"
	"github.com/martinsuchenak/netinv/cmd/server"
	"github.com/paularlott/cli"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "netinv",
		Version: version,
		Usage:   "Network element inventory",
		Commands: []*cli.Command{
			server.Command(),
			{Name: "facility", Usage: "Manage facilities", Commands: facility.Commands()},
			{Name: "group", Usage: "Manage element groups", Commands: group.Commands()},
			{Name: "role", Usage: "Manage element roles", Commands: role.Commands()},
			{Name: "platform", Usage: "Manage platforms", Commands: platform.Commands()},
			{Name: "element", Usage: "Manage elements", Commands: element.Commands()},
			{Name: "image", Usage: "Manage images", Commands: image.Commands()},
			{Name: "zone", Usage: "Manage DNS zones", Commands: dns.Commands()},
		},
	}

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
