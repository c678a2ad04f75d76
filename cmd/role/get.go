package role

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "get",
		Usage:       "Get a role",
		Description: "Get an element role by name",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			name := cmd.GetStringArg("name")

			var r model.ElementRole
			if err := c.Get(ctx, client.Path("/api/roles", name), &r); err != nil {
				log.Error("Failed to get role", "error", err, "name", name)
				return err
			}
			return printRole(format, &r)
		},
	}
}
