package role

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List element roles",
		Description: "List all element roles",
		Flags:       client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			var roles []model.ElementRole
			if err := c.Get(ctx, "/api/roles", &roles); err != nil {
				log.Error("Failed to list roles", "error", err)
				return err
			}
			log.Info("Listed roles successfully", "count", len(roles))
			return printRoles(format, roles)
		},
	}
}
