package platform

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
		Usage:       "List platforms",
		Description: "List all hardware platforms",
		Flags:       client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			var platforms []model.Platform
			if err := c.Get(ctx, "/api/platforms", &platforms); err != nil {
				log.Error("Failed to list platforms", "error", err)
				return err
			}
			log.Info("Listed platforms successfully", "count", len(platforms))
			return printPlatforms(format, platforms)
		},
	}
}
