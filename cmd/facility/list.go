package facility

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
		Usage:       "List facilities",
		Description: "List all facilities",
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Filter by name (partial match)"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			log.Debug("Listing facilities", "server", cmd.GetString("server"))

			var facilities []model.Facility
			if err := c.Get(ctx, client.Query("/api/facilities", "name", cmd.GetString("name")), &facilities); err != nil {
				log.Error("Failed to list facilities", "error", err)
				return err
			}

			log.Info("Listed facilities successfully", "count", len(facilities))
			return printFacilities(format, facilities)
		},
	}
}
