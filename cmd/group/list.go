package group

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
		Usage:       "List element groups",
		Description: "List element groups, optionally filtered",
		Flags: client.Flags(
			&cli.StringFlag{Name: "type", Usage: "Filter by group type"},
			&cli.StringFlag{Name: "name", Usage: "Filter by name (partial match)"},
			&cli.StringFlag{Name: "facility", Usage: "Filter by facility ID"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			path := client.Query("/api/groups",
				"type", cmd.GetString("type"),
				"name", cmd.GetString("name"),
				"facility", cmd.GetString("facility"))
			log.Debug("Listing groups", "path", path)

			var groups []model.ElementGroup
			if err := c.Get(ctx, path, &groups); err != nil {
				log.Error("Failed to list groups", "error", err)
				return err
			}
			log.Info("Listed groups successfully", "count", len(groups))
			return printGroups(format, groups)
		},
	}
}
