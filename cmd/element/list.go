package element

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
		Usage:       "List elements",
		Description: "List elements, optionally filtered",
		Flags: client.Flags(
			&cli.StringFlag{Name: "group", Usage: "Filter by group ID"},
			&cli.StringFlag{Name: "role", Usage: "Filter by role"},
			&cli.StringFlag{Name: "platform", Usage: "Filter by platform ID"},
			&cli.StringFlag{Name: "name", Usage: "Filter by name or alias (partial match)"},
			&cli.StringFlag{Name: "tag", Usage: "Filter by tag"},
			&cli.StringFlag{Name: "state", Usage: "Filter by administrative state"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			path := client.Query("/api/elements",
				"group", cmd.GetString("group"),
				"role", cmd.GetString("role"),
				"platform", cmd.GetString("platform"),
				"name", cmd.GetString("name"),
				"tag", cmd.GetString("tag"),
				"state", cmd.GetString("state"))
			log.Debug("Listing elements", "path", path)

			var elements []model.Element
			if err := c.Get(ctx, path, &elements); err != nil {
				log.Error("Failed to list elements", "error", err)
				return err
			}
			log.Info("Listed elements successfully", "count", len(elements))
			return printElements(format, elements)
		},
	}
}
