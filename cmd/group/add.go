package group

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func AddCommand() *cli.Command {
	return &cli.Command{
		Name:        "add",
		Usage:       "Add a group",
		Description: "Store an element group. A group with the same type and name is updated.",
		Flags: client.Flags(
			&cli.StringFlag{Name: "type", Usage: "Group type (e.g. pod, rack)", Required: true},
			&cli.StringFlag{Name: "name", Usage: "Group name", Required: true},
			&cli.StringFlag{Name: "facility", Usage: "Facility ID"},
			&cli.StringFlag{Name: "description", Usage: "Group description"},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			g := model.ElementGroup{
				Type:        cmd.GetString("type"),
				Name:        cmd.GetString("name"),
				FacilityID:  cmd.GetString("facility"),
				Description: cmd.GetString("description"),
				Tags:        client.ParseList(cmd.GetString("tags")),
			}
			log.Debug("Adding group", "type", g.Type, "name", g.Name)

			var stored model.ElementGroup
			if err := c.Post(ctx, "/api/groups", g, &stored); err != nil {
				log.Error("Failed to add group", "error", err, "name", g.Name)
				return err
			}
			log.Info("Group stored successfully", "id", stored.ID, "name", stored.Name)
			return printGroup(format, &stored)
		},
	}
}
