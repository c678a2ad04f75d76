package group

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func UpdateCommand() *cli.Command {
	return &cli.Command{
		Name:        "update",
		Usage:       "Update a group",
		Description: "Update an element group, leaving unset fields unchanged",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Group name"},
			&cli.StringFlag{Name: "facility", Usage: "Facility ID"},
			&cli.StringFlag{Name: "description", Usage: "Group description"},
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags, replaces existing tags"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			id := cmd.GetStringArg("id")

			var g model.ElementGroup
			if err := c.Get(ctx, client.Path("/api/groups", id), &g); err != nil {
				return err
			}
			if v := cmd.GetString("name"); v != "" {
				g.Name = v
			}
			if v := cmd.GetString("facility"); v != "" {
				g.FacilityID = v
			}
			if v := cmd.GetString("description"); v != "" {
				g.Description = v
			}
			if v := cmd.GetString("tags"); v != "" {
				g.Tags = client.ParseList(v)
			}

			if err := c.Put(ctx, client.Path("/api/groups", g.ID), g, &g); err != nil {
				log.Error("Failed to update group", "error", err, "id", g.ID)
				return err
			}
			log.Info("Group updated successfully", "id", g.ID)
			return printGroup(format, &g)
		},
	}
}
