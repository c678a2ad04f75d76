package facility

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
		Usage:       "Update a facility",
		Description: "Update an existing facility, leaving unset fields unchanged",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Facility name"},
			&cli.StringFlag{Name: "type", Usage: "Facility type"},
			&cli.StringFlag{Name: "location", Usage: "Facility location"},
			&cli.StringFlag{Name: "description", Usage: "Facility description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			id := cmd.GetStringArg("id")

			var f model.Facility
			if err := c.Get(ctx, client.Path("/api/facilities", id), &f); err != nil {
				return err
			}
			if v := cmd.GetString("name"); v != "" {
				f.Name = v
			}
			if v := cmd.GetString("type"); v != "" {
				f.Type = v
			}
			if v := cmd.GetString("location"); v != "" {
				f.Location = v
			}
			if v := cmd.GetString("description"); v != "" {
				f.Description = v
			}

			if err := c.Put(ctx, client.Path("/api/facilities", f.ID), f, &f); err != nil {
				log.Error("Failed to update facility", "error", err, "id", f.ID)
				return err
			}
			log.Info("Facility updated successfully", "id", f.ID)
			return printFacility(format, &f)
		},
	}
}
