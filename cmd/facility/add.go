package facility

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
		Usage:       "Add a facility",
		Description: "Add a new facility to the inventory",
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Facility name", Required: true},
			&cli.StringFlag{Name: "type", Usage: "Facility type (e.g. dc, pop)"},
			&cli.StringFlag{Name: "location", Usage: "Facility location"},
			&cli.StringFlag{Name: "description", Usage: "Facility description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			f := model.Facility{
				Name:        cmd.GetString("name"),
				Type:        cmd.GetString("type"),
				Location:    cmd.GetString("location"),
				Description: cmd.GetString("description"),
			}
			log.Debug("Adding facility", "name", f.Name)

			var created model.Facility
			if err := c.Post(ctx, "/api/facilities", f, &created); err != nil {
				log.Error("Failed to add facility", "error", err, "name", f.Name)
				return err
			}

			log.Info("Facility added successfully", "id", created.ID, "name", created.Name)
			return printFacility(format, &created)
		},
	}
}
