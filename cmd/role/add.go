package role

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
		Usage:       "Add a role",
		Description: "Add a new element role",
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Role name (e.g. LEAF)", Required: true},
			&cli.StringFlag{Name: "display-name", Usage: "Display name"},
			&cli.StringFlag{Name: "plane", Usage: "Plane (DATA, CONTROL, MANAGEMENT)", DefaultValue: string(model.PlaneData)},
			&cli.StringFlag{Name: "manageable", Usage: "Whether elements of this role are managed (true/false)", DefaultValue: "true"},
			&cli.StringFlag{Name: "description", Usage: "Role description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			manageable, err := parseManageable(cmd.GetString("manageable"))
			if err != nil {
				return err
			}
			r := model.ElementRole{
				Name:        cmd.GetString("name"),
				DisplayName: cmd.GetString("display-name"),
				Plane:       model.Plane(cmd.GetString("plane")),
				Manageable:  manageable,
				Description: cmd.GetString("description"),
			}
			log.Debug("Adding role", "name", r.Name)

			var stored model.ElementRole
			if err := c.Post(ctx, "/api/roles", r, &stored); err != nil {
				log.Error("Failed to add role", "error", err, "name", r.Name)
				return err
			}
			log.Info("Role stored successfully", "name", stored.Name)
			return printRole(format, &stored)
		},
	}
}
