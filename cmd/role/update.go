package role

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
		Usage:       "Update a role",
		Description: "Update an element role, leaving unset fields unchanged",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "display-name", Usage: "Display name"},
			&cli.StringFlag{Name: "plane", Usage: "Plane (DATA, CONTROL, MANAGEMENT)"},
			&cli.StringFlag{Name: "manageable", Usage: "Whether elements of this role are managed (true/false)"},
			&cli.StringFlag{Name: "description", Usage: "Role description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			name := cmd.GetStringArg("name")

			var r model.ElementRole
			if err := c.Get(ctx, client.Path("/api/roles", name), &r); err != nil {
				return err
			}
			if v := cmd.GetString("display-name"); v != "" {
				r.DisplayName = v
			}
			if v := cmd.GetString("plane"); v != "" {
				r.Plane = model.Plane(v)
			}
			if v := cmd.GetString("manageable"); v != "" {
				if r.Manageable, err = parseManageable(v); err != nil {
					return err
				}
			}
			if v := cmd.GetString("description"); v != "" {
				r.Description = v
			}

			if err := c.Put(ctx, client.Path("/api/roles", r.Name), r, &r); err != nil {
				log.Error("Failed to update role", "error", err, "name", r.Name)
				return err
			}
			log.Info("Role updated successfully", "name", r.Name)
			return printRole(format, &r)
		},
	}
}
