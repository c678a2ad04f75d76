package platform

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
		Usage:       "Update a platform",
		Description: "Update a platform, leaving unset fields unchanged",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Platform name"},
			&cli.StringFlag{Name: "chipset", Usage: "Platform chipset"},
			&cli.StringFlag{Name: "vendor", Usage: "Vendor name"},
			&cli.StringFlag{Name: "model", Usage: "Model name"},
			&cli.IntFlag{Name: "rack-units", Usage: "Height in rack units"},
			&cli.StringFlag{Name: "description", Usage: "Platform description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			id := cmd.GetStringArg("id")

			var p model.Platform
			if err := c.Get(ctx, client.Path("/api/platforms", id), &p); err != nil {
				return err
			}
			if v := cmd.GetString("name"); v != "" {
				p.Name = v
			}
			if v := cmd.GetString("chipset"); v != "" {
				p.Chipset = v
			}
			if v := cmd.GetString("vendor"); v != "" {
				p.VendorName = v
			}
			if v := cmd.GetString("model"); v != "" {
				p.ModelName = v
			}
			if v := cmd.GetInt("rack-units"); v > 0 {
				p.RackUnits = v
			}
			if v := cmd.GetString("description"); v != "" {
				p.Description = v
			}

			if err := c.Put(ctx, client.Path("/api/platforms", p.ID), p, &p); err != nil {
				log.Error("Failed to update platform", "error", err, "id", p.ID)
				return err
			}
			log.Info("Platform updated successfully", "id", p.ID)
			return printPlatform(format, &p)
		},
	}
}
