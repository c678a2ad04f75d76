package platform

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
		Usage:       "Add a platform",
		Description: "Store a platform. A platform with the same name is updated.",
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Platform name", Required: true},
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
			p := model.Platform{
				Name:        cmd.GetString("name"),
				Chipset:     cmd.GetString("chipset"),
				VendorName:  cmd.GetString("vendor"),
				ModelName:   cmd.GetString("model"),
				RackUnits:   cmd.GetInt("rack-units"),
				Description: cmd.GetString("description"),
			}
			log.Debug("Adding platform", "name", p.Name)

			var stored model.Platform
			if err := c.Post(ctx, "/api/platforms", p, &stored); err != nil {
				log.Error("Failed to add platform", "error", err, "name", p.Name)
				return err
			}
			log.Info("Platform stored successfully", "id", stored.ID, "name", stored.Name)
			return printPlatform(format, &stored)
		},
	}
}
