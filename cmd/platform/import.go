package platform

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/catalog"
	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:        "import",
		Usage:       "Import a platform catalog",
		Description: "Store every platform of a catalog YAML file on the server",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			path := cmd.GetStringArg("file")
			platforms, err := catalog.LoadFile(path)
			if err != nil {
				log.Error("Failed to read platform catalog", "error", err, "path", path)
				return err
			}

			stored := make([]model.Platform, 0, len(platforms))
			for _, p := range platforms {
				var out model.Platform
				if err := c.Post(ctx, "/api/platforms", p, &out); err != nil {
					log.Error("Failed to import platform", "error", err, "name", p.Name)
					return err
				}
				stored = append(stored, out)
			}
			log.Info("Platform catalog imported", "path", path, "count", len(stored))
			return printPlatforms(format, stored)
		},
	}
}
