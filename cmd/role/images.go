package role

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ImagesCommand() *cli.Command {
	return &cli.Command{
		Name:        "images",
		Usage:       "List released images of a role",
		Description: "List the images in RELEASE state built for a role",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			name := cmd.GetStringArg("name")

			var images []model.Image
			if err := c.Get(ctx, client.Path("/api/roles", name, "images"), &images); err != nil {
				log.Error("Failed to list role images", "error", err, "name", name)
				return err
			}
			return printImages(format, images)
		},
	}
}
