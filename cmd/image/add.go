package image

import (
	"context"
	"fmt"
	"time"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func AddCommand() *cli.Command {
	return &cli.Command{
		Name:        "add",
		Usage:       "Register an image",
		Description: "Register a new image. New images are CANDIDATE unless --state is given.",
		Flags: client.Flags(
			&cli.StringFlag{Name: "type", Usage: "Image type (e.g. lxc, onl-installer)", Required: true},
			&cli.StringFlag{Name: "name", Usage: "Image name", Required: true},
			&cli.StringFlag{Name: "version", Usage: "Semantic version", Required: true},
			&cli.StringFlag{Name: "roles", Usage: "Comma-separated element roles", Required: true},
			&cli.StringFlag{Name: "chipset", Usage: "Platform chipset"},
			&cli.StringFlag{Name: "state", Usage: "Initial state"},
			&cli.StringFlag{Name: "org", Usage: "Organization"},
			&cli.StringFlag{Name: "category", Usage: "Image category"},
			&cli.StringFlag{Name: "build-id", Usage: "Build ID"},
			&cli.StringFlag{Name: "build-date", Usage: "Build date (RFC 3339)"},
			&cli.StringFlag{Name: "extension", Usage: "Image file extension"},
			&cli.StringFlag{Name: "description", Usage: "Image description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			img := model.Image{
				Type:            cmd.GetString("type"),
				Name:            cmd.GetString("name"),
				Version:         cmd.GetString("version"),
				ElementRoles:    client.ParseList(cmd.GetString("roles")),
				PlatformChipset: cmd.GetString("chipset"),
				State:           model.ImageState(cmd.GetString("state")),
				Organization:    cmd.GetString("org"),
				Category:        cmd.GetString("category"),
				BuildID:         cmd.GetString("build-id"),
				Extension:       cmd.GetString("extension"),
				Description:     cmd.GetString("description"),
			}
			if v := cmd.GetString("build-date"); v != "" {
				t, err := time.Parse(time.RFC3339, v)
				if err != nil {
					return fmt.Errorf("invalid --build-date: %w", err)
				}
				img.BuildDate = &t
			}
			log.Debug("Registering image", "name", img.Name, "version", img.Version)

			var created model.Image
			if err := c.Post(ctx, "/api/images", img, &created); err != nil {
				log.Error("Failed to register image", "error", err, "name", img.Name, "version", img.Version)
				return err
			}
			log.Info("Image registered successfully", "id", created.ID, "name", created.Name, "state", created.State)
			return printImage(format, &created)
		},
	}
}
