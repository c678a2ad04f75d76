package image

import (
	"context"
	"strconv"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List images",
		Description: "List images ordered by name, newest version first",
		Flags: client.Flags(
			&cli.StringFlag{Name: "type", Usage: "Filter by image type"},
			&cli.StringFlag{Name: "state", Usage: "Filter by state (CANDIDATE, RELEASE, SUPERSEDED, REVOKED)"},
			&cli.StringFlag{Name: "role", Usage: "Filter by element role"},
			&cli.StringFlag{Name: "chipset", Usage: "Filter by platform chipset"},
			&cli.StringFlag{Name: "version", Usage: "Filter by version"},
			&cli.StringFlag{Name: "filter", Usage: "Filter by name (partial match)"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of images"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			limit := ""
			if n := cmd.GetInt("limit"); n > 0 {
				limit = strconv.Itoa(n)
			}
			path := client.Query("/api/images",
				"type", cmd.GetString("type"),
				"state", cmd.GetString("state"),
				"role", cmd.GetString("role"),
				"chipset", cmd.GetString("chipset"),
				"version", cmd.GetString("version"),
				"filter", cmd.GetString("filter"),
				"limit", limit)
			log.Debug("Listing images", "path", path)

			var images []model.Image
			if err := c.Get(ctx, path, &images); err != nil {
				log.Error("Failed to list images", "error", err)
				return err
			}
			log.Info("Listed images successfully", "count", len(images))
			return printImages(format, images)
		},
	}
}
