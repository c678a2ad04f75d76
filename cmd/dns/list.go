package dns

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List DNS zones",
		Description: "List all DNS zones",
		Flags:       client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			var zones []model.DnsZone
			if err := c.Get(ctx, "/api/dns/zones", &zones); err != nil {
				log.Error("Failed to list DNS zones", "error", err)
				return err
			}
			return printZones(format, zones)
		},
	}
}
