package dns

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
		Usage:       "Add a DNS zone",
		Description: "Add a DNS zone record sets can be published in",
		Flags: client.Flags(
			&cli.StringFlag{Name: "name", Usage: "Zone name, e.g. net.example.com", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Zone description"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			z := model.DnsZone{Name: cmd.GetString("name"), Description: cmd.GetString("description")}

			var stored model.DnsZone
			if err := c.Post(ctx, "/api/dns/zones", z, &stored); err != nil {
				log.Error("Failed to add DNS zone", "error", err, "name", z.Name)
				return err
			}
			log.Info("DNS zone added", "id", stored.ID, "name", stored.Name)
			return printZones(format, []model.DnsZone{stored})
		},
	}
}
