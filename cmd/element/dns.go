package element

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func printRecordSets(format client.Format, sets []model.DnsRecordSet) error {
	return client.Print(os.Stdout, format, sets, func(tw *tabwriter.Writer) {
		if len(sets) == 0 {
			fmt.Fprintln(tw, "No DNS record sets found")
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tTTL\tZONE\tRECORDS")
		for _, rs := range sets {
			values := make([]string, 0, len(rs.Records))
			for _, r := range rs.Records {
				values = append(values, r.Value)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				rs.ID, rs.Name, rs.Type, rs.TTL, rs.ZoneName, strings.Join(values, ","))
		}
	})
}

func DnsCommand() *cli.Command {
	return &cli.Command{
		Name:  "dns",
		Usage: "Manage DNS record sets of an element",
		Commands: []*cli.Command{
			{
				Name:        "list",
				Usage:       "List DNS record sets",
				Description: "List the DNS record sets of an element",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "element", Required: true},
				},
				Flags: client.Flags(),
				Run: func(ctx context.Context, cmd *cli.Command) error {
					c, format, err := client.FromCommand(cmd)
					if err != nil {
						return err
					}
					ref := cmd.GetStringArg("element")

					var sets []model.DnsRecordSet
					if err := c.Get(ctx, client.Path("/api/elements", ref, "dns"), &sets); err != nil {
						log.Error("Failed to list DNS record sets", "error", err, "element", ref)
						return err
					}
					return printRecordSets(format, sets)
				},
			},
			{
				Name:        "add",
				Usage:       "Store a DNS record set",
				Description: "Add a DNS record set to an element, or update it when --id is given",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "element", Required: true},
				},
				Flags: client.Flags(
					&cli.StringFlag{Name: "id", Usage: "Record set ID to update"},
					&cli.StringFlag{Name: "zone", Usage: "DNS zone ID or name", Required: true},
					&cli.StringFlag{Name: "name", Usage: "DNS name", Required: true},
					&cli.StringFlag{Name: "type", Usage: "Record type (A, AAAA, CNAME, PTR, TXT, SRV, MX, NS)", Required: true},
					&cli.IntFlag{Name: "ttl", Usage: "TTL in seconds", DefaultValue: model.DefaultDnsTTL},
					&cli.StringFlag{Name: "records", Usage: "Comma-separated record values", Required: true},
					&cli.StringFlag{Name: "description", Usage: "Record set description"},
				),
				Run: func(ctx context.Context, cmd *cli.Command) error {
					c, format, err := client.FromCommand(cmd)
					if err != nil {
						return err
					}
					ref := cmd.GetStringArg("element")
					rs := model.DnsRecordSet{
						ID:          cmd.GetString("id"),
						Name:        cmd.GetString("name"),
						Type:        model.DnsRecordType(strings.ToUpper(cmd.GetString("type"))),
						TTL:         cmd.GetInt("ttl"),
						Description: cmd.GetString("description"),
					}
					if zone := cmd.GetString("zone"); model.ValidID(zone) {
						rs.ZoneID = zone
					} else {
						rs.ZoneName = zone
					}
					for _, v := range client.ParseList(cmd.GetString("records")) {
						rs.Records = append(rs.Records, model.DnsRecord{Value: v})
					}

					var stored model.DnsRecordSet
					if err := c.Post(ctx, client.Path("/api/elements", ref, "dns"), rs, &stored); err != nil {
						log.Error("Failed to store DNS record set", "error", err, "element", ref, "name", rs.Name)
						return err
					}
					log.Info("DNS record set stored", "element", ref, "id", stored.ID, "name", stored.Name)
					return printRecordSets(format, []model.DnsRecordSet{stored})
				},
			},
			{
				Name:        "delete",
				Usage:       "Remove a DNS record set",
				Description: "Remove a DNS record set by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id", Required: true},
				},
				Flags: client.Flags(),
				Run: func(ctx context.Context, cmd *cli.Command) error {
					c, _, err := client.FromCommand(cmd)
					if err != nil {
						return err
					}
					id := cmd.GetStringArg("id")
					if err := c.Delete(ctx, client.Path("/api/dns/recordsets", id)); err != nil {
						log.Error("Failed to remove DNS record set", "error", err, "id", id)
						return err
					}
					log.Info("DNS record set removed", "id", id)
					fmt.Println("DNS record set removed")
					return nil
				},
			},
		},
	}
}
