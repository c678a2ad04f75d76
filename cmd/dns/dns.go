package dns

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func Commands() []*cli.Command {
	return []*cli.Command{
		ListCommand(),
		AddCommand(),
		DeleteCommand(),
	}
}

func printZones(format client.Format, zones []model.DnsZone) error {
	return client.Print(os.Stdout, format, zones, func(tw *tabwriter.Writer) {
		if len(zones) == 0 {
			fmt.Fprintln(tw, "No DNS zones found")
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
		for _, z := range zones {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", z.ID, z.Name, z.Description)
		}
	})
}
