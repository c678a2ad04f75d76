package platform

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func Commands() []*cli.Command {
	return []*cli.Command{
		AddCommand(),
		ListCommand(),
		GetCommand(),
		UpdateCommand(),
		DeleteCommand(),
		ImportCommand(),
	}
}

func printPlatforms(format client.Format, platforms []model.Platform) error {
	return client.Print(os.Stdout, format, platforms, func(tw *tabwriter.Writer) {
		if len(platforms) == 0 {
			fmt.Fprintln(tw, "No platforms found")
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tCHIPSET\tVENDOR\tMODEL")
		for _, p := range platforms {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Chipset, p.VendorName, p.ModelName)
		}
	})
}

func printPlatform(format client.Format, p *model.Platform) error {
	return client.Print(os.Stdout, format, p, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
		fmt.Fprintf(tw, "Chipset:\t%s\n", p.Chipset)
		fmt.Fprintf(tw, "Vendor:\t%s\n", p.VendorName)
		fmt.Fprintf(tw, "Model:\t%s\n", p.ModelName)
		fmt.Fprintf(tw, "Rack Units:\t%d\n", p.RackUnits)
		fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
		fmt.Fprintf(tw, "Created:\t%s\n", p.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", p.UpdatedAt.Format(time.RFC3339))
	})
}
