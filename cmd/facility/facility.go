package facility

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
	}
}

func printFacilities(format client.Format, facilities []model.Facility) error {
	return client.Print(os.Stdout, format, facilities, func(tw *tabwriter.Writer) {
		if len(facilities) == 0 {
			fmt.Fprintln(tw, "No facilities found")
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tLOCATION")
		for _, f := range facilities {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Type, f.Location)
		}
	})
}

func printFacility(format client.Format, f *model.Facility) error {
	return client.Print(os.Stdout, format, f, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID:\t%s\n", f.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", f.Name)
		fmt.Fprintf(tw, "Type:\t%s\n", f.Type)
		fmt.Fprintf(tw, "Location:\t%s\n", f.Location)
		fmt.Fprintf(tw, "Description:\t%s\n", f.Description)
		fmt.Fprintf(tw, "Created:\t%s\n", f.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", f.UpdatedAt.Format(time.RFC3339))
	})
}
