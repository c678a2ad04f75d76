package group

import (
	"fmt"
	"os"
	"strings"
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
		ElementsCommand(),
	}
}

func printGroups(format client.Format, groups []model.ElementGroup) error {
	return client.Print(os.Stdout, format, groups, func(tw *tabwriter.Writer) {
		if len(groups) == 0 {
			fmt.Fprintln(tw, "No groups found")
			return
		}
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tFACILITY")
		for _, g := range groups {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, g.Type, g.Name, g.FacilityID)
		}
	})
}

func printGroup(format client.Format, g *model.ElementGroup) error {
	return client.Print(os.Stdout, format, g, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID:\t%s\n", g.ID)
		fmt.Fprintf(tw, "Type:\t%s\n", g.Type)
		fmt.Fprintf(tw, "Name:\t%s\n", g.Name)
		fmt.Fprintf(tw, "Facility:\t%s\n", g.FacilityID)
		fmt.Fprintf(tw, "Description:\t%s\n", g.Description)
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(g.Tags, ", "))
		fmt.Fprintf(tw, "Created:\t%s\n", g.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", g.UpdatedAt.Format(time.RFC3339))
	})
}
