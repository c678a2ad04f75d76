package group

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func ElementsCommand() *cli.Command {
	return &cli.Command{
		Name:        "elements",
		Usage:       "List group members",
		Description: "List the elements of a group",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			id := cmd.GetStringArg("id")

			var elements []model.Element
			if err := c.Get(ctx, client.Path("/api/groups", id, "elements"), &elements); err != nil {
				log.Error("Failed to list group elements", "error", err, "id", id)
				return err
			}
			return client.Print(os.Stdout, format, elements, func(tw *tabwriter.Writer) {
				if len(elements) == 0 {
					fmt.Fprintln(tw, "No elements found")
					return
				}
				fmt.Fprintln(tw, "ID\tNAME\tROLE\tADM\tOP")
				for _, e := range elements {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, e.AdministrativeState, e.OperationalState)
				}
			})
		},
	}
}
