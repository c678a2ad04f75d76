package element

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/probe"
	"github.com/paularlott/cli"
)

func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:        "probe",
		Usage:       "Show reachability probe results",
		Description: "Show the latest reachability probe result of every element",
		Flags: client.Flags(
			&cli.StringFlag{Name: "reachable", Usage: "Only show reachable (true) or unreachable (false) elements"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}

			var results []probe.Result
			if err := c.Get(ctx, client.Query("/api/probe/results", "reachable", cmd.GetString("reachable")), &results); err != nil {
				log.Error("Failed to get probe results", "error", err)
				return err
			}
			return client.Print(os.Stdout, format, results, func(tw *tabwriter.Writer) {
				if len(results) == 0 {
					fmt.Fprintln(tw, "No probe results")
					return
				}
				fmt.Fprintln(tw, "ELEMENT\tHOST\tREACHABLE\tMETHOD\tRTT\tMAC\tCHECKED")
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\t%s\t%s\n",
						r.ElementName, r.Hostname, r.Reachable, r.Method, r.RTT, r.MAC, r.CheckedAt.Format(time.RFC3339))
				}
			})
		},
	}
}
