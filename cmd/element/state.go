package element

import (
	"context"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func StateCommand() *cli.Command {
	return &cli.Command{
		Name:        "state",
		Usage:       "Set element state",
		Description: "Set the administrative and/or operational state of an element",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "administrative", Usage: "Administrative state (NEW, ACTIVE, RETIRED)"},
			&cli.StringFlag{Name: "operational", Usage: "Operational state (UP, DOWN, DETACHED, MAINTENANCE, MALFUNCTION)"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref := cmd.GetStringArg("element")
			req := api.ElementStateRequest{
				AdministrativeState: model.AdministrativeState(cmd.GetString("administrative")),
				OperationalState:    model.OperationalState(cmd.GetString("operational")),
			}
			if req.AdministrativeState == "" && req.OperationalState == "" {
				return fmt.Errorf("one of --administrative or --operational is required")
			}

			var e model.Element
			if err := c.Put(ctx, client.Path("/api/elements", ref, "state"), req, &e); err != nil {
				log.Error("Failed to update element state", "error", err, "element", ref)
				return err
			}
			log.Info("Element state updated", "element", ref,
				"administrative_state", e.AdministrativeState, "operational_state", e.OperationalState)
			return printElement(format, &e)
		},
	}
}
