package element

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func UpdateCommand() *cli.Command {
	return &cli.Command{
		Name:        "update",
		Usage:       "Update an element",
		Description: "Update an element's settings, leaving unset fields unchanged",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
		},
		Flags: settingsFlags(false),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref := cmd.GetStringArg("element")

			var e model.Element
			if err := c.Get(ctx, client.Path("/api/elements", ref), &e); err != nil {
				return err
			}
			if err := applySettings(cmd, &e); err != nil {
				return err
			}

			if err := c.Put(ctx, client.Path("/api/elements", e.ID), e, &e); err != nil {
				log.Error("Failed to update element", "error", err, "id", e.ID)
				return err
			}
			log.Info("Element updated successfully", "id", e.ID)
			return printElement(format, &e)
		},
	}
}
