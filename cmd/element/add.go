package element

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
		Usage:       "Add an element",
		Description: "Add a new element. Either --group or --group-type and --group-name select the group.",
		Flags:       settingsFlags(true),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			var e model.Element
			if err := applySettings(cmd, &e); err != nil {
				return err
			}
			log.Debug("Adding element", "name", e.Name)

			var created model.Element
			if err := c.Post(ctx, "/api/elements", e, &created); err != nil {
				log.Error("Failed to add element", "error", err, "name", e.Name)
				return err
			}
			log.Info("Element added successfully", "id", created.ID, "name", created.Name)
			return printElement(format, &created)
		},
	}
}
