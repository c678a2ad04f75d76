package element

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "get",
		Usage:       "Get an element",
		Description: "Get an element by ID, name or alias",
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

			var e model.Element
			if err := c.Get(ctx, client.Path("/api/elements", ref), &e); err != nil {
				log.Error("Failed to get element", "error", err, "element", ref)
				return err
			}
			return printElement(format, &e)
		},
	}
}
