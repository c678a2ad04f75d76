package facility

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
		Usage:       "Get a facility",
		Description: "Get a facility by ID or name",
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

			var f model.Facility
			if err := c.Get(ctx, client.Path("/api/facilities", id), &f); err != nil {
				log.Error("Failed to get facility", "error", err, "id", id)
				return err
			}
			return printFacility(format, &f)
		},
	}
}
