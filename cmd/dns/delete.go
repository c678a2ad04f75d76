package dns

import (
	"context"
	"fmt"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/paularlott/cli"
)

func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:        "delete",
		Usage:       "Delete a DNS zone",
		Description: "Delete a DNS zone without record sets",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			id := cmd.GetStringArg("id")
			if err := c.Delete(ctx, client.Path("/api/dns/zones", id)); err != nil {
				log.Error("Failed to delete DNS zone", "error", err, "id", id)
				return err
			}
			log.Info("DNS zone deleted", "id", id)
			fmt.Println("DNS zone deleted")
			return nil
		},
	}
}
