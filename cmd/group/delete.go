package group

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
		Usage:       "Delete a group",
		Description: "Delete an element group without members",
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
			if err := c.Delete(ctx, client.Path("/api/groups", id)); err != nil {
				log.Error("Failed to delete group", "error", err, "id", id)
				return err
			}
			log.Info("Group deleted successfully", "id", id)
			fmt.Println("Group deleted")
			return nil
		},
	}
}
