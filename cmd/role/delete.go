package role

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
		Usage:       "Delete a role",
		Description: "Delete a role that no element or image refers to",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			name := cmd.GetStringArg("name")
			if err := c.Delete(ctx, client.Path("/api/roles", name)); err != nil {
				log.Error("Failed to delete role", "error", err, "name", name)
				return err
			}
			log.Info("Role deleted successfully", "name", name)
			fmt.Println("Role deleted")
			return nil
		},
	}
}
