package element

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
		Usage:       "Delete an element",
		Description: "Delete an element that is not ACTIVE",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref := cmd.GetStringArg("element")
			if err := c.Delete(ctx, client.Path("/api/elements", ref)); err != nil {
				log.Error("Failed to delete element", "error", err, "element", ref)
				return err
			}
			log.Info("Element deleted successfully", "element", ref)
			fmt.Println("Element deleted")
			return nil
		},
	}
}
