package image

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func setState(ctx context.Context, cmd *cli.Command, state model.ImageState) error {
	c, format, err := client.FromCommand(cmd)
	if err != nil {
		return err
	}
	id := cmd.GetStringArg("id")

	var resp api.ImageStateResponse
	if err := c.Put(ctx, client.Path("/api/images", id, "state"), api.ImageStateRequest{State: state}, &resp); err != nil {
		log.Error("Failed to update image state", "error", err, "id", id, "state", state)
		return err
	}
	log.Info("Image state updated", "id", id, "state", state, "superseded", len(resp.Superseded))
	return printStateChange(format, &resp)
}

func StateCommand() *cli.Command {
	return &cli.Command{
		Name:        "state",
		Usage:       "Set the image state",
		Description: "Move an image to CANDIDATE, RELEASE, SUPERSEDED or REVOKED",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
			&cli.StringArg{Name: "state", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			return setState(ctx, cmd, model.ImageState(cmd.GetStringArg("state")))
		},
	}
}

func ReleaseCommand() *cli.Command {
	return &cli.Command{
		Name:        "release",
		Usage:       "Release an image",
		Description: "Release an image, superseding the previous release for the same roles and chipset",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			return setState(ctx, cmd, model.ImageRelease)
		},
	}
}

func RevokeCommand() *cli.Command {
	return &cli.Command{
		Name:        "revoke",
		Usage:       "Revoke an image",
		Description: "Revoke an image so it is no longer offered for installation",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			return setState(ctx, cmd, model.ImageRevoked)
		},
	}
}
