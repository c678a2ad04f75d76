package element

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
	"gopkg.in/yaml.v3"
)

func printElementImages(format client.Format, images []model.ElementImage) error {
	return client.Print(os.Stdout, format, images, func(tw *tabwriter.Writer) {
		if len(images) == 0 {
			fmt.Fprintln(tw, "No images installed")
			return
		}
		fmt.Fprintln(tw, "IMAGE ID\tTYPE\tNAME\tVERSION\tSTATE\tIMAGE STATE\tINSTALLED")
		for _, i := range images {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				i.ImageID, i.ImageType, i.ImageName, i.ImageVersion, i.State, i.ImageState, i.InstallDate.Format(time.RFC3339))
		}
	})
}

// readImageReferences reads a YAML or JSON list of installed image references
func readImageReferences(path string) ([]model.ElementImageReference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var refs []model.ElementImageReference
	if err := yaml.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return refs, nil
}

func ImagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "images",
		Usage: "Manage images installed on an element",
		Commands: []*cli.Command{
			{
				Name:        "list",
				Usage:       "List installed images",
				Description: "List the images installed on an element",
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

					var images []model.ElementImage
					if err := c.Get(ctx, client.Path("/api/elements", ref, "images"), &images); err != nil {
						log.Error("Failed to list element images", "error", err, "element", ref)
						return err
					}
					return printElementImages(format, images)
				},
			},
			{
				Name:        "store",
				Usage:       "Report installed images",
				Description: "Replace the installed images of an element with the references in a YAML or JSON file",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "element", Required: true},
					&cli.StringArg{Name: "file", Required: true},
				},
				Flags: client.Flags(),
				Run: func(ctx context.Context, cmd *cli.Command) error {
					c, format, err := client.FromCommand(cmd)
					if err != nil {
						return err
					}
					ref, path := cmd.GetStringArg("element"), cmd.GetStringArg("file")
					refs, err := readImageReferences(path)
					if err != nil {
						log.Error("Failed to read image references", "error", err, "path", path)
						return err
					}

					var images []model.ElementImage
					if err := c.Put(ctx, client.Path("/api/elements", ref, "images"), refs, &images); err != nil {
						log.Error("Failed to store element images", "error", err, "element", ref)
						return err
					}
					log.Info("Element images stored", "element", ref, "count", len(refs))
					return printElementImages(format, images)
				},
			},
			{
				Name:        "delete",
				Usage:       "Remove an installed image",
				Description: "Remove a cached image from an element. The active image cannot be removed.",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "element", Required: true},
					&cli.StringArg{Name: "image", Required: true},
				},
				Flags: client.Flags(),
				Run: func(ctx context.Context, cmd *cli.Command) error {
					c, _, err := client.FromCommand(cmd)
					if err != nil {
						return err
					}
					ref, image := cmd.GetStringArg("element"), cmd.GetStringArg("image")
					if err := c.Delete(ctx, client.Path("/api/elements", ref, "images", image)); err != nil {
						log.Error("Failed to remove element image", "error", err, "element", ref, "image", image)
						return err
					}
					log.Info("Element image removed", "element", ref, "image", image)
					fmt.Println("Image removed")
					return nil
				},
			},
		},
	}
}
