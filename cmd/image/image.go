package image

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func Commands() []*cli.Command {
	return []*cli.Command{
		AddCommand(),
		ListCommand(),
		GetCommand(),
		DeleteCommand(),
		StateCommand(),
		ReleaseCommand(),
		RevokeCommand(),
	}
}

func printImages(format client.Format, images []model.Image) error {
	return client.Print(os.Stdout, format, images, func(tw *tabwriter.Writer) {
		if len(images) == 0 {
			fmt.Fprintln(tw, "No images found")
			return
		}
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tVERSION\tSTATE\tCHIPSET\tROLES")
		for _, i := range images {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				i.ID, i.Type, i.Name, i.Version, i.State, i.PlatformChipset, strings.Join(i.ElementRoles, ","))
		}
	})
}

func printImage(format client.Format, i *model.Image) error {
	return client.Print(os.Stdout, format, i, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID:\t%s\n", i.ID)
		fmt.Fprintf(tw, "Type:\t%s\n", i.Type)
		fmt.Fprintf(tw, "Name:\t%s\n", i.Name)
		fmt.Fprintf(tw, "Version:\t%s\n", i.Version)
		fmt.Fprintf(tw, "State:\t%s\n", i.State)
		fmt.Fprintf(tw, "Organization:\t%s\n", i.Organization)
		fmt.Fprintf(tw, "Category:\t%s\n", i.Category)
		fmt.Fprintf(tw, "Chipset:\t%s\n", i.PlatformChipset)
		fmt.Fprintf(tw, "Roles:\t%s\n", strings.Join(i.ElementRoles, ", "))
		fmt.Fprintf(tw, "Build ID:\t%s\n", i.BuildID)
		if i.BuildDate != nil {
			fmt.Fprintf(tw, "Build Date:\t%s\n", i.BuildDate.Format(time.RFC3339))
		}
		fmt.Fprintf(tw, "Description:\t%s\n", i.Description)
		fmt.Fprintf(tw, "Created:\t%s\n", i.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", i.UpdatedAt.Format(time.RFC3339))
	})
}

func printStateChange(format client.Format, resp *api.ImageStateResponse) error {
	return client.Print(os.Stdout, format, resp, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Image:\t%s\n", resp.ImageID)
		fmt.Fprintf(tw, "State:\t%s\n", resp.State)
		if len(resp.Superseded) > 0 {
			fmt.Fprintf(tw, "Superseded:\t%s\n", strings.Join(resp.Superseded, ", "))
		}
	})
}
