package role

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func Commands() []*cli.Command {
	return []*cli.Command{
		AddCommand(),
		ListCommand(),
		GetCommand(),
		UpdateCommand(),
		DeleteCommand(),
		ImagesCommand(),
	}
}

func parseManageable(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid --manageable value %q", s)
	}
	return b, nil
}

func printRoles(format client.Format, roles []model.ElementRole) error {
	return client.Print(os.Stdout, format, roles, func(tw *tabwriter.Writer) {
		if len(roles) == 0 {
			fmt.Fprintln(tw, "No roles found")
			return
		}
		fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tPLANE\tMANAGEABLE")
		for _, r := range roles {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", r.Name, r.DisplayName, r.Plane, r.Manageable)
		}
	})
}

func printRole(format client.Format, r *model.ElementRole) error {
	return client.Print(os.Stdout, format, r, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Name:\t%s\n", r.Name)
		fmt.Fprintf(tw, "Display Name:\t%s\n", r.DisplayName)
		fmt.Fprintf(tw, "Plane:\t%s\n", r.Plane)
		fmt.Fprintf(tw, "Manageable:\t%t\n", r.Manageable)
		fmt.Fprintf(tw, "Description:\t%s\n", r.Description)
	})
}

func printImages(format client.Format, images []model.Image) error {
	return client.Print(os.Stdout, format, images, func(tw *tabwriter.Writer) {
		if len(images) == 0 {
			fmt.Fprintln(tw, "No images found")
			return
		}
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tVERSION\tCHIPSET\tROLES")
		for _, i := range images {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", i.ID, i.Type, i.Name, i.Version, i.PlatformChipset, strings.Join(i.ElementRoles, ","))
		}
	})
}
