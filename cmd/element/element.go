package element

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

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
		StateCommand(),
		InterfacesCommand(),
		PhysicalInterfaceCommand(),
		LogicalInterfaceCommand(),
		LinkCommand(),
		UnlinkCommand(),
		ImagesCommand(),
		DnsCommand(),
		ProbeCommand(),
	}
}

// settingsFlags are shared by add and update
func settingsFlags(nameRequired bool) []cli.Flag {
	return client.Flags(
		&cli.StringFlag{Name: "name", Usage: "Element name", Required: nameRequired},
		&cli.StringFlag{Name: "alias", Usage: "Element alias"},
		&cli.StringFlag{Name: "group", Usage: "Element group ID"},
		&cli.StringFlag{Name: "group-type", Usage: "Element group type, used with --group-name"},
		&cli.StringFlag{Name: "group-name", Usage: "Element group name, used with --group-type"},
		&cli.StringFlag{Name: "role", Usage: "Element role", Required: nameRequired},
		&cli.StringFlag{Name: "platform", Usage: "Platform ID or name, unknown names are registered"},
		&cli.StringFlag{Name: "serial", Usage: "Serial number"},
		&cli.StringFlag{Name: "asset-id", Usage: "Asset ID"},
		&cli.StringFlag{Name: "mac", Usage: "Management MAC address"},
		&cli.StringFlag{Name: "description", Usage: "Element description"},
		&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags"},
		&cli.StringFlag{Name: "mgmt", Usage: "Comma-separated management interfaces, e.g. SSH=ssh://10.0.0.1:22"},
	)
}

// applySettings copies the flags that were given onto e
func applySettings(cmd *cli.Command, e *model.Element) error {
	set := func(dst *string, flag string) {
		if v := cmd.GetString(flag); v != "" {
			*dst = v
		}
	}
	set(&e.Name, "name")
	set(&e.Alias, "alias")
	set(&e.Role, "role")
	set(&e.SerialNumber, "serial")
	set(&e.AssetID, "asset-id")
	set(&e.ManagementMAC, "mac")
	set(&e.Description, "description")

	if v := cmd.GetString("group"); v != "" {
		e.GroupID, e.GroupType, e.GroupName = v, "", ""
	} else if t, n := cmd.GetString("group-type"), cmd.GetString("group-name"); t != "" && n != "" {
		e.GroupID, e.GroupType, e.GroupName = "", t, n
	}
	if v := cmd.GetString("platform"); v != "" {
		if model.ValidID(v) {
			e.PlatformID, e.PlatformName = v, ""
		} else {
			e.PlatformID, e.PlatformName = "", v
		}
	}
	if v := cmd.GetString("tags"); v != "" {
		e.Tags = client.ParseList(v)
	}
	if v := cmd.GetString("mgmt"); v != "" {
		mgmt, err := parseManagementInterfaces(v)
		if err != nil {
			return err
		}
		e.ManagementInterfaces = mgmt
	}
	return nil
}

// parseManagementInterfaces parses NAME=scheme://host[:port][/path] entries
func parseManagementInterfaces(s string) ([]model.ManagementInterface, error) {
	var result []model.ManagementInterface
	for _, entry := range client.ParseList(s) {
		name, raw, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid management interface %q, expected NAME=URL", entry)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Hostname() == "" {
			return nil, fmt.Errorf("invalid management interface URL %q", raw)
		}
		mi := model.ManagementInterface{
			Name:     strings.ToUpper(name),
			Protocol: u.Scheme,
			Hostname: u.Hostname(),
			Path:     u.Path,
		}
		if p := u.Port(); p != "" {
			if mi.Port, err = strconv.Atoi(p); err != nil {
				return nil, fmt.Errorf("invalid port in %q", raw)
			}
		}
		result = append(result, mi)
	}
	return result, nil
}

func printElements(format client.Format, elements []model.Element) error {
	return client.Print(os.Stdout, format, elements, func(tw *tabwriter.Writer) {
		if len(elements) == 0 {
			fmt.Fprintln(tw, "No elements found")
			return
		}
		fmt.Fprintln(tw, "ID\tNAME\tGROUP\tROLE\tPLATFORM\tADM\tOP")
		for _, e := range elements {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Name, e.GroupName, e.Role, e.PlatformName, e.AdministrativeState, e.OperationalState)
		}
	})
}

func printElement(format client.Format, e *model.Element) error {
	return client.Print(os.Stdout, format, e, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "ID:\t%s\n", e.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", e.Name)
		fmt.Fprintf(tw, "Alias:\t%s\n", e.Alias)
		fmt.Fprintf(tw, "Group:\t%s/%s (%s)\n", e.GroupType, e.GroupName, e.GroupID)
		fmt.Fprintf(tw, "Role:\t%s\n", e.Role)
		fmt.Fprintf(tw, "Platform:\t%s (%s)\n", e.PlatformName, e.PlatformID)
		fmt.Fprintf(tw, "Administrative:\t%s\n", e.AdministrativeState)
		fmt.Fprintf(tw, "Operational:\t%s\n", e.OperationalState)
		fmt.Fprintf(tw, "Serial:\t%s\n", e.SerialNumber)
		fmt.Fprintf(tw, "Asset ID:\t%s\n", e.AssetID)
		fmt.Fprintf(tw, "MAC:\t%s\n", e.ManagementMAC)
		fmt.Fprintf(tw, "Description:\t%s\n", e.Description)
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(e.Tags, ", "))
		fmt.Fprintf(tw, "Created:\t%s\n", e.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", e.UpdatedAt.Format(time.RFC3339))
		if len(e.ManagementInterfaces) > 0 {
			fmt.Fprintln(tw, "Management:")
			for _, m := range e.ManagementInterfaces {
				fmt.Fprintf(tw, "  - %s\t%s://%s:%d%s\n", m.Name, m.Protocol, m.Hostname, m.Port, m.Path)
			}
		}
	})
}
