package element

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/client"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/paularlott/cli"
)

func interfacePath(ref, kind string, name ...string) string {
	return client.Path("/api/elements", append([]string{ref, "interfaces", kind}, name...)...)
}

func printPhysicalInterfaces(format client.Format, ifps []model.PhysicalInterface) error {
	return client.Print(os.Stdout, format, ifps, func(tw *tabwriter.Writer) {
		if len(ifps) == 0 {
			fmt.Fprintln(tw, "No physical interfaces found")
			return
		}
		fmt.Fprintln(tw, "NAME\tALIAS\tBANDWIDTH\tADM\tOP\tNEIGHBOR")
		for _, p := range ifps {
			neighbor := ""
			if p.Neighbor != nil {
				name := p.Neighbor.ElementName
				if name == "" {
					name = p.Neighbor.ElementID
				}
				neighbor = name + ":" + p.Neighbor.InterfaceName
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Name, p.Alias, p.Bandwidth, p.AdministrativeState, p.OperationalState, neighbor)
		}
	})
}

func printLogicalInterfaces(format client.Format, ifls []model.LogicalInterface) error {
	return client.Print(os.Stdout, format, ifls, func(tw *tabwriter.Writer) {
		if len(ifls) == 0 {
			fmt.Fprintln(tw, "No logical interfaces found")
			return
		}
		fmt.Fprintln(tw, "NAME\tIFC\tVLAN\tVRF\tADDRESSES\tADM\tOP")
		for _, l := range ifls {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				l.Name, l.ContainerInterface, l.VlanID, l.RoutingInstance,
				strings.Join(l.Addresses, ","), l.AdministrativeState, l.OperationalState)
		}
	})
}

func InterfacesCommand() *cli.Command {
	return &cli.Command{
		Name:        "interfaces",
		Usage:       "List element interfaces",
		Description: "List the physical or logical interfaces of an element",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "kind", Usage: "Interface kind (physical, logical)", DefaultValue: "physical"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref := cmd.GetStringArg("element")

			switch kind := cmd.GetString("kind"); kind {
			case "physical":
				var ifps []model.PhysicalInterface
				if err := c.Get(ctx, interfacePath(ref, kind), &ifps); err != nil {
					log.Error("Failed to list physical interfaces", "error", err, "element", ref)
					return err
				}
				return printPhysicalInterfaces(format, ifps)
			case "logical":
				var ifls []model.LogicalInterface
				if err := c.Get(ctx, interfacePath(ref, kind), &ifls); err != nil {
					log.Error("Failed to list logical interfaces", "error", err, "element", ref)
					return err
				}
				return printLogicalInterfaces(format, ifls)
			default:
				return fmt.Errorf("unknown interface kind %q (physical, logical)", kind)
			}
		},
	}
}

func PhysicalInterfaceCommand() *cli.Command {
	return &cli.Command{
		Name:  "ifp",
		Usage: "Manage physical interfaces",
		Commands: []*cli.Command{
			storePhysicalInterfaceCommand(),
			removeInterfaceCommand("physical"),
		},
	}
}

func LogicalInterfaceCommand() *cli.Command {
	return &cli.Command{
		Name:  "ifl",
		Usage: "Manage logical interfaces",
		Commands: []*cli.Command{
			storeLogicalInterfaceCommand(),
			removeInterfaceCommand("logical"),
		},
	}
}

func storePhysicalInterfaceCommand() *cli.Command {
	return &cli.Command{
		Name:        "set",
		Usage:       "Store a physical interface",
		Description: "Add or update a physical interface of an element",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "alias", Usage: "Interface alias"},
			&cli.StringFlag{Name: "category", Usage: "Interface category"},
			&cli.StringFlag{Name: "bandwidth", Usage: "Bandwidth, e.g. \"10 Gbps\""},
			&cli.StringFlag{Name: "mac", Usage: "MAC address"},
			&cli.StringFlag{Name: "ifc", Usage: "Container interface name"},
			&cli.StringFlag{Name: "administrative", Usage: "Administrative state (UP, DOWN)"},
			&cli.StringFlag{Name: "operational", Usage: "Operational state (UP, DOWN)"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref, name := cmd.GetStringArg("element"), cmd.GetStringArg("name")

			ifp := model.PhysicalInterface{
				Name:                name,
				Alias:               cmd.GetString("alias"),
				Category:            cmd.GetString("category"),
				MACAddress:          cmd.GetString("mac"),
				ContainerInterface:  cmd.GetString("ifc"),
				AdministrativeState: model.InterfaceState(cmd.GetString("administrative")),
				OperationalState:    model.InterfaceState(cmd.GetString("operational")),
			}
			if v := cmd.GetString("bandwidth"); v != "" {
				if ifp.Bandwidth, err = model.ParseBandwidth(v); err != nil {
					return err
				}
			}

			var stored model.PhysicalInterface
			if err := c.Put(ctx, interfacePath(ref, "physical", name), ifp, &stored); err != nil {
				log.Error("Failed to store physical interface", "error", err, "element", ref, "ifp", name)
				return err
			}
			log.Info("Physical interface stored", "element", ref, "ifp", name)
			return printPhysicalInterfaces(format, []model.PhysicalInterface{stored})
		},
	}
}

func storeLogicalInterfaceCommand() *cli.Command {
	return &cli.Command{
		Name:        "set",
		Usage:       "Store a logical interface",
		Description: "Add or update a logical interface of an element",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "ifc", Usage: "Container interface name", Required: true},
			&cli.StringFlag{Name: "vrf", Usage: "Routing instance"},
			&cli.IntFlag{Name: "vlan", Usage: "VLAN ID"},
			&cli.StringFlag{Name: "addresses", Usage: "Comma-separated addresses in CIDR notation"},
			&cli.StringFlag{Name: "administrative", Usage: "Administrative state (UP, DOWN)"},
			&cli.StringFlag{Name: "operational", Usage: "Operational state (UP, DOWN)"},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, format, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref, name := cmd.GetStringArg("element"), cmd.GetStringArg("name")

			ifl := model.LogicalInterface{
				Name:                name,
				ContainerInterface:  cmd.GetString("ifc"),
				RoutingInstance:     cmd.GetString("vrf"),
				VlanID:              cmd.GetInt("vlan"),
				Addresses:           client.ParseList(cmd.GetString("addresses")),
				AdministrativeState: model.InterfaceState(cmd.GetString("administrative")),
				OperationalState:    model.InterfaceState(cmd.GetString("operational")),
			}

			var stored model.LogicalInterface
			if err := c.Put(ctx, interfacePath(ref, "logical", name), ifl, &stored); err != nil {
				log.Error("Failed to store logical interface", "error", err, "element", ref, "ifl", name)
				return err
			}
			log.Info("Logical interface stored", "element", ref, "ifl", name)
			return printLogicalInterfaces(format, []model.LogicalInterface{stored})
		},
	}
}

func removeInterfaceCommand(kind string) *cli.Command {
	return &cli.Command{
		Name:        "delete",
		Usage:       "Remove a " + kind + " interface",
		Description: "Remove a " + kind + " interface from an element",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
			&cli.StringArg{Name: "name", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref, name := cmd.GetStringArg("element"), cmd.GetStringArg("name")
			if err := c.Delete(ctx, interfacePath(ref, kind, name)); err != nil {
				log.Error("Failed to remove interface", "error", err, "element", ref, "kind", kind, "name", name)
				return err
			}
			log.Info("Interface removed", "element", ref, "kind", kind, "name", name)
			fmt.Println("Interface removed")
			return nil
		},
	}
}

func LinkCommand() *cli.Command {
	return &cli.Command{
		Name:        "link",
		Usage:       "Link two physical interfaces",
		Description: "Record that a physical interface is cabled to a neighbor interface",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
			&cli.StringArg{Name: "ifp", Required: true},
		},
		Flags: client.Flags(
			&cli.StringFlag{Name: "neighbor", Usage: "Neighbor element ID, name or alias", Required: true},
			&cli.StringFlag{Name: "neighbor-ifp", Usage: "Neighbor physical interface", Required: true},
		),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref, ifp := cmd.GetStringArg("element"), cmd.GetStringArg("ifp")
			req := api.NeighborRequest{Element: cmd.GetString("neighbor"), Interface: cmd.GetString("neighbor-ifp")}

			var resp api.ChangedResponse
			if err := c.Put(ctx, interfacePath(ref, "physical", ifp, "neighbor"), req, &resp); err != nil {
				log.Error("Failed to link interfaces", "error", err, "element", ref, "ifp", ifp)
				return err
			}
			log.Info("Interfaces linked", "element", ref, "ifp", ifp, "neighbor", req.Element, "changed", resp.Changed)
			if resp.Changed {
				fmt.Println("Link stored")
			} else {
				fmt.Println("Link unchanged")
			}
			return nil
		},
	}
}

func UnlinkCommand() *cli.Command {
	return &cli.Command{
		Name:        "unlink",
		Usage:       "Remove a neighbor link",
		Description: "Remove the neighbor link of a physical interface on both ends",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "element", Required: true},
			&cli.StringArg{Name: "ifp", Required: true},
		},
		Flags: client.Flags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			c, _, err := client.FromCommand(cmd)
			if err != nil {
				return err
			}
			ref, ifp := cmd.GetStringArg("element"), cmd.GetStringArg("ifp")

			var resp api.ChangedResponse
			if err := c.Do(ctx, "DELETE", interfacePath(ref, "physical", ifp, "neighbor"), nil, &resp); err != nil {
				log.Error("Failed to unlink interface", "error", err, "element", ref, "ifp", ifp)
				return err
			}
			log.Info("Interface unlinked", "element", ref, "ifp", ifp, "changed", resp.Changed)
			if resp.Changed {
				fmt.Println("Link removed")
			} else {
				fmt.Println("Interface had no link")
			}
			return nil
		},
	}
}
