// Package mcp exposes read and release tools over the Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paularlott/mcp"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/inventory"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
)

const (
	serverName    = "netinv"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server and the inventory its tools operate on
type Server struct {
	inv   *inventory.Inventory
	token string
	mcp   *mcp.Server
}

var toolNames = []string{
	"list_elements",
	"get_element",
	"list_element_interfaces",
	"list_element_images",
	"list_images",
	"release_image",
	"revoke_image",
}

// NewServer creates an MCP server. An empty token disables authentication.
func NewServer(inv *inventory.Inventory, token string) *Server {
	s := &Server{
		inv:   inv,
		token: token,
		mcp:   mcp.NewServer(serverName, serverVersion),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.RegisterTool(
		mcp.NewTool("list_elements", "List network elements, optionally filtered",
			mcp.String("group", "Element group id"),
			mcp.String("role", "Element role, e.g. LEAF"),
			mcp.String("name", "Partial match on element name or alias"),
			mcp.String("tag", "Element tag"),
			mcp.String("state", "Administrative state: NEW, ACTIVE or RETIRED"),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			filter := &model.ElementFilter{
				GroupID:             optional(req, "group"),
				Role:                optional(req, "role"),
				Name:                optional(req, "name"),
				Tag:                 optional(req, "tag"),
				AdministrativeState: model.AdministrativeState(optional(req, "state")),
			}
			return respond(s.listElements(ctx, filter))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("get_element", "Get an element by id, name or alias",
			mcp.String("element", "Element id, name or alias", mcp.Required()),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			ref, err := req.String("element")
			if err != nil {
				return nil, err
			}
			return respond(s.getElement(ctx, ref))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("list_element_interfaces", "List the physical and logical interfaces of an element",
			mcp.String("element", "Element id, name or alias", mcp.Required()),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			ref, err := req.String("element")
			if err != nil {
				return nil, err
			}
			return respond(s.listElementInterfaces(ctx, ref))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("list_element_images", "List the images installed on an element",
			mcp.String("element", "Element id, name or alias", mcp.Required()),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			ref, err := req.String("element")
			if err != nil {
				return nil, err
			}
			return respond(s.listElementImages(ctx, ref))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("list_images", "List images, newest version first",
			mcp.String("type", "Image type, e.g. lxc"),
			mcp.String("state", "Image state: CANDIDATE, RELEASE, SUPERSEDED or REVOKED"),
			mcp.String("role", "Element role the image is built for"),
			mcp.String("filter", "Partial match on image name"),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			query := &model.ImageQuery{
				Type:   optional(req, "type"),
				State:  model.ImageState(optional(req, "state")),
				Role:   optional(req, "role"),
				Filter: optional(req, "filter"),
			}
			return respond(s.listImages(ctx, query))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("release_image", "Release an image. Previous releases for the same roles are superseded.",
			mcp.String("image_id", "Image id", mcp.Required()),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			id, err := req.String("image_id")
			if err != nil {
				return nil, err
			}
			return respond(s.setImageState(ctx, id, model.ImageRelease))
		},
	)
	s.mcp.RegisterTool(
		mcp.NewTool("revoke_image", "Revoke an image so it is no longer offered for installation",
			mcp.String("image_id", "Image id", mcp.Required()),
		),
		func(ctx context.Context, req *mcp.ToolRequest) (*mcp.ToolResponse, error) {
			id, err := req.String("image_id")
			if err != nil {
				return nil, err
			}
			return respond(s.setImageState(ctx, id, model.ImageRevoked))
		},
	)
}

func optional(req *mcp.ToolRequest, name string) string {
	v, err := req.String(name)
	if err != nil {
		return ""
	}
	return v
}

func respond(v any, err error) (*mcp.ToolResponse, error) {
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResponseText(string(data)), nil
}

// GetHTTPHandler returns the MCP endpoint, guarded by the bearer token when one is set.
func (s *Server) GetHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && !api.ValidBearer(r, s.token) {
			log.Warn("Rejected MCP request", "remote_addr", r.RemoteAddr)
			w.Header().Set("WWW-Authenticate", `Bearer realm="netinv-mcp"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		s.mcp.HandleRequest(w, r)
	}
}

// LogStartup logs the registered tools.
func (s *Server) LogStartup() {
	log.Info("MCP tools registered", "count", len(toolNames), "tools", toolNames, "auth", s.token != "")
}
