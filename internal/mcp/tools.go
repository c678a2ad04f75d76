package mcp

import (
	"context"

	"github.com/martinsuchenak/netinv/internal/model"
)

// ElementInterfaces is the result of list_element_interfaces
type ElementInterfaces struct {
	Physical []model.PhysicalInterface `json:"physical"`
	Logical  []model.LogicalInterface  `json:"logical"`
}

// ImageStateChange is the result of release_image and revoke_image
type ImageStateChange struct {
	ImageID    string           `json:"image_id"`
	State      model.ImageState `json:"image_state"`
	Superseded []string         `json:"superseded"`
}

func (s *Server) listElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error) {
	return s.inv.Elements.ListElements(ctx, filter)
}

func (s *Server) getElement(ctx context.Context, ref string) (*model.Element, error) {
	return s.inv.Elements.GetElement(ctx, ref)
}

func (s *Server) listElementInterfaces(ctx context.Context, ref string) (*ElementInterfaces, error) {
	ifps, err := s.inv.Interfaces.ListPhysicalInterfaces(ctx, ref)
	if err != nil {
		return nil, err
	}
	ifls, err := s.inv.Interfaces.ListLogicalInterfaces(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &ElementInterfaces{Physical: ifps, Logical: ifls}, nil
}

func (s *Server) listElementImages(ctx context.Context, ref string) ([]model.ElementImage, error) {
	return s.inv.ElementImages.ListElementImages(ctx, ref)
}

func (s *Server) listImages(ctx context.Context, query *model.ImageQuery) ([]model.Image, error) {
	return s.inv.Images.ListImages(ctx, query)
}

func (s *Server) setImageState(ctx context.Context, id string, state model.ImageState) (*ImageStateChange, error) {
	superseded, err := s.inv.Images.UpdateImageState(ctx, id, state)
	if err != nil {
		return nil, err
	}
	if superseded == nil {
		superseded = []string{}
	}
	return &ImageStateChange{ImageID: id, State: state, Superseded: superseded}, nil
}
