package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type ImageManager struct {
	tx Transactor
}

// StoreImage registers or updates an image. New images start as CANDIDATE.
// Storing an image as RELEASE supersedes its predecessors.
func (m *ImageManager) StoreImage(ctx context.Context, img *model.Image) (bool, error) {
	img.Type = strings.TrimSpace(img.Type)
	img.Name = strings.TrimSpace(img.Name)
	img.Version = strings.TrimSpace(img.Version)
	if img.Type == "" || img.Name == "" {
		return false, invalid("image type and name are required")
	}
	if !model.ValidVersion(img.Version) {
		return false, invalid("image %s: invalid version %q", img.Name, img.Version)
	}
	if img.State != "" && !img.State.Valid() {
		return false, invalid("invalid image state %q", img.State)
	}
	img.ElementRoles = uniqueStrings(img.ElementRoles)
	log.Debug("Storing image", "image_id", img.ID, "image_name", img.Name, "image_version", img.Version)

	created := false
	var superseded []string
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		for _, role := range img.ElementRoles {
			if _, err := requireRole(ctx, r, role); err != nil {
				return err
			}
		}

		var existing *model.Image
		if img.ID != "" {
			var err error
			existing, err = r.GetImage(ctx, img.ID)
			if err != nil && !isNotFound(err) {
				return err
			}
		} else {
			img.ID = model.NewID()
		}
		created = existing == nil

		other, err := r.FindImage(ctx, img.Type, img.Name, img.Version, img.PlatformChipset)
		if err != nil && !isNotFound(err) {
			return err
		}
		if other != nil && other.ID != img.ID {
			return imageExists(img)
		}

		if created {
			if img.State == "" {
				img.State = model.ImageCandidate
			}
			if err := r.InsertImage(ctx, img); err != nil {
				return uniqueImage(err, img)
			}
		} else {
			if img.State == "" {
				img.State = existing.State
			}
			img.CreatedAt = existing.CreatedAt
			if err := r.UpdateImage(ctx, img); err != nil {
				return uniqueImage(err, img)
			}
		}

		if img.State != model.ImageRelease {
			return nil
		}
		s, err := supersede(ctx, r, img)
		superseded = s
		return err
	})
	if err != nil {
		return false, err
	}
	log.Info("Image stored", "image_id", img.ID, "image_name", img.Name, "image_version", img.Version,
		"image_state", img.State, "created", created, "superseded", len(superseded))
	return created, nil
}

func imageExists(img *model.Image) *fault.Fault {
	return fault.UniqueViolation(fault.IVT0202E_IMAGE_ALREADY_EXISTS,
		"image %s %s %s (chipset %q) already exists", img.Type, img.Name, img.Version, img.PlatformChipset)
}

func uniqueImage(err error, img *model.Image) error {
	if storage.IsUniqueViolation(err) {
		f := imageExists(img)
		f.Cause = err
		return f
	}
	return err
}

// supersede demotes every other RELEASE image with the same type, name and
// platform chipset that shares at least one role with img.
func supersede(ctx context.Context, r storage.Repo, img *model.Image) ([]string, error) {
	released, err := r.ListImages(ctx, &model.ImageQuery{Type: img.Type, State: model.ImageRelease})
	if err != nil {
		return nil, err
	}
	var superseded []string
	for i := range released {
		prev := &released[i]
		if prev.ID == img.ID || prev.Name != img.Name || prev.PlatformChipset != img.PlatformChipset {
			continue
		}
		if !img.SharesRole(prev) {
			continue
		}
		if err := r.SetImageState(ctx, prev.ID, model.ImageSuperseded); err != nil {
			return nil, err
		}
		superseded = append(superseded, prev.ID)
		log.Info("Image superseded", "image_id", prev.ID, "image_version", prev.Version, "superseded_by", img.ID)
	}
	return superseded, nil
}

func (m *ImageManager) GetImage(ctx context.Context, id string) (*model.Image, error) {
	var img *model.Image
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		img, err = requireImage(ctx, r, id)
		return err
	})
	return img, err
}

// ListImages returns matching images ordered by name, newest version first.
func (m *ImageManager) ListImages(ctx context.Context, query *model.ImageQuery) ([]model.Image, error) {
	if query != nil && query.State != "" && !query.State.Valid() {
		return nil, invalid("invalid image state %q", query.State)
	}
	var images []model.Image
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		images, err = r.ListImages(ctx, query)
		return err
	})
	return images, err
}

// UpdateImageState moves an image to state and returns the ids of the images
// it superseded. Only a transition to RELEASE affects other images.
func (m *ImageManager) UpdateImageState(ctx context.Context, id string, state model.ImageState) ([]string, error) {
	if !state.Valid() {
		return nil, invalid("invalid image state %q", state)
	}
	var img *model.Image
	var superseded []string
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		var err error
		img, err = requireImage(ctx, r, id)
		if err != nil {
			return err
		}
		if img.State != state {
			if err := r.SetImageState(ctx, img.ID, state); err != nil {
				return err
			}
		}
		if state == model.ImageRelease {
			superseded, err = supersede(ctx, r, img)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info("Image state updated", "image_id", img.ID, "from", img.State, "to", state, "superseded", len(superseded))
	return superseded, nil
}

// RemoveImage deletes an image that is not installed on any element.
func (m *ImageManager) RemoveImage(ctx context.Context, id string) error {
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		img, err := requireImage(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.CountImageInstallations(ctx, img.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fault.Conflict(fault.IVT0204E_IMAGE_IN_USE, "image %s %s is installed on %d elements", img.Name, img.Version, n)
		}
		return r.DeleteImage(ctx, img.ID)
	})
	if err != nil {
		return err
	}
	log.Info("Image removed", "image_id", id)
	return nil
}

// GetRoleImages returns the released images for a role.
func (m *ImageManager) GetRoleImages(ctx context.Context, role string) ([]model.Image, error) {
	var images []model.Image
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		if _, err := requireRole(ctx, r, role); err != nil {
			return err
		}
		var err error
		images, err = r.ListImages(ctx, &model.ImageQuery{Role: role, State: model.ImageRelease})
		return err
	})
	return images, err
}
