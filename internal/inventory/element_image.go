package inventory

import (
	"context"
	"strings"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
	"github.com/martinsuchenak/netinv/internal/storage"
)

type ElementImageManager struct {
	tx Transactor
}

func normalizeImageReferences(refs []model.ElementImageReference) error {
	seen := make(map[string]bool, len(refs))
	active := make(map[string]string)
	for i := range refs {
		ref := &refs[i]
		ref.ImageType = strings.TrimSpace(ref.ImageType)
		ref.ImageName = strings.TrimSpace(ref.ImageName)
		ref.ImageVersion = strings.TrimSpace(ref.ImageVersion)
		if ref.ImageType == "" || ref.ImageName == "" {
			return invalid("image type and name are required")
		}
		if !model.ValidVersion(ref.ImageVersion) {
			return invalid("image %s: invalid version %q", ref.ImageName, ref.ImageVersion)
		}
		if ref.State == "" {
			ref.State = model.ElementImageCached
		}
		if !ref.State.Valid() {
			return invalid("image %s: invalid state %q", ref.ImageName, ref.State)
		}
		if seen[ref.Key()] {
			return invalid("duplicate image reference %s", ref.Key())
		}
		seen[ref.Key()] = true

		if ref.State == model.ElementImageActive {
			if other, ok := active[ref.ImageType]; ok {
				return fault.Conflict(fault.IVT0342E_ELEMENT_IMAGE_AMBIGUOUS_ACTIVE,
					"images %s and %s are both ACTIVE for image type %s", other, ref.Key(), ref.ImageType)
			}
			active[ref.ImageType] = ref.Key()
		}
	}
	return nil
}

// StoreElementImages reconciles the images installed on an element with refs:
// references are matched by image type, name and version; matches get their
// state updated, new references are added and absent ones removed. Images the
// inventory does not know yet are registered as CANDIDATE images for the
// element's role and platform chipset.
func (m *ElementImageManager) StoreElementImages(ctx context.Context, elementRef string, refs []model.ElementImageReference) error {
	if err := normalizeImageReferences(refs); err != nil {
		return err
	}

	var elementID string
	var added, updated, removed, registered int
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		elementID = e.ID
		chipset, err := elementChipset(ctx, r, e)
		if err != nil {
			return err
		}

		current, err := r.ListElementImages(ctx, e.ID)
		if err != nil {
			return err
		}
		wanted := make(map[string]model.ElementImageReference, len(refs))
		for _, ref := range refs {
			wanted[ref.Key()] = ref
		}
		installed := make(map[string]model.ElementImage, len(current))
		for _, ei := range current {
			key := model.ElementImageReference{ImageType: ei.ImageType, ImageName: ei.ImageName, ImageVersion: ei.ImageVersion}.Key()
			if _, ok := wanted[key]; !ok {
				if err := r.DeleteElementImage(ctx, e.ID, ei.ImageID); err != nil {
					return err
				}
				removed++
				continue
			}
			installed[key] = ei
		}

		for _, ref := range refs {
			if ei, ok := installed[ref.Key()]; ok {
				if ei.State != ref.State {
					if err := r.SetElementImageState(ctx, e.ID, ei.ImageID, ref.State); err != nil {
						return err
					}
					updated++
				}
				continue
			}
			img, isNew, err := resolveImage(ctx, r, e, chipset, ref)
			if err != nil {
				return err
			}
			if isNew {
				registered++
			}
			err = r.InsertElementImage(ctx, &model.ElementImage{ElementID: e.ID, ImageID: img.ID, State: ref.State})
			if err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Element images stored", "element_id", elementID, "added", added, "updated", updated,
		"removed", removed, "registered", registered)
	return nil
}

func elementChipset(ctx context.Context, r storage.Repo, e *model.Element) (string, error) {
	if e.PlatformID == "" {
		return "", nil
	}
	p, err := r.GetPlatform(ctx, e.PlatformID)
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.Chipset, nil
}

// resolveImage finds the image for ref, preferring the element's chipset,
// then a chipset-neutral build, then any build of that version. Unknown
// images are registered.
func resolveImage(ctx context.Context, r storage.Repo, e *model.Element, chipset string, ref model.ElementImageReference) (*model.Image, bool, error) {
	candidates := []string{chipset}
	if chipset != "" {
		candidates = append(candidates, "")
	}
	for _, c := range candidates {
		img, err := r.FindImage(ctx, ref.ImageType, ref.ImageName, ref.ImageVersion, c)
		if err == nil {
			return img, false, nil
		}
		if !isNotFound(err) {
			return nil, false, err
		}
	}
	variants, err := r.FindImagesByVersion(ctx, ref.ImageType, ref.ImageName, ref.ImageVersion)
	if err != nil {
		return nil, false, err
	}
	if len(variants) > 0 {
		return &variants[0], false, nil
	}

	img := &model.Image{
		ID:              model.NewID(),
		Type:            ref.ImageType,
		Name:            ref.ImageName,
		Version:         ref.ImageVersion,
		State:           model.ImageCandidate,
		PlatformChipset: chipset,
		ElementRoles:    []string{e.Role},
	}
	if err := r.InsertImage(ctx, img); err != nil {
		return nil, false, err
	}
	log.Info("Image registered", "image_id", img.ID, "image_name", img.Name, "image_version", img.Version, "element_id", e.ID)
	return img, true, nil
}

func (m *ElementImageManager) ListElementImages(ctx context.Context, elementRef string) ([]model.ElementImage, error) {
	var images []model.ElementImage
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		images, err = r.ListElementImages(ctx, e.ID)
		return err
	})
	return images, err
}

// RemoveElementImage uninstalls an image from an element. ACTIVE images
// cannot be removed; removing an image that is not installed does nothing.
func (m *ElementImageManager) RemoveElementImage(ctx context.Context, elementRef, imageID string) error {
	removed := false
	var elementID string
	err := m.tx.InTx(ctx, func(r storage.Repo) error {
		e, err := requireElement(ctx, r, elementRef)
		if err != nil {
			return err
		}
		elementID = e.ID
		ei, err := r.GetElementImage(ctx, e.ID, imageID)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if ei.Active() {
			return fault.Conflict(fault.IVT0341E_ELEMENT_IMAGE_ACTIVE,
				"image %s %s is ACTIVE on element %s", ei.ImageName, ei.ImageVersion, e.Name)
		}
		removed = true
		return r.DeleteElementImage(ctx, e.ID, imageID)
	})
	if err != nil {
		return err
	}
	if removed {
		log.Info("Element image removed", "element_id", elementID, "image_id", imageID)
	}
	return nil
}
