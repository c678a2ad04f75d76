package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
)

func ref(version string, state model.ElementImageState) model.ElementImageReference {
	return model.ElementImageReference{ImageType: "lxc", ImageName: "router", ImageVersion: version, State: state}
}

func TestStoreElementImagesReconciles(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	require.NoError(t, inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("1.0.0", model.ElementImageActive),
		ref("1.1.0", model.ElementImageCached),
	}))
	require.NoError(t, inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("1.1.0", model.ElementImageActive),
		ref("1.2.0", model.ElementImageCached),
	}))

	installed, err := inv.ElementImages.ListElementImages(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, installed, 2)
	assert.Equal(t, "1.2.0", installed[0].ImageVersion)
	assert.Equal(t, model.ElementImageCached, installed[0].State)
	assert.Equal(t, "1.1.0", installed[1].ImageVersion)
	assert.Equal(t, model.ElementImageActive, installed[1].State)
}

func TestStoreElementImagesRegistersUnknownImages(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()

	_, err := inv.Platforms.StorePlatform(ctx, &model.Platform{Name: "AS7712", Chipset: "tomahawk"})
	require.NoError(t, err)
	e := &model.Element{Name: "leaf1", GroupID: g.ID, Role: "LEAF", PlatformName: "AS7712"}
	_, err = inv.Elements.StoreElement(ctx, e)
	require.NoError(t, err)

	require.NoError(t, inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("2.0.0", ""),
	}))

	images, err := inv.Images.ListImages(ctx, &model.ImageQuery{Version: "2.0.0"})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, model.ImageCandidate, images[0].State)
	assert.Equal(t, "tomahawk", images[0].PlatformChipset)
	assert.Equal(t, []string{"LEAF"}, images[0].ElementRoles)

	installed, err := inv.ElementImages.ListElementImages(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, installed, 1)
	assert.Equal(t, model.ElementImageCached, installed[0].State)
}

func TestStoreElementImagesRejectsTwoActive(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	err := inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("1.0.0", model.ElementImageActive),
		ref("1.1.0", model.ElementImageActive),
	})
	requireReason(t, err, fault.IVT0342E_ELEMENT_IMAGE_AMBIGUOUS_ACTIVE)

	// Different image types may each have an active image.
	err = inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("1.0.0", model.ElementImageActive),
		{ImageType: "onl-installer", ImageName: "onl", ImageVersion: "3.0.0", State: model.ElementImageActive},
	})
	require.NoError(t, err)
}

func TestRemoveElementImage(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	require.NoError(t, inv.ElementImages.StoreElementImages(ctx, e.ID, []model.ElementImageReference{
		ref("1.0.0", model.ElementImageActive),
		ref("0.9.0", model.ElementImageCached),
	}))
	installed, err := inv.ElementImages.ListElementImages(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, installed, 2)
	active, cached := installed[0], installed[1]
	require.True(t, active.Active())

	err = inv.ElementImages.RemoveElementImage(ctx, e.ID, active.ImageID)
	requireReason(t, err, fault.IVT0341E_ELEMENT_IMAGE_ACTIVE)

	require.NoError(t, inv.ElementImages.RemoveElementImage(ctx, e.ID, cached.ImageID))
	// Removing an image that is not installed is a no-op.
	require.NoError(t, inv.ElementImages.RemoveElementImage(ctx, e.ID, cached.ImageID))

	installed, err = inv.ElementImages.ListElementImages(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, installed, 1)
}
