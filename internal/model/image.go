package model

import (
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// ImageState is the release lifecycle state of an image
type ImageState string

const (
	ImageCandidate  ImageState = "CANDIDATE"
	ImageRelease    ImageState = "RELEASE"
	ImageSuperseded ImageState = "SUPERSEDED"
	ImageRevoked    ImageState = "REVOKED"
)

// Valid reports whether s is a known image state
func (s ImageState) Valid() bool {
	switch s {
	case ImageCandidate, ImageRelease, ImageSuperseded, ImageRevoked:
		return true
	}
	return false
}

// ElementImageState is the state of an image installed on an element
type ElementImageState string

const (
	ElementImageCached ElementImageState = "CACHED"
	ElementImageActive ElementImageState = "ACTIVE"
)

// Valid reports whether s is a known element image state
func (s ElementImageState) Valid() bool {
	return s == ElementImageCached || s == ElementImageActive
}

// PackageVersionRef references a package bundled in an image
type PackageVersionRef struct {
	Organization string `json:"org" yaml:"org" toml:"org"`
	Name         string `json:"package_name" yaml:"package_name" toml:"package_name"`
	Version      string `json:"package_version" yaml:"package_version" toml:"package_version"`
}

// Image is an installable software artifact
type Image struct {
	ID              string              `json:"image_id" yaml:"image_id" toml:"image_id"`
	Type            string              `json:"image_type" yaml:"image_type" toml:"image_type"` // e.g. "lxc", "onl-installer"
	Name            string              `json:"image_name" yaml:"image_name" toml:"image_name"`
	Version         string              `json:"image_version" yaml:"image_version" toml:"image_version"`
	State           ImageState          `json:"image_state" yaml:"image_state" toml:"image_state"`
	Organization    string              `json:"org,omitempty" yaml:"org,omitempty" toml:"org,omitempty"`
	Category        string              `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Description     string              `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	PlatformChipset string              `json:"platform_chipset,omitempty" yaml:"platform_chipset,omitempty" toml:"platform_chipset,omitempty"`
	ElementRoles    []string            `json:"element_roles" yaml:"element_roles" toml:"element_roles"`
	BuildID         string              `json:"build_id,omitempty" yaml:"build_id,omitempty" toml:"build_id,omitempty"`
	BuildDate       *time.Time          `json:"build_date,omitempty" yaml:"build_date,omitempty" toml:"build_date,omitempty"`
	Checksums       map[string]string   `json:"checksums,omitempty" yaml:"checksums,omitempty" toml:"checksums,omitempty"`
	Packages        []PackageVersionRef `json:"packages,omitempty" yaml:"packages,omitempty" toml:"packages,omitempty"`
	Extension       string              `json:"image_extension,omitempty" yaml:"image_extension,omitempty" toml:"image_extension,omitempty"`
	CreatedAt       time.Time           `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// HasRole reports whether the image is built for the given element role
func (i *Image) HasRole(role string) bool {
	for _, r := range i.ElementRoles {
		if r == role {
			return true
		}
	}
	return false
}

// SharesRole reports whether both images are built for at least one common role
func (i *Image) SharesRole(other *Image) bool {
	for _, r := range other.ElementRoles {
		if i.HasRole(r) {
			return true
		}
	}
	return false
}

// ImageQuery holds filter criteria for listing images
type ImageQuery struct {
	Type    string
	State   ImageState
	Role    string
	Chipset string
	Version string
	Filter  string // Partial match on image name
	Limit   int
}

// ElementImage is an image installed on an element
type ElementImage struct {
	ElementID    string            `json:"element_id" yaml:"element_id" toml:"element_id"`
	ImageID      string            `json:"image_id" yaml:"image_id" toml:"image_id"`
	ImageType    string            `json:"image_type" yaml:"image_type" toml:"image_type"`
	ImageName    string            `json:"image_name" yaml:"image_name" toml:"image_name"`
	ImageVersion string            `json:"image_version" yaml:"image_version" toml:"image_version"`
	ImageState   ImageState        `json:"image_state,omitempty" yaml:"image_state,omitempty" toml:"image_state,omitempty"`
	State        ElementImageState `json:"element_image_state" yaml:"element_image_state" toml:"element_image_state"`
	InstallDate  time.Time         `json:"install_date" yaml:"install_date" toml:"install_date"`
}

// Active reports whether the image is the running image of the element
func (ei *ElementImage) Active() bool {
	return ei.State == ElementImageActive
}

// ElementImageReference is an image reported as installed on an element
type ElementImageReference struct {
	ImageType    string            `json:"image_type" yaml:"image_type" toml:"image_type"`
	ImageName    string            `json:"image_name" yaml:"image_name" toml:"image_name"`
	ImageVersion string            `json:"image_version" yaml:"image_version" toml:"image_version"`
	State        ElementImageState `json:"element_image_state" yaml:"element_image_state" toml:"element_image_state"`
}

// Key identifies the referenced image independent of its install state
func (r ElementImageReference) Key() string {
	return r.ImageType + "/" + r.ImageName + "/" + r.ImageVersion
}

// ValidVersion reports whether v is a semantic version, with or without "v" prefix
func ValidVersion(v string) bool {
	return v != "" && semver.IsValid(canonicalVersion(v))
}

// CompareVersions returns -1, 0 or +1 ordering a and b by semantic version
func CompareVersions(a, b string) int {
	return semver.Compare(canonicalVersion(a), canonicalVersion(b))
}

func canonicalVersion(v string) string {
	return "v" + strings.TrimPrefix(strings.TrimSpace(v), "v")
}
