package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/martinsuchenak/netinv/internal/model"
)

const imageSelect = `
	SELECT i.id, i.type, i.name, i.version, i.state, i.organization, i.category, i.description,
	       i.chipset, i.build_id, i.build_date, i.checksums, i.packages, i.extension,
	       (SELECT json_group_array(r.role) FROM image_roles r WHERE r.image_id = i.id),
	       i.created_at, i.updated_at
	FROM images i`

func scanImage(row scanner) (*model.Image, error) {
	var img model.Image
	var org, category, description, buildID, checksums, packages, extension, roles sql.NullString
	var buildDate sql.NullTime
	err := row.Scan(&img.ID, &img.Type, &img.Name, &img.Version, &img.State, &org, &category,
		&description, &img.PlatformChipset, &buildID, &buildDate, &checksums, &packages, &extension,
		&roles, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return nil, err
	}
	img.Organization = nullToString(org)
	img.Category = nullToString(category)
	img.Description = nullToString(description)
	img.BuildID = nullToString(buildID)
	img.BuildDate = nullToTimePtr(buildDate)
	img.Extension = nullToString(extension)
	if err := unmarshalJSON(checksums, &img.Checksums); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(packages, &img.Packages); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(roles, &img.ElementRoles); err != nil {
		return nil, err
	}
	sort.Strings(img.ElementRoles)
	return &img, nil
}

func (q *queries) InsertImage(ctx context.Context, img *model.Image) error {
	checksums, err := marshalJSON(img.Checksums)
	if err != nil {
		return err
	}
	packages, err := marshalJSON(img.Packages)
	if err != nil {
		return err
	}
	img.CreatedAt = now()
	img.UpdatedAt = img.CreatedAt
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO images (id, type, name, version, state, organization, category, description,
			chipset, build_id, build_date, checksums, packages, extension, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, img.ID, img.Type, img.Name, img.Version, img.State, stringToNull(img.Organization),
		stringToNull(img.Category), stringToNull(img.Description), img.PlatformChipset,
		stringToNull(img.BuildID), timePtrToNull(img.BuildDate), checksums, packages,
		stringToNull(img.Extension), img.CreatedAt, img.UpdatedAt)
	if err != nil {
		return err
	}
	return q.replaceImageRoles(ctx, img.ID, img.ElementRoles)
}

func (q *queries) UpdateImage(ctx context.Context, img *model.Image) error {
	checksums, err := marshalJSON(img.Checksums)
	if err != nil {
		return err
	}
	packages, err := marshalJSON(img.Packages)
	if err != nil {
		return err
	}
	img.UpdatedAt = now()
	res, err := q.db.ExecContext(ctx, `
		UPDATE images
		SET type = ?, name = ?, version = ?, state = ?, organization = ?, category = ?, description = ?,
			chipset = ?, build_id = ?, build_date = ?, checksums = ?, packages = ?, extension = ?, updated_at = ?
		WHERE id = ?
	`, img.Type, img.Name, img.Version, img.State, stringToNull(img.Organization),
		stringToNull(img.Category), stringToNull(img.Description), img.PlatformChipset,
		stringToNull(img.BuildID), timePtrToNull(img.BuildDate), checksums, packages,
		stringToNull(img.Extension), img.UpdatedAt, img.ID)
	if err != nil {
		return err
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	return q.replaceImageRoles(ctx, img.ID, img.ElementRoles)
}

func (q *queries) replaceImageRoles(ctx context.Context, imageID string, roles []string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM image_roles WHERE image_id = ?`, imageID); err != nil {
		return fmt.Errorf("clearing image roles: %w", err)
	}
	for _, role := range roles {
		_, err := q.db.ExecContext(ctx, `INSERT OR IGNORE INTO image_roles (image_id, role) VALUES (?, ?)`, imageID, role)
		if err != nil {
			return fmt.Errorf("adding image role %s: %w", role, err)
		}
	}
	return nil
}

func (q *queries) GetImage(ctx context.Context, id string) (*model.Image, error) {
	row := q.db.QueryRowContext(ctx, imageSelect+` WHERE i.id = ?`, id)
	img, err := scanImage(row)
	return img, notFound(err)
}

func (q *queries) FindImage(ctx context.Context, imageType, name, version, chipset string) (*model.Image, error) {
	row := q.db.QueryRowContext(ctx, imageSelect+` WHERE i.type = ? AND i.name = ? AND i.version = ? AND i.chipset = ?`,
		imageType, name, version, chipset)
	img, err := scanImage(row)
	return img, notFound(err)
}

func (q *queries) FindImagesByVersion(ctx context.Context, imageType, name, version string) ([]model.Image, error) {
	return q.queryImages(ctx, imageSelect+` WHERE i.type = ? AND i.name = ? AND i.version = ? ORDER BY i.chipset`,
		imageType, name, version)
}

// ListImages returns matching images ordered by name, newest version first.
func (q *queries) ListImages(ctx context.Context, query *model.ImageQuery) ([]model.Image, error) {
	stmt := imageSelect
	var where []string
	var args []any
	if query != nil {
		if query.Type != "" {
			where = append(where, "i.type = ?")
			args = append(args, query.Type)
		}
		if query.State != "" {
			where = append(where, "i.state = ?")
			args = append(args, query.State)
		}
		if query.Role != "" {
			where = append(where, "EXISTS (SELECT 1 FROM image_roles r WHERE r.image_id = i.id AND r.role = ?)")
			args = append(args, query.Role)
		}
		if query.Chipset != "" {
			where = append(where, "i.chipset = ?")
			args = append(args, query.Chipset)
		}
		if query.Version != "" {
			where = append(where, "i.version = ?")
			args = append(args, query.Version)
		}
		if query.Filter != "" {
			where = append(where, "i.name LIKE ?")
			args = append(args, "%"+query.Filter+"%")
		}
	}
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}

	images, err := q.queryImages(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].Name != images[j].Name {
			return images[i].Name < images[j].Name
		}
		if c := model.CompareVersions(images[i].Version, images[j].Version); c != 0 {
			return c > 0
		}
		if images[i].Type != images[j].Type {
			return images[i].Type < images[j].Type
		}
		return images[i].PlatformChipset < images[j].PlatformChipset
	})
	if query != nil && query.Limit > 0 && len(images) > query.Limit {
		images = images[:query.Limit]
	}
	return images, nil
}

func (q *queries) queryImages(ctx context.Context, query string, args ...any) ([]model.Image, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (q *queries) SetImageState(ctx context.Context, id string, state model.ImageState) error {
	res, err := q.db.ExecContext(ctx, `UPDATE images SET state = ?, updated_at = ? WHERE id = ?`, state, now(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) DeleteImage(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) CountImageInstallations(ctx context.Context, id string) (int, error) {
	return q.count(ctx, `SELECT COUNT(*) FROM element_images WHERE image_id = ?`, id)
}
