package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/martinsuchenak/netinv/internal/model"
)

const elementImageSelect = `
	SELECT ei.element_id, ei.image_id, i.type, i.name, i.version, i.state, ei.state, ei.install_date
	FROM element_images ei
	JOIN images i ON i.id = ei.image_id`

func scanElementImage(row scanner) (*model.ElementImage, error) {
	var ei model.ElementImage
	var installDate sql.NullTime
	err := row.Scan(&ei.ElementID, &ei.ImageID, &ei.ImageType, &ei.ImageName, &ei.ImageVersion,
		&ei.ImageState, &ei.State, &installDate)
	if err != nil {
		return nil, err
	}
	if installDate.Valid {
		ei.InstallDate = installDate.Time
	}
	return &ei, nil
}

// ListElementImages returns the images installed on an element, ordered
// by type and name, newest version first.
func (q *queries) ListElementImages(ctx context.Context, elementID string) ([]model.ElementImage, error) {
	rows, err := q.db.QueryContext(ctx, elementImageSelect+` WHERE ei.element_id = ? ORDER BY i.type, i.name`, elementID)
	if err != nil {
		return nil, fmt.Errorf("querying element images: %w", err)
	}
	defer rows.Close()

	var images []model.ElementImage
	for rows.Next() {
		ei, err := scanElementImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning element image: %w", err)
		}
		images = append(images, *ei)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortElementImages(images)
	return images, nil
}

func sortElementImages(images []model.ElementImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return lessElementImage(images[i], images[j])
	})
}

func lessElementImage(a, b model.ElementImage) bool {
	if a.ImageType != b.ImageType {
		return a.ImageType < b.ImageType
	}
	if a.ImageName != b.ImageName {
		return a.ImageName < b.ImageName
	}
	return model.CompareVersions(a.ImageVersion, b.ImageVersion) > 0
}

func (q *queries) GetElementImage(ctx context.Context, elementID, imageID string) (*model.ElementImage, error) {
	row := q.db.QueryRowContext(ctx, elementImageSelect+` WHERE ei.element_id = ? AND ei.image_id = ?`, elementID, imageID)
	ei, err := scanElementImage(row)
	return ei, notFound(err)
}

func (q *queries) InsertElementImage(ctx context.Context, ei *model.ElementImage) error {
	if ei.InstallDate.IsZero() {
		ei.InstallDate = now()
	}
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO element_images (element_id, image_id, state, install_date)
		VALUES (?, ?, ?, ?)
	`, ei.ElementID, ei.ImageID, ei.State, ei.InstallDate.UTC())
	return err
}

func (q *queries) SetElementImageState(ctx context.Context, elementID, imageID string, state model.ElementImageState) error {
	res, err := q.db.ExecContext(ctx, `UPDATE element_images SET state = ? WHERE element_id = ? AND image_id = ?`,
		state, elementID, imageID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (q *queries) DeleteElementImage(ctx context.Context, elementID, imageID string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM element_images WHERE element_id = ? AND image_id = ?`, elementID, imageID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
