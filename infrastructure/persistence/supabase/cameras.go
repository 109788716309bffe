package supabase

import (
	"context"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"retrolens-backend/application/ports"
	"retrolens-backend/domain/model"
	"retrolens-backend/pkg/errors"
	"retrolens-backend/pkg/observability"
)

// CameraRepository is the cameras and camera_images adapter.
type CameraRepository struct {
	store
}

// NewCameraRepository creates a cameras adapter.
func NewCameraRepository(client *supabase.Client, logger *zap.Logger, metrics *observability.Collector) ports.CameraRepository {
	return &CameraRepository{store{client: client, logger: logger, metrics: metrics}}
}

func (r *CameraRepository) ListPublic(ctx context.Context, offset, limit int) ([]model.Camera, error) {
	var rows []model.Camera
	_, err := r.client.From("cameras").Select("*", "", false).
		Eq("is_public", "true").
		Range(offset, offset+limit-1, "").
		ExecuteTo(&rows)
	r.observe("select", "cameras", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list cameras", err)
	}
	return rows, nil
}

func (r *CameraRepository) GetByID(ctx context.Context, id string) (*model.Camera, error) {
	var rows []model.Camera
	_, err := r.client.From("cameras").Select("*", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "cameras", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch camera", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("camera")
	}
	return &rows[0], nil
}

func (r *CameraRepository) Create(ctx context.Context, ins model.CameraInsert) (*model.Camera, error) {
	var rows []model.Camera
	_, err := r.client.From("cameras").Insert(ins, false, "", "representation", "").ExecuteTo(&rows)
	r.observe("insert", "cameras", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to create camera", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewDatabaseError("failed to create camera", nil)
	}
	return &rows[0], nil
}

func (r *CameraRepository) Images(ctx context.Context, cameraID string) ([]model.CameraImage, error) {
	var rows []model.CameraImage
	_, err := r.client.From("camera_images").Select("*", "", false).
		Eq("camera_id", cameraID).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	r.observe("select", "camera_images", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch camera images", err)
	}
	return rows, nil
}

func (r *CameraRepository) ImagesByCameraIDs(ctx context.Context, cameraIDs []string) (map[string][]model.CameraImage, error) {
	if len(cameraIDs) == 0 {
		return map[string][]model.CameraImage{}, nil
	}
	var rows []model.CameraImage
	_, err := r.client.From("camera_images").Select("*", "", false).
		In("camera_id", cameraIDs).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	r.observe("select", "camera_images", err)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to fetch camera images", err)
	}
	images := make(map[string][]model.CameraImage, len(cameraIDs))
	for _, row := range rows {
		images[row.CameraID] = append(images[row.CameraID], row)
	}
	return images, nil
}

func (r *CameraRepository) SetViewCount(ctx context.Context, id string, count int) error {
	payload := map[string]int{"view_count": count}
	_, _, err := r.client.From("cameras").Update(payload, "", "").Eq("id", id).Execute()
	r.observe("update", "cameras", err)
	if err != nil {
		return errors.NewDatabaseError("failed to update view count", err)
	}
	return nil
}

func (r *CameraRepository) OwnerID(ctx context.Context, id string) (string, error) {
	var rows []struct {
		UserID string `json:"user_id"`
	}
	_, err := r.client.From("cameras").Select("user_id", "", false).Eq("id", id).ExecuteTo(&rows)
	r.observe("select", "cameras", err)
	if err != nil {
		return "", errors.NewDatabaseError("failed to fetch camera owner", err)
	}
	if len(rows) == 0 {
		return "", errors.NewNotFoundError("camera")
	}
	return rows[0].UserID, nil
}

func (r *CameraRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	_, count, err := r.client.From("cameras").Select("id", "exact", true).Eq("user_id", ownerID).Execute()
	r.observe("count", "cameras", err)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count cameras", err)
	}
	return int(count), nil
}
