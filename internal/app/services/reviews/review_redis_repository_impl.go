package reviews

import (
	"context"
	"fmt"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// reviewRedisRepository keeps one review per doctor under its own key. A
// key whose content no longer parses is deleted and treated as absent, so a
// half-written value cannot block future submissions.
type reviewRedisRepository struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewReviewRedisRepository(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.ReviewRepository {
	return &reviewRedisRepository{redis: redisRepository, log: logger}
}

func (r *reviewRedisRepository) FindByDoctorID(ctx context.Context, doctorID string) (*models.DoctorReview, error) {
	key := reviewKey(doctorID)
	raw, err := r.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	review := new(models.DoctorReview)
	if err := json.Unmarshal([]byte(raw), review); err != nil {
		r.log.Warn("stored review is corrupt, discarding",
			zap.String(constvars.LoggingStorageKeyKey, key),
			zap.Error(err),
		)
		if deleteErr := r.redis.Delete(ctx, key); deleteErr != nil {
			return nil, deleteErr
		}
		return nil, nil
	}
	return review, nil
}

func (r *reviewRedisRepository) Save(ctx context.Context, doctorID string, review *models.DoctorReview) error {
	return r.redis.Set(ctx, reviewKey(doctorID), review, 0)
}

func (r *reviewRedisRepository) Delete(ctx context.Context, doctorID string) error {
	return r.redis.Delete(ctx, reviewKey(doctorID))
}

func reviewKey(doctorID string) string {
	return fmt.Sprintf(constvars.ReviewStorageKeyFormat, doctorID)
}
