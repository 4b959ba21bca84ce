package services

import (
	"errors"

	"historicgems/models"

	"gorm.io/gorm"
)

// LikeArtifact records the membership row, then bumps the denormalized
// counter. The two writes are independent and non-transactional: a failure
// between them leaves liked_count out of step with the likes table. There is
// no duplicate check either — repeated calls for the same (artifact, liker)
// pair insert additional rows and bump the counter again.
func LikeArtifact(db *gorm.DB, artifactID uint, likedBy string) (*models.Like, error) {
	like := models.Like{ArtifactID: artifactID, LikedBy: likedBy}
	if err := db.Create(&like).Error; err != nil {
		return nil, err
	}
	if err := bumpLikedCount(db, artifactID, 1); err != nil {
		return nil, err
	}
	return &like, nil
}

// UnlikeArtifact removes at most one matching membership row, then
// unconditionally decrements the counter. The decrement runs even when no
// row matched; the two writes do not observe each other.
func UnlikeArtifact(db *gorm.DB, artifactID uint, likedBy string) (int64, error) {
	var deleted int64

	var like models.Like
	err := db.Where("artifact_id = ? AND liked_by = ?", artifactID, likedBy).First(&like).Error
	switch {
	case err == nil:
		if err := db.Delete(&like).Error; err != nil {
			return 0, err
		}
		deleted = 1
	case errors.Is(err, gorm.ErrRecordNotFound):
		deleted = 0
	default:
		return 0, err
	}

	if err := bumpLikedCount(db, artifactID, -1); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// bumpLikedCount applies an atomic single-row increment. When the artifact
// row is missing a stub row is created holding only the counter, mirroring
// an upserting increment.
func bumpLikedCount(db *gorm.DB, artifactID uint, delta int) error {
	res := db.Model(&models.Artifact{}).
		Where("id = ?", artifactID).
		UpdateColumn("liked_count", gorm.Expr("liked_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		stub := models.Artifact{LikedCount: delta}
		stub.ID = artifactID
		return db.Create(&stub).Error
	}
	return nil
}

// IsLiked reports whether a membership row exists for the pair. Read-only.
func IsLiked(db *gorm.DB, artifactID uint, email string) (bool, error) {
	var count int64
	err := db.Model(&models.Like{}).
		Where("artifact_id = ? AND liked_by = ?", artifactID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LikesByUser returns every membership row created by the given email.
func LikesByUser(db *gorm.DB, email string) ([]models.Like, error) {
	var likes []models.Like
	if err := db.Where("liked_by = ?", email).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
