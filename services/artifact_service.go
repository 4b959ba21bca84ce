package services

import (
	"errors"
	"strings"

	"historicgems/models"

	"gorm.io/gorm"
)

func CreateArtifact(db *gorm.DB, artifact *models.Artifact) error {
	return db.Create(artifact).Error
}

// SearchArtifacts returns all artifacts, optionally filtered by a
// case-insensitive substring match on the name. Unpaginated.
func SearchArtifacts(db *gorm.DB, search string) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	query := db.Model(&models.Artifact{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := query.Find(&artifacts).Error; err != nil {
		return nil, err
	}
	return artifacts, nil
}

// TopArtifacts returns the n most-liked artifacts, descending by
// liked_count. Tie order is whatever the store returns.
func TopArtifacts(db *gorm.DB, n int) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	err := db.Order("liked_count DESC").Limit(n).Find(&artifacts).Error
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// GetArtifactByID returns nil without error when no record matches: absence
// is an empty success, not a failure.
func GetArtifactByID(db *gorm.DB, id uint) (*models.Artifact, error) {
	var artifact models.Artifact
	err := db.First(&artifact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

func ArtifactsByOwner(db *gorm.DB, email string) ([]models.Artifact, error) {
	var artifacts []models.Artifact
	if err := db.Where("author_email = ?", email).Find(&artifacts).Error; err != nil {
		return nil, err
	}
	return artifacts, nil
}

// UpdateArtifact replaces the descriptive fields on the record with the
// given id. When no record matches, a new one is created under that id
// (upsert-on-update; a missing id never fails). Returns the modified row
// count and whether an upsert happened.
func UpdateArtifact(db *gorm.DB, id uint, payload models.Artifact) (int64, bool, error) {
	var existing models.Artifact
	err := db.First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		payload.ID = id
		if err := db.Create(&payload).Error; err != nil {
			return 0, false, err
		}
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}

	updates := map[string]interface{}{
		"name":               payload.Name,
		"image":              payload.Image,
		"type":               payload.Type,
		"historical_context": payload.HistoricalContext,
		"created_year":       payload.CreatedYear,
		"discovered_year":    payload.DiscoveredYear,
		"discovered_by":      payload.DiscoveredBy,
		"present_location":   payload.PresentLocation,
	}
	res := db.Model(&existing).Updates(updates)
	if res.Error != nil {
		return 0, false, res.Error
	}
	return res.RowsAffected, false, nil
}
