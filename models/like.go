package models

import "gorm.io/gorm"

// Like 表示用户对文物的点赞记录。(ArtifactID, LikedBy) 无唯一索引：
// at-most-one 由客户端约定保证，存储层不强制。
type Like struct {
	gorm.Model
	ArtifactID uint   `json:"artifact_id" gorm:"index"`
	LikedBy    string `json:"liked_by" gorm:"index"`
}
