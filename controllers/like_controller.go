package controllers

import (
	"net/http"
	"strconv"
	"time"

	"historicgems/global"
	"historicgems/services"

	"github.com/gin-gonic/gin"
)

const likeRankKey = "rank:artifact:likes"

type likeRequest struct {
	ID          uint   `json:"id" binding:"required"`
	LikedBy     string `json:"liked_by" binding:"required"`
	LikedStatus string `json:"likedStatus" binding:"required"`
}

// LikeArtifact toggles the (artifact, user) like relation. The caller names
// the target transition explicitly; nothing is inferred from current state.
// Each transition is two independent store writes plus best-effort side
// channels (rank ZSET, audit event, cache invalidation).
func LikeArtifact(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.LikedStatus {
	case "increase":
		like, err := services.LikeArtifact(global.Db, req.ID, req.LikedBy)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		afterLikeTransition(req, 1)
		// the insert ack is the response; the counter write is not reported
		ctx.JSON(http.StatusOK, like)

	case "decrease":
		deleted, err := services.UnlikeArtifact(global.Db, req.ID, req.LikedBy)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		afterLikeTransition(req, -1)
		ctx.JSON(http.StatusOK, gin.H{"deletedCount": deleted})

	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "likedStatus must be increase or decrease"})
	}
}

func afterLikeTransition(req likeRequest, delta float64) {
	if global.RedisDB != nil {
		global.RedisDB.ZIncrBy(likeRankKey, delta, strconv.FormatUint(uint64(req.ID), 10))
	}
	invalidateArtifactsCache()

	action := "increase"
	if delta < 0 {
		action = "decrease"
	}
	services.PublishLikeEvent(services.LikeEvent{
		ArtifactID: req.ID,
		LikedBy:    req.LikedBy,
		Action:     action,
		At:         time.Now(),
	})
}

// CheckLiked reports membership only; it never touches the counter.
func CheckLiked(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}
	email := ctx.Query("email")

	liked, err := services.IsLiked(global.Db, uint(id), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"likedStatus": liked})
}

// GetLikedArtifacts lists the caller's like rows; owner-scoped like
// GetMyArtifacts.
func GetLikedArtifacts(ctx *gin.Context) {
	owner := ctx.Param("email")
	if ctx.GetString("email") != owner {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	likes, err := services.LikesByUser(global.Db, owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, likes)
}
