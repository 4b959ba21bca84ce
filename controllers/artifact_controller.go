package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"historicgems/global"
	"historicgems/models"
	"historicgems/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
)

const artifactsCacheKey = "artifacts:all"

func CreateArtifact(ctx *gin.Context) {
	var artifact models.Artifact
	if err := ctx.ShouldBindJSON(&artifact); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// author_email 直接取自请求体，不与登录身份比对（沿用原始行为）
	if err := services.CreateArtifact(global.Db, &artifact); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateArtifactsCache()
	ctx.JSON(http.StatusCreated, artifact)
}

// GetArtifacts lists all artifacts, optionally filtered with ?search= by
// case-insensitive substring on the name. The unfiltered listing is served
// from Redis when the cache is warm.
func GetArtifacts(ctx *gin.Context) {
	search := ctx.Query("search")

	if search == "" && global.RedisDB != nil {
		cached, err := global.RedisDB.Get(artifactsCacheKey).Result()
		if err == nil {
			var artifacts []models.Artifact
			if err := json.Unmarshal([]byte(cached), &artifacts); err == nil {
				ctx.JSON(http.StatusOK, artifacts)
				return
			}
		} else if err != redis.Nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	artifacts, err := services.SearchArtifacts(global.Db, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if search == "" && global.RedisDB != nil {
		if data, err := json.Marshal(artifacts); err == nil {
			global.RedisDB.Set(artifactsCacheKey, data, 10*time.Minute)
		}
	}

	ctx.JSON(http.StatusOK, artifacts)
}

// GetTopArtifacts returns the 6 most-liked artifacts, descending by
// liked_count. Ties land in store order.
func GetTopArtifacts(ctx *gin.Context) {
	artifacts, err := services.TopArtifacts(global.Db, 6)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, artifacts)
}

// GetArtifact responds with an empty object when the id matches nothing;
// not-found is not an error here.
func GetArtifact(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	artifact, err := services.GetArtifactByID(global.Db, uint(id))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if artifact == nil {
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}
	ctx.JSON(http.StatusOK, artifact)
}

// GetMyArtifacts is owner-scoped: the verified identity must equal the
// requested owner email exactly.
func GetMyArtifacts(ctx *gin.Context) {
	owner := ctx.Param("email")
	if ctx.GetString("email") != owner {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	artifacts, err := services.ArtifactsByOwner(global.Db, owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, artifacts)
}

// UpdateArtifact checks the caller against the ?email= query parameter, not
// against the record's author_email. A miss on the id creates the record.
// Both behaviors are inherited and kept as-is.
func UpdateArtifact(ctx *gin.Context) {
	if ctx.GetString("email") != ctx.Query("email") {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact id"})
		return
	}

	var payload models.Artifact
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modified, upserted, err := services.UpdateArtifact(global.Db, uint(id), payload)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateArtifactsCache()
	if upserted {
		ctx.JSON(http.StatusOK, gin.H{"modifiedCount": 0, "upsertedId": id})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

func invalidateArtifactsCache() {
	if global.RedisDB != nil {
		global.RedisDB.Del(artifactsCacheKey)
	}
}
