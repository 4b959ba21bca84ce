package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"historicgems/config"
	"historicgems/global"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LikeEvent is the audit record published for every like/unlike transition.
type LikeEvent struct {
	ArtifactID uint      `json:"artifact_id"`
	LikedBy    string    `json:"liked_by"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}

// PublishLikeEvent sends the event to the like queue. Best-effort: a missing
// channel or a publish failure never fails the request that triggered it.
func PublishLikeEvent(event LikeEvent) {
	if global.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Println("failed to encode like event:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = global.RabbitChannel.PublishWithContext(ctx,
		"", config.AppConfig.RabbitMQ.Queue, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
	if err != nil {
		log.Println("failed to publish like event:", err)
	}
}
