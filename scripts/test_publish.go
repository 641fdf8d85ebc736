// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type AnalysisRequestedEvent struct {
	ProjectID uuid.UUID `json:"project_id"`
	Modules   []string  `json:"modules,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	projectID := flag.String("project", "", "Project UUID to recompute (required)")
	module := flag.String("module", "", "Single module to recompute (empty = all)")
	flag.Parse()

	if *projectID == "" {
		log.Fatal("Usage: go run scripts/test_publish.go -project <uuid> [-module structure]")
	}

	id, err := uuid.Parse(*projectID)
	if err != nil {
		log.Fatalf("Invalid project UUID: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := AnalysisRequestedEvent{
		ProjectID: id,
		Reason:    "manual_refresh",
	}
	if *module != "" {
		event.Modules = []string{*module}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "analysis:requested",
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: analysis:requested\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Project ID: %s\n", event.ProjectID)
	if len(event.Modules) > 0 {
		fmt.Printf("   Modules: %v\n", event.Modules)
	} else {
		fmt.Printf("   Modules: all\n")
	}
}
