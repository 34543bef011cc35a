package main

import (
	"context"
	"log"

	"gorgonzola/infrastructure/config"
	"gorgonzola/infrastructure/di"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

// Event selects the migration to run
type Event struct {
	Migration string `json:"migration"`
}

// Response reports what the migration did
type Response struct {
	Message string `json:"message"`
}

var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler runs the named migration
func Handler(ctx context.Context, event Event) (Response, error) {
	container.Logger.Info("Migration requested", zap.String("migration", event.Migration))

	message, err := container.MigrationService.Run(ctx, event.Migration)
	if err != nil {
		return Response{}, err
	}
	return Response{Message: message}, nil
}

func main() {
	defer container.Shutdown()
	lambda.Start(Handler)
}
