package main

import (
	"context"
	"log"

	"gorgonzola/application/services"
	"gorgonzola/infrastructure/config"
	"gorgonzola/infrastructure/di"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

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

// Handler runs one sync per scheduled event
func Handler(ctx context.Context, event events.CloudWatchEvent) (*services.SyncResult, error) {
	container.Logger.Info("Scheduled sync triggered",
		zap.String("event_id", event.ID),
		zap.String("source", event.Source),
		zap.Time("time", event.Time),
	)

	var result *services.SyncResult
	err := container.Tracer.TraceFunction(ctx, "sync", func(ctx context.Context) error {
		var err error
		result, err = container.SyncService.Run(ctx)
		if result != nil {
			container.Tracer.AddAnnotation(ctx, "run_id", result.RunID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func main() {
	defer container.Shutdown()
	lambda.Start(Handler)
}
