package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorgonzola/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const (
	// Source identifies events emitted by this service
	Source = "gorgonzola.sync"
	// DetailTypeSyncCompleted is the detail type of the sync summary event
	DetailTypeSyncCompleted = "GameDataSynced"
)

// PutEventsAPI is the EventBridge call the publisher needs
type PutEventsAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher announces completed syncs on an EventBridge bus
type Publisher struct {
	client       PutEventsAPI
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client PutEventsAPI, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// PublishSyncCompleted sends one GameDataSynced event
func (p *Publisher) PublishSyncCompleted(ctx context.Context, event ports.SyncEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sync event: %w", err)
	}

	at := time.Now().UTC()
	if parsed, err := time.Parse(time.RFC3339Nano, event.CompletedAt); err == nil {
		at = parsed
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(Source),
			DetailType:   aws.String(DetailTypeSyncCompleted),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(at),
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to publish events to EventBridge: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for _, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Failed to publish event",
					zap.String("detailType", DetailTypeSyncCompleted),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("failed to publish %d events", result.FailedEntryCount)
	}

	p.logger.Info("Published sync event",
		zap.String("runID", event.RunID),
		zap.String("eventBus", p.eventBusName),
	)
	return nil
}
