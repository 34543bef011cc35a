package eventbridge

import (
	"context"
	"encoding/json"
	"testing"

	"gorgonzola/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEventBridge struct {
	mock.Mock
}

func (m *mockEventBridge) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*eventbridge.PutEventsOutput)
	return out, args.Error(1)
}

func TestPublishSyncCompleted(t *testing.T) {
	client := &mockEventBridge{}
	client.On("PutEvents", mock.Anything, mock.MatchedBy(func(in *eventbridge.PutEventsInput) bool {
		if len(in.Entries) != 1 {
			return false
		}
		e := in.Entries[0]
		var detail ports.SyncEvent
		if err := json.Unmarshal([]byte(aws.ToString(e.Detail)), &detail); err != nil {
			return false
		}
		return aws.ToString(e.EventBusName) == "gorgon-bus" &&
			aws.ToString(e.DetailType) == "GameDataSynced" &&
			aws.ToString(e.Source) == Source &&
			detail.RunID == "run-1" && detail.Items == 3
	})).Return(&eventbridge.PutEventsOutput{}, nil)

	pub := NewPublisher(client, "gorgon-bus", zap.NewNop())
	err := pub.PublishSyncCompleted(context.Background(), ports.SyncEvent{
		RunID:       "run-1",
		Items:       3,
		CompletedAt: "2024-05-01T06:00:00Z",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestPublishSyncCompleted_FailedEntry(t *testing.T) {
	client := &mockEventBridge{}
	client.On("PutEvents", mock.Anything, mock.Anything).Return(&eventbridge.PutEventsOutput{
		FailedEntryCount: 1,
		Entries:          []types.PutEventsResultEntry{{ErrorCode: aws.String("InternalFailure")}},
	}, nil)

	pub := NewPublisher(client, "gorgon-bus", zap.NewNop())
	err := pub.PublishSyncCompleted(context.Background(), ports.SyncEvent{RunID: "run-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish 1 events")
}
