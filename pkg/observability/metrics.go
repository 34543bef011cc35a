package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// CloudWatchAPI is the subset of the CloudWatch client used for metrics
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes job metrics to CloudWatch. Lambdas are not scraped, so
// the sync and migration jobs push instead of exposing /metrics.
type Metrics struct {
	namespace string
	client    CloudWatchAPI
}

// NewMetrics creates a new metrics instance. A nil client disables publishing.
func NewMetrics(namespace string, client CloudWatchAPI) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// SyncCounts is what a finished sync run reports
type SyncCounts struct {
	Items             int
	Recipes           int
	NPCs              int
	Quests            int
	SkippedReferences int
	Duration          time.Duration
	Failed            bool
}

// RecordSync publishes the outcome of a game data sync run
func (m *Metrics) RecordSync(ctx context.Context, counts SyncCounts) error {
	if m == nil || m.client == nil {
		return nil
	}

	status := "success"
	if counts.Failed {
		status = "failure"
	}
	now := aws.Time(time.Now())
	dims := []types.Dimension{{Name: aws.String("Status"), Value: aws.String(status)}}

	count := func(name string, v int) types.MetricDatum {
		return types.MetricDatum{
			MetricName: aws.String(name),
			Dimensions: dims,
			Value:      aws.Float64(float64(v)),
			Unit:       types.StandardUnitCount,
			Timestamp:  now,
		}
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			count("SyncRuns", 1),
			count("ItemsSynced", counts.Items),
			count("RecipesSynced", counts.Recipes),
			count("NPCsSynced", counts.NPCs),
			count("QuestsSynced", counts.Quests),
			count("SkippedReferences", counts.SkippedReferences),
			{
				MetricName: aws.String("SyncDuration"),
				Dimensions: dims,
				Value:      aws.Float64(float64(counts.Duration.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  now,
			},
		},
	}

	_, err := m.client.PutMetricData(ctx, input)
	return err
}

// RecordMigration publishes the number of records a migration removed
func (m *Metrics) RecordMigration(ctx context.Context, name string, deleted int) error {
	if m == nil || m.client == nil {
		return nil
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("RecordsDeleted"),
				Dimensions: []types.Dimension{{Name: aws.String("Migration"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(deleted)),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(time.Now()),
			},
		},
	})
	return err
}
