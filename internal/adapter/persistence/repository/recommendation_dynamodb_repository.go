package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

const (
	defaultRecommendationsTableName = "machine_recommendations"
	recommendationsThreadColorIndex = "thread_color-index"
)

type recommendationItem struct {
	ID            string  `dynamodbav:"id"`
	MachineID     string  `dynamodbav:"machine_id"`
	ProductID     string  `dynamodbav:"product_id"`
	Priority      int     `dynamodbav:"priority"`
	Reason        string  `dynamodbav:"reason,omitempty"`
	EstimatedTime float64 `dynamodbav:"estimated_time,omitempty"`
	ThreadColor   string  `dynamodbav:"thread_color"`
}

// RecommendationDynamoRepository reads the precomputed suggestion set.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: thread_color-index (PK: thread_color)
//
// The table is written by the external planning process; this service only
// queries it by thread color.

type RecommendationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecommendationRepository = (*RecommendationDynamoRepository)(nil)

func NewRecommendationDynamoRepository(ddb *dynamodb.Client) *RecommendationDynamoRepository {
	return &RecommendationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECOMMENDATIONS_TABLE", defaultRecommendationsTableName),
	}
}

func (r *RecommendationDynamoRepository) ListByThreadColor(ctx context.Context, threadColor string) ([]entities.MachineRecommendation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recommendationsThreadColorIndex),
		KeyConditionExpression: aws.String("thread_color = :tc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tc": &types.AttributeValueMemberS{Value: threadColor},
		},
	})
	if err != nil {
		return nil, err
	}

	recs := make([]entities.MachineRecommendation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it recommendationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		recs = append(recs, entities.MachineRecommendation{
			ID:            it.ID,
			MachineID:     it.MachineID,
			ProductID:     it.ProductID,
			Priority:      it.Priority,
			Reason:        it.Reason,
			EstimatedTime: it.EstimatedTime,
			ThreadColor:   it.ThreadColor,
		})
	}
	return recs, nil
}
