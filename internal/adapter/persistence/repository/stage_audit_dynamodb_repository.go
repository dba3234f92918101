package repository

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

const (
	defaultStageAuditTableName = "stage_audit_log"
	stageAuditOrderIDIndex     = "order_id-index"
)

type stageAuditItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	StageID     string `dynamodbav:"stage_id"`
	CompletedAt string `dynamodbav:"completed_at"`
	CompletedBy string `dynamodbav:"completed_by"`
}

// StageAuditDynamoRepository persists the append-only stage completion log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Appends are conditional on the id not existing; a failed condition means
// the record already landed (replayed completion) and is treated as success.

type StageAuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageAuditRepository = (*StageAuditDynamoRepository)(nil)

func NewStageAuditDynamoRepository(ddb *dynamodb.Client) *StageAuditDynamoRepository {
	return &StageAuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAGE_AUDIT_TABLE", defaultStageAuditTableName),
	}
}

func (r *StageAuditDynamoRepository) Append(ctx context.Context, rec entities.StageAuditRecord) error {
	av, err := attributevalue.MarshalMap(stageAuditItem{
		ID:          rec.ID,
		OrderID:     rec.OrderID,
		StageID:     rec.StageID,
		CompletedAt: timeToString(rec.CompletedAt),
		CompletedBy: rec.CompletedBy,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			log.Printf("[audit][repo] record already present id=%s", rec.ID)
			return nil
		}
		return err
	}
	return nil
}

func (r *StageAuditDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.StageAuditRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stageAuditOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.StageAuditRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stageAuditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, entities.StageAuditRecord{
			ID:          it.ID,
			OrderID:     it.OrderID,
			StageID:     it.StageID,
			CompletedAt: stringToTime(it.CompletedAt),
			CompletedBy: it.CompletedBy,
		})
	}
	return records, nil
}
