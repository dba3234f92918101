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
	defaultMachinesTableName   = "machines"
	defaultOperationsTableName = "machine_operations"
	operationsMachineIDIndex   = "machine_id-index"
)

type machineItem struct {
	ID                 string  `dynamodbav:"id"`
	Name               string  `dynamodbav:"name"`
	ManagerID          string  `dynamodbav:"manager_id,omitempty"`
	ManagerName        string  `dynamodbav:"manager_name,omitempty"`
	Status             string  `dynamodbav:"status"`
	CurrentThreadColor string  `dynamodbav:"current_thread_color,omitempty"`
	CurrentProductID   string  `dynamodbav:"current_product_id,omitempty"`
	CurrentProductName string  `dynamodbav:"current_product_name,omitempty"`
	StartTime          string  `dynamodbav:"start_time,omitempty"`
	EstimatedEndTime   string  `dynamodbav:"estimated_end_time,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

type operationItem struct {
	ID               string `dynamodbav:"id"`
	MachineID        string `dynamodbav:"machine_id"`
	ProductID        string `dynamodbav:"product_id"`
	ProductName      string `dynamodbav:"product_name,omitempty"`
	ThreadColor      string `dynamodbav:"thread_color"`
	Status           string `dynamodbav:"status"`
	StartTime        string `dynamodbav:"start_time"`
	EstimatedEndTime string `dynamodbav:"estimated_end_time"`
	CompletedAt      string `dynamodbav:"completed_at,omitempty"`
}

// MachineDynamoRepository persists machines and machine operations.
//
// Table requirements:
//   - machines: PK id (string)
//   - machine_operations: PK id (string), GSI machine_id-index (PK machine_id)

type MachineDynamoRepository struct {
	ddb             *dynamodb.Client
	machinesTable   string
	operationsTable string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:             ddb,
		machinesTable:   getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
		operationsTable: getenvDefault("MACHINE_OPERATIONS_TABLE", defaultOperationsTableName),
	}
}

func (r *MachineDynamoRepository) CreateMachine(ctx context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.SewingMachine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.machinesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SewingMachine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetMachineByID(ctx context.Context, id string) (entities.SewingMachine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.machinesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SewingMachine{}, err
	}
	if len(out.Item) == 0 {
		return entities.SewingMachine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SewingMachine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) ListMachines(ctx context.Context) ([]entities.SewingMachine, error) {
	machines := make([]entities.SewingMachine, 0)
	in := &dynamodb.ScanInput{TableName: aws.String(r.machinesTable)}
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it machineItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			machines = append(machines, fromMachineItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return machines, nil
}

func (r *MachineDynamoRepository) UpdateMachine(ctx context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.SewingMachine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.machinesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SewingMachine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) CreateOperation(ctx context.Context, op entities.MachineOperation) (entities.MachineOperation, error) {
	av, err := attributevalue.MarshalMap(toOperationItem(op))
	if err != nil {
		return entities.MachineOperation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.operationsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MachineOperation{}, err
	}
	return op, nil
}

func (r *MachineDynamoRepository) GetOperationByID(ctx context.Context, id string) (entities.MachineOperation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.operationsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MachineOperation{}, err
	}
	if len(out.Item) == 0 {
		return entities.MachineOperation{}, nil
	}

	var it operationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MachineOperation{}, err
	}
	return fromOperationItem(it), nil
}

func (r *MachineDynamoRepository) UpdateOperation(ctx context.Context, op entities.MachineOperation) (entities.MachineOperation, error) {
	av, err := attributevalue.MarshalMap(toOperationItem(op))
	if err != nil {
		return entities.MachineOperation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.operationsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MachineOperation{}, err
	}
	return op, nil
}

func (r *MachineDynamoRepository) ListOperationsByMachineID(ctx context.Context, machineID string) ([]entities.MachineOperation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.operationsTable),
		IndexName:              aws.String(operationsMachineIDIndex),
		KeyConditionExpression: aws.String("machine_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: machineID},
		},
	})
	if err != nil {
		return nil, err
	}

	ops := make([]entities.MachineOperation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it operationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ops = append(ops, fromOperationItem(it))
	}
	return ops, nil
}

func toMachineItem(m entities.SewingMachine) machineItem {
	return machineItem{
		ID:                 m.ID,
		Name:               m.Name,
		ManagerID:          m.ManagerID,
		ManagerName:        m.ManagerName,
		Status:             string(m.Status),
		CurrentThreadColor: m.CurrentThreadColor,
		CurrentProductID:   m.CurrentProductID,
		CurrentProductName: m.CurrentProductName,
		StartTime:          timePtrToString(m.StartTime),
		EstimatedEndTime:   timePtrToString(m.EstimatedEndTime),
		CreatedAt:          timeToString(m.CreatedAt),
		UpdatedAt:          timeToString(m.UpdatedAt),
	}
}

func fromMachineItem(it machineItem) entities.SewingMachine {
	return entities.SewingMachine{
		ID:                 it.ID,
		Name:               it.Name,
		ManagerID:          it.ManagerID,
		ManagerName:        it.ManagerName,
		Status:             entities.MachineStatus(it.Status),
		CurrentThreadColor: it.CurrentThreadColor,
		CurrentProductID:   it.CurrentProductID,
		CurrentProductName: it.CurrentProductName,
		StartTime:          stringToTimePtr(it.StartTime),
		EstimatedEndTime:   stringToTimePtr(it.EstimatedEndTime),
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}

func toOperationItem(op entities.MachineOperation) operationItem {
	return operationItem{
		ID:               op.ID,
		MachineID:        op.MachineID,
		ProductID:        op.ProductID,
		ProductName:      op.ProductName,
		ThreadColor:      op.ThreadColor,
		Status:           string(op.Status),
		StartTime:        timeToString(op.StartTime),
		EstimatedEndTime: timeToString(op.EstimatedEndTime),
		CompletedAt:      timePtrToString(op.CompletedAt),
	}
}

func fromOperationItem(it operationItem) entities.MachineOperation {
	return entities.MachineOperation{
		ID:               it.ID,
		MachineID:        it.MachineID,
		ProductID:        it.ProductID,
		ProductName:      it.ProductName,
		ThreadColor:      it.ThreadColor,
		Status:           entities.OperationStatus(it.Status),
		StartTime:        stringToTime(it.StartTime),
		EstimatedEndTime: stringToTime(it.EstimatedEndTime),
		CompletedAt:      stringToTimePtr(it.CompletedAt),
	}
}
