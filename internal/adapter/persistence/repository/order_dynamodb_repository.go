package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

const defaultOrdersTableName = "orders"

type orderProductItem struct {
	Name         string   `dynamodbav:"name"`
	SKU          string   `dynamodbav:"sku"`
	Quantity     int      `dynamodbav:"quantity"`
	Price        float64  `dynamodbav:"price"`
	Color        string   `dynamodbav:"color,omitempty"`
	Size         string   `dynamodbav:"size,omitempty"`
	Positions    []string `dynamodbav:"positions,omitempty"`
	Manufactured bool     `dynamodbav:"manufactured"`
}

type orderStageItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Status      string `dynamodbav:"status"`
	StartedAt   string `dynamodbav:"started_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	CompletedBy string `dynamodbav:"completed_by,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type orderItem struct {
	ID              string             `dynamodbav:"id"`
	OrderNumber     string             `dynamodbav:"order_number"`
	CustomerName    string             `dynamodbav:"customer_name"`
	CustomerEmail   string             `dynamodbav:"customer_email"`
	CustomerPhone   string             `dynamodbav:"customer_phone,omitempty"`
	CustomerAddress string             `dynamodbav:"customer_address,omitempty"`
	Products        []orderProductItem `dynamodbav:"products"`
	Stages          []orderStageItem   `dynamodbav:"stages"`
	Status          string             `dynamodbav:"status"`
	QRCode          string             `dynamodbav:"qr_code,omitempty"`
	Total           float64            `dynamodbav:"total"`
	Complexity      string             `dynamodbav:"complexity,omitempty"`
	Synced          bool               `dynamodbav:"synced"`
	SyncedAt        string             `dynamodbav:"synced_at,omitempty"`
	ExternalID      string             `dynamodbav:"external_id,omitempty"`
	Deadline        string             `dynamodbav:"deadline,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The stage checklist and line items are embedded in the order document, so
// a single UpdateItem replaces them atomically (per-document atomicity; two
// writers to the same order are last-write-wins on the touched fields).

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}
	return r.scan(ctx, in)
}

func (r *OrderDynamoRepository) ListUnsynced(ctx context.Context) ([]entities.Order, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#synced = :synced"),
		ExpressionAttributeNames: map[string]string{
			"#synced": "synced",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":synced": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
}

func (r *OrderDynamoRepository) UpdateStages(ctx context.Context, id string, stages []entities.ProductionStage, status entities.OrderStatus) (entities.Order, error) {
	stageItems := make([]orderStageItem, 0, len(stages))
	for _, s := range stages {
		stageItems = append(stageItems, toOrderStageItem(s))
	}
	stagesAV, err := attributevalue.Marshal(stageItems)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, "SET #stages = :stages, #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":stages":     stagesAV,
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{
			"#stages":     "stages",
			"#status":     "status",
			"#updated_at": "updated_at",
		})
}

func (r *OrderDynamoRepository) SetProductManufactured(ctx context.Context, id, sku string, manufactured bool) (entities.Order, error) {
	// Products are embedded, so the flag flip is a read-modify-write of the
	// whole list. Last write wins across concurrent editors.
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, nil
	}
	for i := range o.Products {
		if o.Products[i].SKU == sku {
			o.Products[i].Manufactured = manufactured
		}
	}

	productItems := make([]orderProductItem, 0, len(o.Products))
	for _, p := range o.Products {
		productItems = append(productItems, toOrderProductItem(p))
	}
	productsAV, err := attributevalue.Marshal(productItems)
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, "SET #products = :products, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":products":   productsAV,
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
		map[string]string{
			"#products":   "products",
			"#updated_at": "updated_at",
		})
}

func (r *OrderDynamoRepository) MarkSynced(ctx context.Context, id string, externalID string) (entities.Order, error) {
	now := timeToString(time.Now())
	return r.update(ctx, id, "SET #synced = :synced, #synced_at = :synced_at, #external_id = :external_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":synced":      &types.AttributeValueMemberBOOL{Value: true},
			":synced_at":   &types.AttributeValueMemberS{Value: now},
			":external_id": &types.AttributeValueMemberS{Value: externalID},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		map[string]string{
			"#synced":      "synced",
			"#synced_at":   "synced_at",
			"#external_id": "external_id",
			"#updated_at":  "updated_at",
		})
}

func (r *OrderDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	products := make([]orderProductItem, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, toOrderProductItem(p))
	}
	stages := make([]orderStageItem, 0, len(o.Stages))
	for _, s := range o.Stages {
		stages = append(stages, toOrderStageItem(s))
	}
	return orderItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.Customer.Name,
		CustomerEmail:   o.Customer.Email,
		CustomerPhone:   o.Customer.Phone,
		CustomerAddress: o.Customer.Address,
		Products:        products,
		Stages:          stages,
		Status:          string(o.Status),
		QRCode:          o.QRCode,
		Total:           o.Total,
		Complexity:      o.Complexity,
		Synced:          o.Synced,
		SyncedAt:        timePtrToString(o.SyncedAt),
		ExternalID:      o.ExternalID,
		Deadline:        timePtrToString(o.Deadline),
		CreatedAt:       timeToString(o.CreatedAt),
		UpdatedAt:       timeToString(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	products := make([]entities.Product, 0, len(it.Products))
	for _, p := range it.Products {
		products = append(products, entities.Product{
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			Price:        p.Price,
			Color:        p.Color,
			Size:         p.Size,
			Positions:    p.Positions,
			Manufactured: p.Manufactured,
		})
	}
	stages := make([]entities.ProductionStage, 0, len(it.Stages))
	for _, s := range it.Stages {
		stages = append(stages, entities.ProductionStage{
			ID:          s.ID,
			Name:        s.Name,
			Status:      entities.StageStatus(s.Status),
			StartedAt:   stringToTimePtr(s.StartedAt),
			CompletedAt: stringToTimePtr(s.CompletedAt),
			CompletedBy: s.CompletedBy,
			Notes:       s.Notes,
		})
	}
	return entities.Order{
		ID:          it.ID,
		OrderNumber: it.OrderNumber,
		Customer: entities.Customer{
			Name:    it.CustomerName,
			Email:   it.CustomerEmail,
			Phone:   it.CustomerPhone,
			Address: it.CustomerAddress,
		},
		Products:   products,
		Stages:     stages,
		Status:     entities.OrderStatus(it.Status),
		QRCode:     it.QRCode,
		Total:      it.Total,
		Complexity: it.Complexity,
		Synced:     it.Synced,
		SyncedAt:   stringToTimePtr(it.SyncedAt),
		ExternalID: it.ExternalID,
		Deadline:   stringToTimePtr(it.Deadline),
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
}

func toOrderProductItem(p entities.Product) orderProductItem {
	return orderProductItem{
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Color:        p.Color,
		Size:         p.Size,
		Positions:    p.Positions,
		Manufactured: p.Manufactured,
	}
}

func toOrderStageItem(s entities.ProductionStage) orderStageItem {
	return orderStageItem{
		ID:          s.ID,
		Name:        s.Name,
		Status:      string(s.Status),
		StartedAt:   timePtrToString(s.StartedAt),
		CompletedAt: timePtrToString(s.CompletedAt),
		CompletedBy: s.CompletedBy,
		Notes:       s.Notes,
	}
}
