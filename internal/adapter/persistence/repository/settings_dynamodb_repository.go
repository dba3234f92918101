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
	defaultSettingsTableName = "settings"
	stageCatalogRecordID     = "production_stages"
)

type stageDefinitionItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Order int    `dynamodbav:"order"`
}

type settingsItem struct {
	ID     string                `dynamodbav:"id"`
	Stages []stageDefinitionItem `dynamodbav:"stages"`
}

// SettingsDynamoRepository holds the single configuration record with the
// ordered production-stage catalog.
//
// Table requirements:
//   - PK: id (string); the catalog lives under id "production_stages".

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetStageCatalog(ctx context.Context) ([]entities.StageDefinition, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: stageCatalogRecordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.StageDefinition{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	catalog := make([]entities.StageDefinition, 0, len(it.Stages))
	for _, s := range it.Stages {
		catalog = append(catalog, entities.StageDefinition{ID: s.ID, Name: s.Name, Order: s.Order})
	}
	return catalog, nil
}

func (r *SettingsDynamoRepository) PutStageCatalog(ctx context.Context, catalog []entities.StageDefinition) error {
	stages := make([]stageDefinitionItem, 0, len(catalog))
	for _, s := range catalog {
		stages = append(stages, stageDefinitionItem{ID: s.ID, Name: s.Name, Order: s.Order})
	}
	av, err := attributevalue.MarshalMap(settingsItem{ID: stageCatalogRecordID, Stages: stages})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
