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

const defaultUsersTableName = "users"

type userProfileItem struct {
	UID            string   `dynamodbav:"uid"`
	Name           string   `dynamodbav:"name"`
	Email          string   `dynamodbav:"email"`
	Role           string   `dynamodbav:"role"`
	AssignedStages []string `dynamodbav:"assigned_stages,omitempty"`
}

// UserDynamoRepository resolves principal uids to workshop profiles.
//
// Table requirements:
//   - PK: uid (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return entities.UserProfile{
		UID:            it.UID,
		Name:           it.Name,
		Email:          it.Email,
		Role:           entities.UserRole(it.Role),
		AssignedStages: it.AssignedStages,
	}, nil
}
