package repository

import (
	"context"

	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userItem struct {
	ID              string   `dynamodbav:"id"`
	Email           string   `dynamodbav:"email"`
	Phone           string   `dynamodbav:"phone,omitempty"`
	EnrolledCourses []string `dynamodbav:"enrolled_courses,stringset,omitempty"`
}

// UserDynamoRepository reads buyer profiles and appends to the enrolled-course set.
//
// Table requirements:
//   - PK: id (string)
//   - enrolled_courses: string set

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

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Email: it.Email, Phone: it.Phone, EnrolledCourses: it.EnrolledCourses}, nil
}

// AddEnrolledCourse is an idempotent set-add (DynamoDB ADD on a string set).
func (r *UserDynamoRepository) AddEnrolledCourse(ctx context.Context, userID, courseID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("ADD #enrolled_courses :member"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#enrolled_courses": "enrolled_courses",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":member": &types.AttributeValueMemberSS{Value: []string{courseID}},
		},
	})
	return err
}
