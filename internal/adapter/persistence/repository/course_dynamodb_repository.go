package repository

import (
	"context"
	"time"

	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCoursesTableName = "courses"

type courseItem struct {
	ID               string   `dynamodbav:"id"`
	Title            string   `dynamodbav:"title"`
	Price            int64    `dynamodbav:"price"`
	Currency         string   `dynamodbav:"currency,omitempty"`
	CreatorID        string   `dynamodbav:"creator_id,omitempty"`
	Lectures         []string `dynamodbav:"lectures,omitempty"`
	EnrolledStudents []string `dynamodbav:"enrolled_students,stringset,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// CourseDynamoRepository reads courses and appends to the enrolled-student set.
//
// Table requirements:
//   - PK: id (string)
//   - enrolled_students: string set

type CourseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICourseRepository = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb *dynamodb.Client) *CourseDynamoRepository {
	return &CourseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COURSES_TABLE", defaultCoursesTableName),
	}
}

func (r *CourseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Course{}, err
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, err
	}
	return fromCourseItem(it), nil
}

// AddEnrolledStudent relies on DynamoDB ADD set semantics: adding a member that
// is already present leaves the set unchanged, so redeliveries converge.
func (r *CourseDynamoRepository) AddEnrolledStudent(ctx context.Context, courseID, userID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: courseID},
		},
		UpdateExpression:    aws.String("ADD #enrolled_students :member"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#enrolled_students": "enrolled_students",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":member": &types.AttributeValueMemberSS{Value: []string{userID}},
		},
	})
	return err
}

func fromCourseItem(it courseItem) entities.Course {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Course{
		ID:               it.ID,
		Title:            it.Title,
		Price:            it.Price,
		Currency:         it.Currency,
		CreatorID:        it.CreatorID,
		LectureIDs:       it.Lectures,
		EnrolledStudents: it.EnrolledStudents,
		CreatedAt:        createdAt,
	}
}
