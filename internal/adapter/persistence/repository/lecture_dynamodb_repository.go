package repository

import (
	"context"
	"errors"
	"log"

	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLecturesTableName = "lectures"

type lectureItem struct {
	ID            string `dynamodbav:"id"`
	CourseID      string `dynamodbav:"course_id"`
	Title         string `dynamodbav:"title"`
	VideoURL      string `dynamodbav:"video_url,omitempty"`
	IsPreviewFree bool   `dynamodbav:"is_preview_free"`
}

// LectureDynamoRepository reads lectures and flips the preview/unlock flag.
//
// Table requirements:
//   - PK: id (string)

type LectureDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILectureRepository = (*LectureDynamoRepository)(nil)

func NewLectureDynamoRepository(ddb *dynamodb.Client) *LectureDynamoRepository {
	return &LectureDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LECTURES_TABLE", defaultLecturesTableName),
	}
}

func (r *LectureDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Lecture, error) {
	lectures := make([]entities.Lecture, 0, len(ids))
	for _, id := range ids {
		out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			continue
		}

		var it lectureItem
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return nil, err
		}
		lectures = append(lectures, fromLectureItem(it))
	}
	return lectures, nil
}

// Unlock sets is_preview_free on every given lecture. The batch is not atomic;
// it tolerates partial application and converges when re-run, since setting an
// already-unlocked lecture is a no-op. Missing lectures are skipped.
func (r *LectureDynamoRepository) Unlock(ctx context.Context, ids []string) error {
	var firstErr error
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET #is_preview_free = :unlocked"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":              "id",
				"#is_preview_free": "is_preview_free",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":unlocked": &types.AttributeValueMemberBOOL{Value: true},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				log.Printf("[lecture][repository] unlock skipped missing lecture_id=%s", id)
				continue
			}
			log.Printf("[lecture][repository] unlock failed lecture_id=%s err=%v", id, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func fromLectureItem(it lectureItem) entities.Lecture {
	return entities.Lecture{
		ID:            it.ID,
		CourseID:      it.CourseID,
		Title:         it.Title,
		VideoURL:      it.VideoURL,
		IsPreviewFree: it.IsPreviewFree,
	}
}
