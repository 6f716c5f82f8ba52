package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "purchases"
	purchasesUserCourseIndex  = "user_id-course_id-index"
	purchasesStatusIndex      = "status-index"

	// paymentRefPrefix keys the guard items that make the external payment
	// reference unique and give a strongly consistent ref -> purchase lookup
	// (GSIs are eventually consistent, webhook completion must not be).
	paymentRefPrefix = "payref#"
)

type purchaseItem struct {
	ID        string `dynamodbav:"id"`
	CourseID  string `dynamodbav:"course_id"`
	UserID    string `dynamodbav:"user_id"`
	Amount    int64  `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type paymentRefItem struct {
	ID         string `dynamodbav:"id"`
	PurchaseID string `dynamodbav:"purchase_id"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// PurchaseDynamoRepository persists the purchase ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string); payment-ref guard items share the table under "payref#<ref>"
//   - GSI: user_id-course_id-index (PK: user_id, SK: course_id)
//   - GSI: status-index (PK: status)
//
// Status transitions go through conditional writes only: attaching the external
// reference and completing are single atomic storage operations, so concurrent
// webhook redeliveries cannot double-apply.

type PurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb *dynamodb.Client) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *PurchaseDynamoRepository) CreatePending(ctx context.Context, p entities.Purchase) (entities.Purchase, error) {
	p.Status = entities.PurchaseStatusPending
	it := toPurchaseItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Purchase{}, err
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
		return entities.Purchase{}, err
	}
	return p, nil
}

// AttachPaymentRef writes the guard item and sets payment_id on the purchase in
// one transaction. Either condition failing (reference already claimed, or the
// purchase already carries a reference) cancels the whole write.
func (r *PurchaseDynamoRepository) AttachPaymentRef(ctx context.Context, purchaseID, paymentID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	refAV, err := attributevalue.MarshalMap(paymentRefItem{
		ID:         paymentRefPrefix + paymentID,
		PurchaseID: purchaseID,
		CreatedAt:  now,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                refAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: purchaseID},
					},
					UpdateExpression:    aws.String("SET #payment_id = :pid, #updated_at = :updated_at"),
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#payment_id)"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#payment_id": "payment_id",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pid":        &types.AttributeValueMemberS{Value: paymentID},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return interfaces.ErrDuplicatePaymentRef
				}
			}
		}
		return err
	}
	return nil
}

// CompleteByPaymentRef resolves the guard item with a consistent read and then
// flips the purchase pending -> completed with a conditional update. The
// condition on status is the compare-and-swap: a concurrent redelivery loses
// the race, reads back the completed record and reports the idempotent hit.
func (r *PurchaseDynamoRepository) CompleteByPaymentRef(ctx context.Context, paymentID string, amount int64) (entities.Purchase, bool, error) {
	ref, err := r.getPaymentRef(ctx, paymentID)
	if err != nil {
		return entities.Purchase{}, false, err
	}
	if ref.PurchaseID == "" {
		return entities.Purchase{}, false, interfaces.ErrPurchaseNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ref.PurchaseID},
		},
		UpdateExpression:    aws.String("SET #status = :completed, #amount = :amount, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#amount":     "amount",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusCompleted)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusPending)},
			":amount":     &types.AttributeValueMemberN{Value: strconv.FormatInt(amount, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Purchase{}, false, err
		}
		// Not pending anymore (or gone). Read back to distinguish the
		// idempotent already-completed hit from a genuine mismatch.
		current, err := r.getByID(ctx, ref.PurchaseID)
		if err != nil {
			return entities.Purchase{}, false, err
		}
		if current.ID == "" {
			return entities.Purchase{}, false, interfaces.ErrPurchaseNotFound
		}
		if current.Status == entities.PurchaseStatusCompleted {
			return current, true, nil
		}
		return entities.Purchase{}, false, errors.New("purchase " + current.ID + " is " + string(current.Status) + ", cannot complete")
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Purchase{}, false, err
	}
	return fromPurchaseItem(it), false, nil
}

func (r *PurchaseDynamoRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Purchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesUserCourseIndex),
		KeyConditionExpression: aws.String("user_id = :uid AND course_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
			":cid": &types.AttributeValueMemberS{Value: courseID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Items) == 0 {
		return entities.Purchase{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) ListCompleted(ctx context.Context) ([]entities.Purchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesStatusIndex),
		KeyConditionExpression: aws.String("#status = :completed"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusCompleted)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Purchase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPurchaseItem(it))
	}
	return items, nil
}

func (r *PurchaseDynamoRepository) getPaymentRef(ctx context.Context, paymentID string) (paymentRefItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: paymentRefPrefix + paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return paymentRefItem{}, err
	}
	if len(out.Item) == 0 {
		return paymentRefItem{}, nil
	}

	var it paymentRefItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return paymentRefItem{}, err
	}
	return it, nil
}

func (r *PurchaseDynamoRepository) getByID(ctx context.Context, id string) (entities.Purchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Purchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.Purchase{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Purchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func toPurchaseItem(p entities.Purchase) purchaseItem {
	return purchaseItem{
		ID:        p.ID,
		CourseID:  p.CourseID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Status:    string(p.Status),
		PaymentID: p.PaymentID,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPurchaseItem(it purchaseItem) entities.Purchase {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Purchase{
		ID:        it.ID,
		CourseID:  it.CourseID,
		UserID:    it.UserID,
		Amount:    it.Amount,
		Status:    entities.PurchaseStatus(it.Status),
		PaymentID: it.PaymentID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
