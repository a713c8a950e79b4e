package repository

import (
	"context"
	"errors"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReviewsTableName = "reviews"
	reviewsProviderIDIndex  = "provider_id-index"
)

type reviewItem struct {
	BookingID  string `dynamodbav:"booking_id"`
	CustomerID string `dynamodbav:"customer_id"`
	ProviderID string `dynamodbav:"provider_id"`
	Rating     int    `dynamodbav:"rating"`
	Comment    string `dynamodbav:"comment,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists Review entities in DynamoDB.
//
// Table requirements:
//   - PK: booking_id (string)
//   - GSI: provider_id-index (PK: provider_id)
//
// The booking id as PK plus a conditional put makes the one-review-per-
// booking rule a storage-level guarantee.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rev))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#booking_id)"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Review{}, nil
		}
		return entities.Review{}, err
	}
	return rev, nil
}

func (r *ReviewDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func (r *ReviewDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reviewsProviderIDIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(rev entities.Review) reviewItem {
	return reviewItem{
		BookingID:  rev.BookingID,
		CustomerID: rev.CustomerID,
		ProviderID: rev.ProviderID,
		Rating:     rev.Rating,
		Comment:    rev.Comment,
		CreatedAt:  rev.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Review{
		BookingID:  it.BookingID,
		CustomerID: it.CustomerID,
		ProviderID: it.ProviderID,
		Rating:     it.Rating,
		Comment:    it.Comment,
		CreatedAt:  createdAt,
	}
}
