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
	defaultBookingsTableName = "bookings"
)

type bookingItem struct {
	ID              string `dynamodbav:"id"`
	CustomerID      string `dynamodbav:"customer_id"`
	ServiceID       string `dynamodbav:"service_id"`
	ProviderID      string `dynamodbav:"provider_id"`
	Status          string `dynamodbav:"status"`
	IsClosed        bool   `dynamodbav:"is_closed"`
	BookDate        string `dynamodbav:"book_date"`
	FulfillmentDate string `dynamodbav:"fulfillment_date"`
	ConfirmDate     string `dynamodbav:"confirm_date,omitempty"`
	CompleteDate    string `dynamodbav:"complete_date,omitempty"`
	ClosedDate      string `dynamodbav:"closed_date,omitempty"`
	Remark          string `dynamodbav:"remark,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status transitions are conditional writes keyed on the current status, so
// two racing transitions serialize on the item: exactly one wins, the other
// gets the zero value back. ConfirmWithPayment pairs the status flip with the
// payment insert in a single TransactWriteItems, which is what guarantees at
// most one payment per booking.

type BookingDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	paymentsTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		paymentsTable: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// ConfirmWithPayment flips a pending booking to confirmed and inserts its
// payment in one transaction. Either both writes land or neither does; a
// booking that already left pending returns the zero value.
func (r *BookingDynamoRepository) ConfirmWithPayment(ctx context.Context, bookingID string, confirmedAt time.Time, p entities.Payment) (entities.Booking, error) {
	paymentAV, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Booking{}, err
	}

	now := confirmedAt.UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: bookingID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :confirmed, #confirm_date = :now, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#id":           "id",
						"#status":       "status",
						"#confirm_date": "confirm_date",
						"#updated_at":   "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":   &types.AttributeValueMemberS{Value: string(entities.BookingStatusPending)},
						":confirmed": &types.AttributeValueMemberS{Value: string(entities.BookingStatusConfirmed)},
						":now":       &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.paymentsTable),
					Item:                paymentAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}

	return r.GetByID(ctx, bookingID)
}

func (r *BookingDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.BookingStatus, at time.Time) (entities.Booking, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	// Lifecycle milestones carry their own timestamp attribute.
	switch to {
	case entities.BookingStatusConfirmed:
		expr += ", #confirm_date = :now"
		names["#confirm_date"] = "confirm_date"
	case entities.BookingStatusCompleted:
		expr += ", #complete_date = :now"
		names["#complete_date"] = "complete_date"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// Close flips a completed booking to the terminal closed state and raises the
// is_closed flag the report scans filter on.
func (r *BookingDynamoRepository) Close(ctx context.Context, id string, at time.Time) (entities.Booking, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :completed"),
		UpdateExpression:    aws.String("SET #status = :closed, #is_closed = :true, #closed_date = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#is_closed":   "is_closed",
			"#closed_date": "closed_date",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.BookingStatusCompleted)},
			":closed":    &types.AttributeValueMemberS{Value: string(entities.BookingStatusClosed)},
			":true":      &types.AttributeValueMemberBOOL{Value: true},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// ListClosed pages through closed bookings, optionally scoped to a provider.
// afterID is the id of the last booking from the previous page; an empty
// result means the sequence is exhausted.
func (r *BookingDynamoRepository) ListClosed(ctx context.Context, providerID, afterID string, limit int32) ([]entities.Booking, error) {
	filter := "#is_closed = :true"
	names := map[string]string{"#is_closed": "is_closed"}
	values := map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
	}
	if providerID != "" {
		filter += " AND #provider_id = :pid"
		names["#provider_id"] = "provider_id"
		values[":pid"] = &types.AttributeValueMemberS{Value: providerID}
	}

	var startKey map[string]types.AttributeValue
	if afterID != "" {
		startKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: afterID},
		}
	}

	items := make([]entities.Booking, 0, limit)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
			Limit:                     aws.Int32(limit),
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBookingItem(it))
		}

		// The filter can leave a scan page empty even though more data
		// exists; keep scanning until something matched or the table ends.
		if int32(len(items)) >= limit || out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		ProviderID:      b.ProviderID,
		Status:          string(b.Status),
		IsClosed:        b.IsClosed,
		BookDate:        b.BookDate.UTC().Format(time.RFC3339Nano),
		FulfillmentDate: b.FulfillmentDate.UTC().Format(time.RFC3339Nano),
		ConfirmDate:     formatOptionalTime(b.ConfirmDate),
		CompleteDate:    formatOptionalTime(b.CompleteDate),
		ClosedDate:      formatOptionalTime(b.ClosedDate),
		Remark:          b.Remark,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	bookDate, _ := time.Parse(time.RFC3339Nano, it.BookDate)
	fulfillmentDate, _ := time.Parse(time.RFC3339Nano, it.FulfillmentDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		ServiceID:       it.ServiceID,
		ProviderID:      it.ProviderID,
		Status:          entities.BookingStatus(it.Status),
		IsClosed:        it.IsClosed,
		BookDate:        bookDate,
		FulfillmentDate: fulfillmentDate,
		ConfirmDate:     parseOptionalTime(it.ConfirmDate),
		CompleteDate:    parseOptionalTime(it.CompleteDate),
		ClosedDate:      parseOptionalTime(it.ClosedDate),
		Remark:          it.Remark,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
