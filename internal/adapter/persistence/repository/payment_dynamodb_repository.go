package repository

import (
	"context"
	"time"

	"servease/internal/domain/entities"
	"servease/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBookingIDIndex   = "booking_id-index"
)

type paymentItem struct {
	ID             string `dynamodbav:"id"`
	BookingID      string `dynamodbav:"booking_id"`
	CustomerID     string `dynamodbav:"customer_id"`
	Status         string `dynamodbav:"status"`
	Amount         int64  `dynamodbav:"amount"`
	CommissionFee  int64  `dynamodbav:"commission_fee"`
	PlatformFee    int64  `dynamodbav:"platform_fee"`
	TransactionFee int64  `dynamodbav:"transaction_fee"`
	Discount       int64  `dynamodbav:"discount"`
	Method         string `dynamodbav:"method,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// MarkPaid and MarkCancelled pair the payment flip with the owning booking's
// flip in one TransactWriteItems: the payment must still be pending and the
// booking must still be confirmed, otherwise the whole transaction cancels
// and the zero value is returned.

type PaymentDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	bookingsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		bookingsTable: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// MarkPaid settles the payment and activates its booking atomically.
func (r *PaymentDynamoRepository) MarkPaid(ctx context.Context, id string, method entities.PaymentMethod, bookingID string, at time.Time) (entities.Payment, error) {
	now := at.UTC().Format(time.RFC3339Nano)
	err := r.flipWithBooking(ctx, transactFlip{
		paymentID: id,
		bookingID: bookingID,
		now:       now,
		paymentTo: entities.PaymentStatusPaid,
		bookingTo: entities.BookingStatusActive,
		method:    string(method),
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, id)
}

// MarkCancelled voids the payment and cancels its booking atomically.
func (r *PaymentDynamoRepository) MarkCancelled(ctx context.Context, id, bookingID string, at time.Time) (entities.Payment, error) {
	now := at.UTC().Format(time.RFC3339Nano)
	err := r.flipWithBooking(ctx, transactFlip{
		paymentID: id,
		bookingID: bookingID,
		now:       now,
		paymentTo: entities.PaymentStatusCancelled,
		bookingTo: entities.BookingStatusCancelled,
	})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, id)
}

type transactFlip struct {
	paymentID string
	bookingID string
	now       string
	paymentTo entities.PaymentStatus
	bookingTo entities.BookingStatus
	method    string
}

func (r *PaymentDynamoRepository) flipWithBooking(ctx context.Context, f transactFlip) error {
	paymentExpr := "SET #status = :to, #updated_at = :now"
	paymentNames := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	paymentValues := map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		":to":      &types.AttributeValueMemberS{Value: string(f.paymentTo)},
		":now":     &types.AttributeValueMemberS{Value: f.now},
	}
	if f.method != "" {
		paymentExpr += ", #method = :method"
		paymentNames["#method"] = "method"
		paymentValues[":method"] = &types.AttributeValueMemberS{Value: f.method}
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: f.paymentID},
					},
					ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:          aws.String(paymentExpr),
					ExpressionAttributeNames:  paymentNames,
					ExpressionAttributeValues: paymentValues,
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.bookingsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: f.bookingID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :confirmed"),
					UpdateExpression:    aws.String("SET #status = :to, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":confirmed": &types.AttributeValueMemberS{Value: string(entities.BookingStatusConfirmed)},
						":to":        &types.AttributeValueMemberS{Value: string(f.bookingTo)},
						":now":       &types.AttributeValueMemberS{Value: f.now},
					},
				},
			},
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:             p.ID,
		BookingID:      p.BookingID,
		CustomerID:     p.CustomerID,
		Status:         string(p.Status),
		Amount:         p.Amount,
		CommissionFee:  p.CommissionFee,
		PlatformFee:    p.PlatformFee,
		TransactionFee: p.TransactionFee,
		Discount:       p.Discount,
		Method:         string(p.Method),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:             it.ID,
		BookingID:      it.BookingID,
		CustomerID:     it.CustomerID,
		Status:         entities.PaymentStatus(it.Status),
		Amount:         it.Amount,
		CommissionFee:  it.CommissionFee,
		PlatformFee:    it.PlatformFee,
		TransactionFee: it.TransactionFee,
		Discount:       it.Discount,
		Method:         entities.PaymentMethod(it.Method),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
