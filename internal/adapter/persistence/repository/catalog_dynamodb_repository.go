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
	defaultCategoriesTableName = "categories"
	defaultProvidersTableName  = "providers"
	defaultServicesTableName   = "services"
	defaultCustomersTableName  = "customers"
	servicesProviderIDIndex    = "provider_id-index"
)

type categoryItem struct {
	ID              string `dynamodbav:"id"`
	AdminID         string `dynamodbav:"admin_id"`
	Name            string `dynamodbav:"name"`
	BasePrice       int64  `dynamodbav:"base_price"`
	MinTimeHours    int    `dynamodbav:"min_time_hours"`
	CommissionRate  int    `dynamodbav:"commission_rate"`
	BookingRate     int    `dynamodbav:"booking_rate"`
	TransactionRate int    `dynamodbav:"transaction_rate"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// CategoryDynamoRepository persists Category entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CategoryDynamoRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(toCategoryItem(c))
	if err != nil {
		return entities.Category{}, err
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
		return entities.Category{}, err
	}
	return c, nil
}

func (r *CategoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Category{}, err
	}
	if len(out.Item) == 0 {
		return entities.Category{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Category{}, err
	}
	return fromCategoryItem(it), nil
}

func (r *CategoryDynamoRepository) Update(ctx context.Context, c entities.Category) (entities.Category, error) {
	av, err := attributevalue.MarshalMap(toCategoryItem(c))
	if err != nil {
		return entities.Category{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Category{}, nil
		}
		return entities.Category{}, err
	}
	return c, nil
}

func toCategoryItem(c entities.Category) categoryItem {
	return categoryItem{
		ID:              c.ID,
		AdminID:         c.AdminID,
		Name:            c.Name,
		BasePrice:       c.BasePrice,
		MinTimeHours:    c.MinTimeHours,
		CommissionRate:  c.CommissionRate,
		BookingRate:     c.BookingRate,
		TransactionRate: c.TransactionRate,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCategoryItem(it categoryItem) entities.Category {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Category{
		ID:              it.ID,
		AdminID:         it.AdminID,
		Name:            it.Name,
		BasePrice:       it.BasePrice,
		MinTimeHours:    it.MinTimeHours,
		CommissionRate:  it.CommissionRate,
		BookingRate:     it.BookingRate,
		TransactionRate: it.TransactionRate,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

type providerItem struct {
	ID         string `dynamodbav:"id"`
	CategoryID string `dynamodbav:"category_id"`
	Name       string `dynamodbav:"name"`
	IsApproved bool   `dynamodbav:"is_approved"`
	IsBlocked  bool   `dynamodbav:"is_blocked"`
	ApprovedAt string `dynamodbav:"approved_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ProviderDynamoRepository persists Provider entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProviderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProviderRepository = (*ProviderDynamoRepository)(nil)

func NewProviderDynamoRepository(ddb *dynamodb.Client) *ProviderDynamoRepository {
	return &ProviderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDERS_TABLE", defaultProvidersTableName),
	}
}

func (r *ProviderDynamoRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	av, err := attributevalue.MarshalMap(toProviderItem(p))
	if err != nil {
		return entities.Provider{}, err
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
		return entities.Provider{}, err
	}
	return p, nil
}

func (r *ProviderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Provider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

// UpdateModeration flips the admin flags. approved_at is written only when
// the caller passes a timestamp, so the first-approval stamp survives later
// blocks and unblocks.
func (r *ProviderDynamoRepository) UpdateModeration(ctx context.Context, id string, isApproved, isBlocked bool, approvedAt *time.Time) (entities.Provider, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #is_approved = :approved, #is_blocked = :blocked, #updated_at = :now"
	names := map[string]string{
		"#id":          "id",
		"#is_approved": "is_approved",
		"#is_blocked":  "is_blocked",
		"#updated_at":  "updated_at",
	}
	values := map[string]types.AttributeValue{
		":approved": &types.AttributeValueMemberBOOL{Value: isApproved},
		":blocked":  &types.AttributeValueMemberBOOL{Value: isBlocked},
		":now":      &types.AttributeValueMemberS{Value: now},
	}
	if approvedAt != nil {
		expr += ", #approved_at = :approved_at"
		names["#approved_at"] = "approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Provider{}, nil
		}
		return entities.Provider{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Provider{}, nil
	}

	var it providerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Provider{}, err
	}
	return fromProviderItem(it), nil
}

func toProviderItem(p entities.Provider) providerItem {
	return providerItem{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		IsApproved: p.IsApproved,
		IsBlocked:  p.IsBlocked,
		ApprovedAt: formatOptionalTime(p.ApprovedAt),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProviderItem(it providerItem) entities.Provider {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Provider{
		ID:         it.ID,
		CategoryID: it.CategoryID,
		Name:       it.Name,
		IsApproved: it.IsApproved,
		IsBlocked:  it.IsBlocked,
		ApprovedAt: parseOptionalTime(it.ApprovedAt),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

type serviceItem struct {
	ID            string `dynamodbav:"id"`
	ProviderID    string `dynamodbav:"provider_id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description,omitempty"`
	Price         int64  `dynamodbav:"price"`
	DurationHours int    `dynamodbav:"duration_hours"`
	IsApproved    bool   `dynamodbav:"is_approved"`
	IsBlocked     bool   `dynamodbav:"is_blocked"`
	IsActive      bool   `dynamodbav:"is_active"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_id-index (PK: provider_id)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesProviderIDIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func (r *ServiceDynamoRepository) UpdateModeration(ctx context.Context, id string, isApproved, isBlocked, isActive bool, approvedAt *time.Time) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #is_approved = :approved, #is_blocked = :blocked, #is_active = :active, #updated_at = :now"
	names := map[string]string{
		"#id":          "id",
		"#is_approved": "is_approved",
		"#is_blocked":  "is_blocked",
		"#is_active":   "is_active",
		"#updated_at":  "updated_at",
	}
	values := map[string]types.AttributeValue{
		":approved": &types.AttributeValueMemberBOOL{Value: isApproved},
		":blocked":  &types.AttributeValueMemberBOOL{Value: isBlocked},
		":active":   &types.AttributeValueMemberBOOL{Value: isActive},
		":now":      &types.AttributeValueMemberS{Value: now},
	}
	if approvedAt != nil {
		expr += ", #approved_at = :approved_at"
		names["#approved_at"] = "approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: approvedAt.UTC().Format(time.RFC3339Nano)}
	}

	return r.update(ctx, id, expr, names, values)
}

func (r *ServiceDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Service, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.update(ctx, id,
		"SET #is_active = :active, #updated_at = :now",
		map[string]string{
			"#id":         "id",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: active},
			":now":    &types.AttributeValueMemberS{Value: now},
		})
}

func (r *ServiceDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.Service, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:            s.ID,
		ProviderID:    s.ProviderID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		DurationHours: s.DurationHours,
		IsApproved:    s.IsApproved,
		IsBlocked:     s.IsBlocked,
		IsActive:      s.IsActive,
		ApprovedAt:    formatOptionalTime(s.ApprovedAt),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Service{
		ID:            it.ID,
		ProviderID:    it.ProviderID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         it.Price,
		DurationHours: it.DurationHours,
		IsApproved:    it.IsApproved,
		IsBlocked:     it.IsBlocked,
		IsActive:      it.IsActive,
		ApprovedAt:    parseOptionalTime(it.ApprovedAt),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	IsBlocked bool   `dynamodbav:"is_blocked"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) SetBlocked(ctx context.Context, id string, blocked bool) (entities.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_blocked = :blocked, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_blocked": "is_blocked",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":blocked": &types.AttributeValueMemberBOOL{Value: blocked},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		IsBlocked: c.IsBlocked,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		IsBlocked: it.IsBlocked,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
