package repository

import (
	"context"
	"errors"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPartsTableName = "parts"
	partsCodeIndex        = "codigo-index"
)

type partItem struct {
	ID        string `dynamodbav:"id"`
	Code      string `dynamodbav:"codigo"`
	Name      string `dynamodbav:"nome"`
	SalePrice string `dynamodbav:"valor_venda"`
	StockQty  int    `dynamodbav:"estoque_atual"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: codigo-index (PK: codigo)
//
// estoque_atual is a number attribute so AdjustStock can use an atomic ADD
// with a lower-bound condition.
type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Part, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(partsCodeIndex),
		KeyConditionExpression: aws.String("codigo = :codigo"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":codigo": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Items) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	parts := make([]entities.Part, 0, len(raw))
	for _, item := range raw {
		var it partItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		parts = append(parts, fromPartItem(it))
	}
	return parts, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// AdjustStock atomically applies delta to estoque_atual. Negative deltas
// carry a lower-bound condition so the quantity can never drop below zero; a
// failed condition (missing part or insufficient stock) is reported as a
// zero-value Part.
func (r *PartDynamoRepository) AdjustStock(ctx context.Context, id string, delta int) (entities.Part, error) {
	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":delta": &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
	}
	if delta < 0 {
		condition += " AND #stock >= :need"
		values[":need"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("ADD #stock :delta"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#stock": "estoque_atual",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		SalePrice: floatToString(p.SalePrice),
		StockQty:  p.StockQty,
	}
}

func fromPartItem(it partItem) entities.Part {
	return entities.Part{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		SalePrice: stringToFloat(it.SalePrice),
		StockQty:  it.StockQty,
	}
}
