package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMechanicsTableName = "mechanics"

type mechanicItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"nome"`
	Specialty string `dynamodbav:"especialidade"`
}

// MechanicDynamoRepository persists Mechanic entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	av, err := attributevalue.MarshalMap(mechanicItem{ID: m.ID, Name: m.Name, Specialty: m.Specialty})
	if err != nil {
		return entities.Mechanic{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	return m, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return entities.Mechanic{ID: it.ID, Name: it.Name, Specialty: it.Specialty}, nil
}

func (r *MechanicDynamoRepository) List(ctx context.Context) ([]entities.Mechanic, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	mechanics := make([]entities.Mechanic, 0, len(raw))
	for _, item := range raw {
		var it mechanicItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		mechanics = append(mechanics, entities.Mechanic{ID: it.ID, Name: it.Name, Specialty: it.Specialty})
	}
	return mechanics, nil
}
