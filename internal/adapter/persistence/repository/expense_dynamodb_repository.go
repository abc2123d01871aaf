package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultExpensesTableName = "expenses"

type expenseItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"descricao"`
	Amount      string `dynamodbav:"valor"`
	DueDate     string `dynamodbav:"data_vencimento"`
	PaidAt      string `dynamodbav:"data_pagamento,omitempty"`
	Category    string `dynamodbav:"categoria"`
	Status      string `dynamodbav:"status"`
}

// ExpenseDynamoRepository persists Expense records in DynamoDB (PK: id).
type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	expenses := make([]entities.Expense, 0, len(raw))
	for _, item := range raw {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		expenses = append(expenses, fromExpenseItem(it))
	}
	return expenses, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ExpenseDynamoRepository) SumAmounts(ctx context.Context) (float64, error) {
	expenses, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	it := expenseItem{
		ID:          e.ID,
		Description: e.Description,
		Amount:      floatToString(e.Amount),
		DueDate:     e.DueDate.UTC().Format(time.RFC3339Nano),
		Category:    string(e.Category),
		Status:      string(e.Status),
	}
	if e.PaidAt != nil {
		it.PaidAt = e.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromExpenseItem(it expenseItem) entities.Expense {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	e := entities.Expense{
		ID:          it.ID,
		Description: it.Description,
		Amount:      stringToFloat(it.Amount),
		DueDate:     dueDate,
		Category:    entities.ExpenseCategory(it.Category),
		Status:      entities.ExpenseStatus(it.Status),
	}
	if it.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt)
		if err == nil {
			e.PaidAt = &paidAt
		}
	}
	return e
}
