package repository

import (
	"context"
	"encoding/json"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsWorkOrderIDIndex = "os_id-index"
	paymentsWorkOrderKeyCond = "ordem_servico_id = :oid"
)

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	WorkOrderID string `dynamodbav:"ordem_servico_id"`
	PaidAt      string `dynamodbav:"data_pagamento"`
	Amount      string `dynamodbav:"valor"`
	Method      string `dynamodbav:"forma_pagamento"`
	Installment int    `dynamodbav:"parcela"`
	Note        string `dynamodbav:"observacao,omitempty"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: os_id-index (PK: ordem_servico_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsWorkOrderIDIndex),
		KeyConditionExpression: aws.String(paymentsWorkOrderKeyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) SumAmounts(ctx context.Context) (float64, error) {
	payments, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		PaidAt:             p.PaidAt.UTC().Format(time.RFC3339Nano),
		Amount:             floatToString(p.Amount),
		Method:             p.Method,
		Installment:        p.Installment,
		Note:               p.Note,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	p := entities.Payment{
		ID:                it.ID,
		WorkOrderID:       it.WorkOrderID,
		PaidAt:            paidAt,
		Amount:            stringToFloat(it.Amount),
		Method:            it.Method,
		Installment:       it.Installment,
		Note:              it.Note,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
