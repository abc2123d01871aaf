package repository

import (
	"context"
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName = "work_orders"
	workOrdersVehicleIndex     = "veiculo_id-index"
	workOrdersCustomerIndex    = "cliente_id-index"
)

type partLineItem struct {
	LineID    string `dynamodbav:"item_id"`
	PartID    string `dynamodbav:"peca_id,omitempty"`
	Name      string `dynamodbav:"nome_peca"`
	Quantity  int    `dynamodbav:"quantidade"`
	UnitPrice string `dynamodbav:"valor_unitario"`
}

type serviceLineItem struct {
	LineID      string `dynamodbav:"item_id"`
	ServiceID   string `dynamodbav:"servico_id"`
	Description string `dynamodbav:"descricao_servico"`
	Quantity    int    `dynamodbav:"quantidade"`
	UnitPrice   string `dynamodbav:"valor_unitario"`
}

type workOrderItem struct {
	ID             string            `dynamodbav:"id"`
	OpenedAt       string            `dynamodbav:"data_abertura"`
	ClosedAt       string            `dynamodbav:"data_fechamento,omitempty"`
	Status         string            `dynamodbav:"status"`
	Odometer       int               `dynamodbav:"km_atual"`
	ReportedDefect string            `dynamodbav:"defeito_reclamado"`
	CustomerID     string            `dynamodbav:"cliente_id"`
	VehicleID      string            `dynamodbav:"veiculo_id"`
	MechanicID     string            `dynamodbav:"mecanico_id"`
	PartLines      []partLineItem    `dynamodbav:"pecas"`
	ServiceLines   []serviceLineItem `dynamodbav:"servicos"`
}

// WorkOrderDynamoRepository persists WorkOrder documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: veiculo_id-index (PK: veiculo_id)
//   - GSI: cliente_id-index (PK: cliente_id)
//
// Line items are embedded lists on the order document; both Save*Lines
// methods replace the whole list and return the updated document.
type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return o, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) List(ctx context.Context) ([]entities.WorkOrder, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalWorkOrders(raw)
}

func (r *WorkOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.WorkOrder, error) {
	return r.queryIndex(ctx, workOrdersVehicleIndex, "veiculo_id = :vid", map[string]types.AttributeValue{
		":vid": &types.AttributeValueMemberS{Value: vehicleID},
	})
}

func (r *WorkOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkOrder, error) {
	return r.queryIndex(ctx, workOrdersCustomerIndex, "cliente_id = :cid", map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: customerID},
	})
}

func (r *WorkOrderDynamoRepository) SetStatus(ctx context.Context, id string, status entities.OrderStatus, closedAt *time.Time) (entities.WorkOrder, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{"#status": "status"}
		if closedAt != nil {
			expr += ", #closed_at = :closed_at"
			vals[":closed_at"] = &types.AttributeValueMemberS{Value: closedAt.UTC().Format(time.RFC3339Nano)}
			names["#closed_at"] = "data_fechamento"
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) SavePartLines(ctx context.Context, id string, lines []entities.PartLine) (entities.WorkOrder, error) {
	items := make([]partLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, partLineItem{
			LineID:    l.LineID,
			PartID:    l.PartID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: floatToString(l.UnitPrice),
		})
	}
	av, err := attributevalue.MarshalList(items)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #lines = :lines",
			map[string]types.AttributeValue{":lines": &types.AttributeValueMemberL{Value: av}},
			map[string]string{"#lines": "pecas"}
	})
}

func (r *WorkOrderDynamoRepository) SaveServiceLines(ctx context.Context, id string, lines []entities.ServiceLine) (entities.WorkOrder, error) {
	items := make([]serviceLineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, serviceLineItem{
			LineID:      l.LineID,
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   floatToString(l.UnitPrice),
		})
	}
	av, err := attributevalue.MarshalList(items)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #lines = :lines",
			map[string]types.AttributeValue{":lines": &types.AttributeValueMemberL{Value: av}},
			map[string]string{"#lines": "servicos"}
	})
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.WorkOrder, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) queryIndex(ctx context.Context, index, keyCond string, values map[string]types.AttributeValue) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalWorkOrders(out.Items)
}

func unmarshalWorkOrders(raw []map[string]types.AttributeValue) ([]entities.WorkOrder, error) {
	orders := make([]entities.WorkOrder, 0, len(raw))
	for _, item := range raw {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromWorkOrderItem(it))
	}
	return orders, nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:             o.ID,
		OpenedAt:       o.OpenedAt.UTC().Format(time.RFC3339Nano),
		Status:         string(o.Status),
		Odometer:       o.Odometer,
		ReportedDefect: o.ReportedDefect,
		CustomerID:     o.CustomerID,
		VehicleID:      o.VehicleID,
		MechanicID:     o.MechanicID,
		PartLines:      []partLineItem{},
		ServiceLines:   []serviceLineItem{},
	}
	if o.ClosedAt != nil {
		it.ClosedAt = o.ClosedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, l := range o.PartLines {
		it.PartLines = append(it.PartLines, partLineItem{
			LineID:    l.LineID,
			PartID:    l.PartID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: floatToString(l.UnitPrice),
		})
	}
	for _, l := range o.ServiceLines {
		it.ServiceLines = append(it.ServiceLines, serviceLineItem{
			LineID:      l.LineID,
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   floatToString(l.UnitPrice),
		})
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	openedAt, _ := time.Parse(time.RFC3339Nano, it.OpenedAt)
	o := entities.WorkOrder{
		ID:             it.ID,
		OpenedAt:       openedAt,
		Status:         entities.OrderStatus(it.Status),
		Odometer:       it.Odometer,
		ReportedDefect: it.ReportedDefect,
		CustomerID:     it.CustomerID,
		VehicleID:      it.VehicleID,
		MechanicID:     it.MechanicID,
		PartLines:      []entities.PartLine{},
		ServiceLines:   []entities.ServiceLine{},
	}
	if it.ClosedAt != "" {
		closedAt, err := time.Parse(time.RFC3339Nano, it.ClosedAt)
		if err == nil {
			o.ClosedAt = &closedAt
		}
	}
	for _, l := range it.PartLines {
		o.PartLines = append(o.PartLines, entities.PartLine{
			LineID:    l.LineID,
			PartID:    l.PartID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: stringToFloat(l.UnitPrice),
		})
	}
	for _, l := range it.ServiceLines {
		o.ServiceLines = append(o.ServiceLines, entities.ServiceLine{
			LineID:      l.LineID,
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   stringToFloat(l.UnitPrice),
		})
	}
	return o
}
