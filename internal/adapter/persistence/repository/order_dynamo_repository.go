package repository

import (
	"context"
	"sort"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	defaultOrdersTableName = "pedidos"
	ordersStoreIndex       = "id_loja-index"
	ordersCourierIndex     = "aceito_por_uid-index"
)

type orderItem struct {
	ID        string `dynamodbav:"id"`
	IDWoo     int64  `dynamodbav:"id_woo"`
	IDLoja    string `dynamodbav:"id_loja"`
	IDLojaWoo string `dynamodbav:"id_loja_woo,omitempty"`

	LojaNome     string `dynamodbav:"loja_nome,omitempty"`
	LojaTelefone string `dynamodbav:"loja_telefone,omitempty"`
	LojaEndereco string `dynamodbav:"loja_endereco,omitempty"`

	NomeCliente      string  `dynamodbav:"nome_cliente"`
	EmailCliente     string  `dynamodbav:"email_cliente,omitempty"`
	TelefoneCliente  string  `dynamodbav:"telefone_cliente,omitempty"`
	EnderecoEntrega  string  `dynamodbav:"endereco_entrega,omitempty"`
	Produto          string  `dynamodbav:"produto,omitempty"`
	FormaPagamento   string  `dynamodbav:"forma_pagamento,omitempty"`
	Total            float64 `dynamodbav:"total"`
	ObservacaoPedido string  `dynamodbav:"observacao_pedido,omitempty"`

	StatusTransporte string `dynamodbav:"status_transporte"`
	UltimoStatus     string `dynamodbav:"ultimo_status,omitempty"`

	AceitoPorUID      string `dynamodbav:"aceito_por_uid,omitempty"`
	AceitoPorNome     string `dynamodbav:"aceito_por_nome,omitempty"`
	AceitoPorEmail    string `dynamodbav:"aceito_por_email,omitempty"`
	AceitoPorTelefone string `dynamodbav:"aceito_por_telefone,omitempty"`

	StatusPagamento   bool    `dynamodbav:"status_pagamento"`
	DataPagamento     string  `dynamodbav:"data_pagamento,omitempty"`
	FreteOferecido    float64 `dynamodbav:"frete_oferecido,omitempty"`
	FretePago         float64 `dynamodbav:"frete_pago,omitempty"`
	FreteJaProcessado bool    `dynamodbav:"frete_ja_processado"`

	Data string `dynamodbav:"data"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: id_loja-index (PK: id_loja)
//   - GSI: aceito_por_uid-index (PK: aceito_por_uid)
//
// Every state transition is a single conditional UpdateItem; a failed
// condition comes back as a zero-value Order, never as an error. That is
// the whole concurrency story of the service: when two couriers race for
// one pending order, DynamoDB evaluates the condition atomically against
// the current row and exactly one update matches.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Insert(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshaling order item")
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
		return entities.Order{}, errors.Wrap(err, "inserting order")
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "getting order")
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshaling order item")
	}
	return fromOrderItem(it), nil
}

// AcceptPending is the optimistic accept. The condition admits both pending
// statuses (aguardando and revertido re-opened orders); the loser of a race
// gets a ConditionalCheckFailed, surfaced as a zero Order.
func (r *OrderDynamoRepository) AcceptPending(ctx context.Context, id string, by entities.Acceptance) (entities.Order, error) {
	return r.update(ctx, id,
		"#st IN (:aguardando, :revertido)",
		"SET #ultimo = #st, #st = :aceito, #uid = :uid, #nome = :nome, #email = :email, #tel = :tel",
		map[string]types.AttributeValue{
			":aguardando": &types.AttributeValueMemberS{Value: string(entities.TransportStatusAguardando)},
			":revertido":  &types.AttributeValueMemberS{Value: string(entities.TransportStatusRevertido)},
			":aceito":     &types.AttributeValueMemberS{Value: string(entities.TransportStatusAceito)},
			":uid":        &types.AttributeValueMemberS{Value: by.UID},
			":nome":       &types.AttributeValueMemberS{Value: by.Nome},
			":email":      &types.AttributeValueMemberS{Value: by.Email},
			":tel":        &types.AttributeValueMemberS{Value: by.Telefone},
		},
		map[string]string{
			"#st":     "status_transporte",
			"#ultimo": "ultimo_status",
			"#uid":    "aceito_por_uid",
			"#nome":   "aceito_por_nome",
			"#email":  "aceito_por_email",
			"#tel":    "aceito_por_telefone",
		},
	)
}

func (r *OrderDynamoRepository) MarkDelivered(ctx context.Context, id string, courierUID string) (entities.Order, error) {
	cond := "#st = :aceito"
	values := map[string]types.AttributeValue{
		":aceito":   &types.AttributeValueMemberS{Value: string(entities.TransportStatusAceito)},
		":entregue": &types.AttributeValueMemberS{Value: string(entities.TransportStatusEntregue)},
	}
	names := map[string]string{
		"#st":     "status_transporte",
		"#ultimo": "ultimo_status",
	}
	if courierUID != "" {
		cond += " AND #uid = :uid"
		names["#uid"] = "aceito_por_uid"
		values[":uid"] = &types.AttributeValueMemberS{Value: courierUID}
	}
	return r.update(ctx, id, cond,
		"SET #ultimo = #st, #st = :entregue",
		values, names,
	)
}

func (r *OrderDynamoRepository) Revert(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id,
		"#st IN (:aceito, :entregue)",
		"SET #ultimo = #st, #st = :revertido REMOVE #uid, #nome, #email, #tel",
		map[string]types.AttributeValue{
			":aceito":    &types.AttributeValueMemberS{Value: string(entities.TransportStatusAceito)},
			":entregue":  &types.AttributeValueMemberS{Value: string(entities.TransportStatusEntregue)},
			":revertido": &types.AttributeValueMemberS{Value: string(entities.TransportStatusRevertido)},
		},
		map[string]string{
			"#st":     "status_transporte",
			"#ultimo": "ultimo_status",
			"#uid":    "aceito_por_uid",
			"#nome":   "aceito_por_nome",
			"#email":  "aceito_por_email",
			"#tel":    "aceito_por_telefone",
		},
	)
}

// UpdateFreight edits the payout while it is still unlocked. The same lock
// rule the reconciliation view enforces is repeated here as a condition, so
// a stale client cannot overwrite a processed payout.
func (r *OrderDynamoRepository) UpdateFreight(ctx context.Context, id string, value float64) (entities.Order, error) {
	return r.update(ctx, id,
		"(attribute_not_exists(#proc) OR #proc = :false) AND attribute_not_exists(#dp)",
		"SET #fp = :fp",
		map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":fp":    &types.AttributeValueMemberN{Value: floatToString(value)},
		},
		map[string]string{
			"#proc": "frete_ja_processado",
			"#dp":   "data_pagamento",
			"#fp":   "frete_pago",
		},
	)
}

func (r *OrderDynamoRepository) CommitPayment(ctx context.Context, id string, paymentDate time.Time, freight float64) (entities.Order, error) {
	return r.update(ctx, id,
		"attribute_not_exists(#proc) OR #proc = :false",
		"SET #sp = :sp, #dp = :dp, #fp = :fp, #proc = :true",
		map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":sp":    &types.AttributeValueMemberBOOL{Value: freight > 0},
			":dp":    &types.AttributeValueMemberS{Value: paymentDate.UTC().Format(time.RFC3339Nano)},
			":fp":    &types.AttributeValueMemberN{Value: floatToString(freight)},
		},
		map[string]string{
			"#proc": "frete_ja_processado",
			"#sp":   "status_pagamento",
			"#dp":   "data_pagamento",
			"#fp":   "frete_pago",
		},
	)
}

func (r *OrderDynamoRepository) List(ctx context.Context, f interfaces.OrderListFilter) ([]entities.Order, bool, error) {
	all := make([]entities.Order, 0)
	for _, storeID := range f.StoreIDs {
		items, err := r.queryStore(ctx, storeID, f)
		if err != nil {
			return nil, false, err
		}
		all = append(all, items...)
	}
	return paginate(all, f.Page, f.PageSize)
}

func (r *OrderDynamoRepository) ListDeliveredByCourier(ctx context.Context, courierUID string, page, pageSize int) ([]entities.Order, bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCourierIndex),
		KeyConditionExpression: aws.String("aceito_por_uid = :uid"),
		FilterExpression:       aws.String("#st = :entregue"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status_transporte",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":      &types.AttributeValueMemberS{Value: courierUID},
			":entregue": &types.AttributeValueMemberS{Value: string(entities.TransportStatusEntregue)},
		},
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "querying delivered orders by courier")
	}
	items, err := unmarshalOrders(out.Items)
	if err != nil {
		return nil, false, err
	}
	return paginate(items, page, pageSize)
}

func (r *OrderDynamoRepository) queryStore(ctx context.Context, storeID string, f interfaces.OrderListFilter) ([]entities.Order, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStoreIndex),
		KeyConditionExpression: aws.String("id_loja = :loja"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":loja": &types.AttributeValueMemberS{Value: storeID},
		},
	}

	filterExpr := ""
	names := map[string]string{}
	if len(f.Statuses) > 0 {
		names["#st"] = "status_transporte"
		filterExpr = "#st IN ("
		for i, st := range f.Statuses {
			key := ":st" + string(rune('a'+i))
			if i > 0 {
				filterExpr += ", "
			}
			filterExpr += key
			input.ExpressionAttributeValues[key] = &types.AttributeValueMemberS{Value: string(st)}
		}
		filterExpr += ")"
	}
	if f.StatusPagamento != nil {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		names["#sp"] = "status_pagamento"
		filterExpr += "#sp = :sp"
		input.ExpressionAttributeValues[":sp"] = &types.AttributeValueMemberBOOL{Value: *f.StatusPagamento}
	}
	if f.FreteJaProcessado != nil {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		names["#proc"] = "frete_ja_processado"
		filterExpr += "#proc = :proc"
		input.ExpressionAttributeValues[":proc"] = &types.AttributeValueMemberBOOL{Value: *f.FreteJaProcessado}
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "querying orders for store %s", storeID)
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	conditionExpr string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND (" + conditionExpr + ")"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, errors.Wrap(err, "updating order")
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshaling updated order")
	}
	return fromOrderItem(it), nil
}

func unmarshalOrders(raw []map[string]types.AttributeValue) ([]entities.Order, error) {
	items := make([]entities.Order, 0, len(raw))
	for _, m := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshaling order item")
		}
		items = append(items, fromOrderItem(it))
	}
	return items, nil
}

// paginate sorts newest-first and slices the requested 1-based page.
// hasMore is derived from whether anything remains past the page, so
// callers can keep a "load more" flag without a count query.
func paginate(items []entities.Order, page, pageSize int) ([]entities.Order, bool, error) {
	sort.Slice(items, func(i, j int) bool { return items[i].Data.After(items[j].Data) })

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []entities.Order{}, false, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		IDWoo:             o.IDWoo,
		IDLoja:            o.IDLoja,
		IDLojaWoo:         o.IDLojaWoo,
		LojaNome:          o.LojaNome,
		LojaTelefone:      o.LojaTelefone,
		LojaEndereco:      o.LojaEndereco,
		NomeCliente:       o.NomeCliente,
		EmailCliente:      o.EmailCliente,
		TelefoneCliente:   o.TelefoneCliente,
		EnderecoEntrega:   o.EnderecoEntrega,
		Produto:           o.Produto,
		FormaPagamento:    o.FormaPagamento,
		Total:             o.Total,
		ObservacaoPedido:  o.ObservacaoPedido,
		StatusTransporte:  string(o.StatusTransporte),
		UltimoStatus:      string(o.UltimoStatus),
		StatusPagamento:   o.StatusPagamento,
		FreteOferecido:    o.FreteOferecido,
		FretePago:         o.FretePago,
		FreteJaProcessado: o.FreteJaProcessado,
		Data:              o.Data.UTC().Format(time.RFC3339Nano),
	}
	if o.AceitoPor != nil {
		it.AceitoPorUID = o.AceitoPor.UID
		it.AceitoPorNome = o.AceitoPor.Nome
		it.AceitoPorEmail = o.AceitoPor.Email
		it.AceitoPorTelefone = o.AceitoPor.Telefone
	}
	if o.DataPagamento != nil {
		it.DataPagamento = o.DataPagamento.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	data, _ := time.Parse(time.RFC3339Nano, it.Data)
	o := entities.Order{
		ID:                it.ID,
		IDWoo:             it.IDWoo,
		IDLoja:            it.IDLoja,
		IDLojaWoo:         it.IDLojaWoo,
		LojaNome:          it.LojaNome,
		LojaTelefone:      it.LojaTelefone,
		LojaEndereco:      it.LojaEndereco,
		NomeCliente:       it.NomeCliente,
		EmailCliente:      it.EmailCliente,
		TelefoneCliente:   it.TelefoneCliente,
		EnderecoEntrega:   it.EnderecoEntrega,
		Produto:           it.Produto,
		FormaPagamento:    it.FormaPagamento,
		Total:             it.Total,
		ObservacaoPedido:  it.ObservacaoPedido,
		StatusTransporte:  entities.TransportStatus(it.StatusTransporte),
		UltimoStatus:      entities.TransportStatus(it.UltimoStatus),
		StatusPagamento:   it.StatusPagamento,
		FreteOferecido:    it.FreteOferecido,
		FretePago:         it.FretePago,
		FreteJaProcessado: it.FreteJaProcessado,
		Data:              data,
	}
	if it.AceitoPorUID != "" {
		o.AceitoPor = &entities.Acceptance{
			UID:      it.AceitoPorUID,
			Nome:     it.AceitoPorNome,
			Email:    it.AceitoPorEmail,
			Telefone: it.AceitoPorTelefone,
		}
	}
	if it.DataPagamento != "" {
		if dp, err := time.Parse(time.RFC3339Nano, it.DataPagamento); err == nil {
			o.DataPagamento = &dp
		}
	}
	return o
}
