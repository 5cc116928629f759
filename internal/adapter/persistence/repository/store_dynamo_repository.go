package repository

import (
	"context"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const defaultStoresTableName = "lojas"

type storeItem struct {
	IDLoja           string `dynamodbav:"id_loja"`
	LojaNome         string `dynamodbav:"loja_nome"`
	LojaEndereco     string `dynamodbav:"loja_endereco,omitempty"`
	LojaTelefone     string `dynamodbav:"loja_telefone,omitempty"`
	CNPJ             string `dynamodbav:"cnpj,omitempty"`
	PerimetroEntrega string `dynamodbav:"perimetro_entrega,omitempty"`
	LojaLogo         string `dynamodbav:"loja_logo,omitempty"`
	Ativa            bool   `dynamodbav:"ativa"`
}

// StoreDynamoRepository persists Store entities in DynamoDB.
//
// Table requirements:
//   - PK: id_loja (string)
//
// The table stays small (one row per physical storefront), so List is a
// plain Scan.

type StoreDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORES_TABLE", defaultStoresTableName),
	}
}

func (r *StoreDynamoRepository) Create(ctx context.Context, s entities.Store) (entities.Store, error) {
	av, err := attributevalue.MarshalMap(toStoreItem(s))
	if err != nil {
		return entities.Store{}, errors.Wrap(err, "marshaling store item")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id_loja",
		},
	})
	if err != nil {
		return entities.Store{}, errors.Wrap(err, "inserting store")
	}
	return s, nil
}

func (r *StoreDynamoRepository) Update(ctx context.Context, s entities.Store) (entities.Store, error) {
	av, err := attributevalue.MarshalMap(toStoreItem(s))
	if err != nil {
		return entities.Store{}, errors.Wrap(err, "marshaling store item")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id_loja",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Store{}, nil
		}
		return entities.Store{}, errors.Wrap(err, "updating store")
	}
	return s, nil
}

func (r *StoreDynamoRepository) GetByID(ctx context.Context, id string) (entities.Store, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id_loja": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Store{}, errors.Wrap(err, "getting store")
	}
	if len(out.Item) == 0 {
		return entities.Store{}, nil
	}

	var it storeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Store{}, errors.Wrap(err, "unmarshaling store item")
	}
	return fromStoreItem(it), nil
}

func (r *StoreDynamoRepository) List(ctx context.Context, activeOnly bool) ([]entities.Store, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if activeOnly {
		input.FilterExpression = aws.String("#ativa = :true")
		input.ExpressionAttributeNames = map[string]string{"#ativa": "ativa"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "scanning stores")
	}

	stores := make([]entities.Store, 0, len(out.Items))
	for _, raw := range out.Items {
		var it storeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshaling store item")
		}
		stores = append(stores, fromStoreItem(it))
	}
	return stores, nil
}

func toStoreItem(s entities.Store) storeItem {
	return storeItem{
		IDLoja:           s.IDLoja,
		LojaNome:         s.LojaNome,
		LojaEndereco:     s.LojaEndereco,
		LojaTelefone:     s.LojaTelefone,
		CNPJ:             s.CNPJ,
		PerimetroEntrega: s.PerimetroEntrega,
		LojaLogo:         s.LojaLogo,
		Ativa:            s.Ativa,
	}
}

func fromStoreItem(it storeItem) entities.Store {
	return entities.Store{
		IDLoja:           it.IDLoja,
		LojaNome:         it.LojaNome,
		LojaEndereco:     it.LojaEndereco,
		LojaTelefone:     it.LojaTelefone,
		CNPJ:             it.CNPJ,
		PerimetroEntrega: it.PerimetroEntrega,
		LojaLogo:         it.LojaLogo,
		Ativa:            it.Ativa,
	}
}
