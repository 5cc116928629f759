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

const (
	defaultAssociationsTableName = "loja_associada"
	associationsUserIndex        = "uid_usuario-index"
	associationsStoreIndex       = "id_loja-index"
)

type associationItem struct {
	ID               string `dynamodbav:"id"`
	UIDUsuario       string `dynamodbav:"uid_usuario"`
	IDLoja           string `dynamodbav:"id_loja"`
	Funcao           string `dynamodbav:"funcao"`
	StatusVinculacao string `dynamodbav:"status_vinculacao"`
}

// AssociationDynamoRepository persists StoreAssociation rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: uid_usuario-index (PK: uid_usuario)
//   - GSI: id_loja-index (PK: id_loja)

type AssociationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssociationRepository = (*AssociationDynamoRepository)(nil)

func NewAssociationDynamoRepository(ddb *dynamodb.Client) *AssociationDynamoRepository {
	return &AssociationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSOCIATIONS_TABLE", defaultAssociationsTableName),
	}
}

func (r *AssociationDynamoRepository) Create(ctx context.Context, a entities.StoreAssociation) (entities.StoreAssociation, error) {
	av, err := attributevalue.MarshalMap(toAssociationItem(a))
	if err != nil {
		return entities.StoreAssociation{}, errors.Wrap(err, "marshaling association item")
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
		return entities.StoreAssociation{}, errors.Wrap(err, "inserting association")
	}
	return a, nil
}

func (r *AssociationDynamoRepository) ListActiveByUser(ctx context.Context, uid string) ([]entities.StoreAssociation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(associationsUserIndex),
		KeyConditionExpression: aws.String("uid_usuario = :uid"),
		FilterExpression:       aws.String("#sv = :ativo"),
		ExpressionAttributeNames: map[string]string{
			"#sv": "status_vinculacao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   &types.AttributeValueMemberS{Value: uid},
			":ativo": &types.AttributeValueMemberS{Value: string(entities.AssociationStatusAtivo)},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "querying associations by user")
	}
	return unmarshalAssociations(out.Items)
}

func (r *AssociationDynamoRepository) ListActiveByStore(ctx context.Context, storeID string, funcao entities.StoreRole) ([]entities.StoreAssociation, error) {
	filterExpr := "#sv = :ativo"
	names := map[string]string{"#sv": "status_vinculacao"}
	values := map[string]types.AttributeValue{
		":loja":  &types.AttributeValueMemberS{Value: storeID},
		":ativo": &types.AttributeValueMemberS{Value: string(entities.AssociationStatusAtivo)},
	}
	if funcao != "" {
		filterExpr += " AND #funcao = :funcao"
		names["#funcao"] = "funcao"
		values[":funcao"] = &types.AttributeValueMemberS{Value: string(funcao)}
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(associationsStoreIndex),
		KeyConditionExpression:    aws.String("id_loja = :loja"),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, errors.Wrap(err, "querying associations by store")
	}
	return unmarshalAssociations(out.Items)
}

func (r *AssociationDynamoRepository) ListActiveUserIDs(ctx context.Context) ([]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("uid_usuario"),
		FilterExpression:     aws.String("#sv = :ativo"),
		ExpressionAttributeNames: map[string]string{
			"#sv": "status_vinculacao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ativo": &types.AttributeValueMemberS{Value: string(entities.AssociationStatusAtivo)},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "scanning active association uids")
	}

	seen := make(map[string]struct{}, len(out.Items))
	uids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it associationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshaling association item")
		}
		if _, ok := seen[it.UIDUsuario]; ok {
			continue
		}
		seen[it.UIDUsuario] = struct{}{}
		uids = append(uids, it.UIDUsuario)
	}
	return uids, nil
}

func unmarshalAssociations(raw []map[string]types.AttributeValue) ([]entities.StoreAssociation, error) {
	items := make([]entities.StoreAssociation, 0, len(raw))
	for _, m := range raw {
		var it associationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshaling association item")
		}
		items = append(items, fromAssociationItem(it))
	}
	return items, nil
}

func toAssociationItem(a entities.StoreAssociation) associationItem {
	return associationItem{
		ID:               a.ID,
		UIDUsuario:       a.UIDUsuario,
		IDLoja:           a.IDLoja,
		Funcao:           string(a.Funcao),
		StatusVinculacao: string(a.StatusVinculacao),
	}
}

func fromAssociationItem(it associationItem) entities.StoreAssociation {
	return entities.StoreAssociation{
		ID:               it.ID,
		UIDUsuario:       it.UIDUsuario,
		IDLoja:           it.IDLoja,
		Funcao:           entities.StoreRole(it.Funcao),
		StatusVinculacao: entities.AssociationStatus(it.StatusVinculacao),
	}
}
