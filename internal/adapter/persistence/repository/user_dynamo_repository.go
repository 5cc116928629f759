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

const defaultUsersTableName = "usuarios"

type userItem struct {
	UID            string `dynamodbav:"uid"`
	NomeCompleto   string `dynamodbav:"nome_completo"`
	Email          string `dynamodbav:"email"`
	Telefone       string `dynamodbav:"telefone,omitempty"`
	AvatarURL      string `dynamodbav:"avatar_url,omitempty"`
	IsAdmin        bool   `dynamodbav:"is_admin"`
	TelegramChatID string `dynamodbav:"telegram_chat_id,omitempty"`
}

// UserDynamoRepository persists User profile rows in DynamoDB.
//
// Table requirements:
//   - PK: uid (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, errors.Wrap(err, "getting user")
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, errors.Wrap(err, "unmarshaling user item")
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, errors.Wrap(err, "scanning users")
	}

	users := make([]entities.User, 0, len(out.Items))
	for _, raw := range out.Items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshaling user item")
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func (r *UserDynamoRepository) UpdateProfile(ctx context.Context, u entities.User) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: u.UID},
		},
		ConditionExpression: aws.String("attribute_exists(#uid)"),
		UpdateExpression:    aws.String("SET #nome = :nome, #tel = :tel, #tg = :tg"),
		ExpressionAttributeNames: map[string]string{
			"#uid":  "uid",
			"#nome": "nome_completo",
			"#tel":  "telefone",
			"#tg":   "telegram_chat_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nome": &types.AttributeValueMemberS{Value: u.NomeCompleto},
			":tel":  &types.AttributeValueMemberS{Value: u.Telefone},
			":tg":   &types.AttributeValueMemberS{Value: u.TelegramChatID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, errors.Wrap(err, "updating user profile")
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, errors.Wrap(err, "unmarshaling updated user")
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
	})
	return errors.Wrap(err, "deleting user")
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		UID:            it.UID,
		NomeCompleto:   it.NomeCompleto,
		Email:          it.Email,
		Telefone:       it.Telefone,
		AvatarURL:      it.AvatarURL,
		IsAdmin:        it.IsAdmin,
		TelegramChatID: it.TelegramChatID,
	}
}
