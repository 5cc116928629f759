package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
)

// wooOrderPayload is the storefront-shaped webhook body: standard
// WooCommerce order fields plus passthrough store fields the storefront is
// configured to inject.
type wooOrderPayload struct {
	ID           int64  `json:"id"`
	IDWoo        int64  `json:"id_woo"`
	IDLoja       string `json:"id_loja"`
	IDLojaWoo    string `json:"id_loja_woo"`
	LojaNome     string `json:"loja_nome"`
	LojaTelefone string `json:"loja_telefone"`
	LojaEndereco string `json:"loja_endereco"`

	Billing struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"billing"`
	Shipping struct {
		Address1 string `json:"address_1"`
		City     string `json:"city"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"shipping"`
	LineItems []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"line_items"`

	PaymentMethod string `json:"payment_method"`
	Total         string `json:"total"`
	CustomerNote  string `json:"customer_note"`
	DatePaid      string `json:"date_paid"`
	DateCreated   string `json:"date_created"`
}

// IWebhookIngestUseCase turns a signed storefront webhook delivery into one
// persisted awaiting order.

type IWebhookIngestUseCase interface {
	Ingest(ctx context.Context, rawBody []byte, signature string) (entities.Order, error)
}

// WebhookIngestUseCase verifies the delivery signature against the raw
// body, maps the storefront payload (every field optional) and
// inserts the order. The notification is queued after the insert and never
// affects the ingest outcome.
//
// No idempotency key exists in the payload: a re-delivered webhook inserts
// a second, distinct order. Documented current behavior.
type WebhookIngestUseCase struct {
	orders     interfaces.IOrderRepository
	dispatcher INotificationDispatcher
	secret     string
}

var _ IWebhookIngestUseCase = (*WebhookIngestUseCase)(nil)

func NewWebhookIngestUseCase(orders interfaces.IOrderRepository, dispatcher INotificationDispatcher, webhookSecret string) *WebhookIngestUseCase {
	return &WebhookIngestUseCase{orders: orders, dispatcher: dispatcher, secret: webhookSecret}
}

func (u *WebhookIngestUseCase) Ingest(ctx context.Context, rawBody []byte, signature string) (entities.Order, error) {
	if signature != "" && u.secret != "" {
		if !VerifySignature(u.secret, rawBody, signature) {
			log.Warn("webhook ingest: signature mismatch")
			return entities.Order{}, ErrInvalidWebhookSignature
		}
	}

	var payload wooOrderPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return entities.Order{}, ErrInvalidWebhookPayload
	}

	order := mapWooOrder(payload)
	log.WithFields(log.Fields{
		"id_loja": order.IDLoja,
		"id_woo":  order.IDWoo,
	}).Info("webhook ingest: order received")

	inserted, err := u.orders.Insert(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	log.WithField("id", inserted.ID).Info("webhook ingest: order saved")

	if u.dispatcher != nil {
		u.dispatcher.Enqueue(inserted)
	}
	return inserted, nil
}

// VerifySignature recomputes HMAC-SHA256 over the raw request body and
// compares the Base64 form against the header value in constant time.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	computed := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}

func mapWooOrder(p wooOrderPayload) entities.Order {
	idWoo := p.IDWoo
	if idWoo == 0 {
		idWoo = p.ID
	}

	nome := strings.TrimSpace(strings.TrimSpace(p.Billing.FirstName) + " " + strings.TrimSpace(p.Billing.LastName))
	if nome == "" {
		nome = "Desconhecido"
	}

	endereco := ""
	if p.Shipping.Address1 != "" {
		endereco = fmt.Sprintf("%s, %s, %s, %s", p.Shipping.Address1, p.Shipping.City, p.Shipping.State, p.Shipping.Postcode)
	}

	itens := make([]string, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		itens = append(itens, fmt.Sprintf("%s (%d)", li.Name, li.Quantity))
	}

	total, err := strconv.ParseFloat(strings.TrimSpace(p.Total), 64)
	if err != nil {
		total = 0
	}

	data := time.Now().UTC()
	if p.DateCreated != "" {
		if parsed, err := parseWooTime(p.DateCreated); err == nil {
			data = parsed
		}
	}

	order := entities.Order{
		ID:               uuid.NewString(),
		IDWoo:            idWoo,
		IDLoja:           p.IDLoja,
		IDLojaWoo:        p.IDLojaWoo,
		LojaNome:         p.LojaNome,
		LojaTelefone:     p.LojaTelefone,
		LojaEndereco:     p.LojaEndereco,
		NomeCliente:      nome,
		EmailCliente:     p.Billing.Email,
		TelefoneCliente:  p.Billing.Phone,
		EnderecoEntrega:  endereco,
		Produto:          strings.Join(itens, ", "),
		FormaPagamento:   p.PaymentMethod,
		Total:            total,
		ObservacaoPedido: p.CustomerNote,
		StatusTransporte: entities.TransportStatusAguardando,
		StatusPagamento:  p.DatePaid != "",
		Data:             data,
	}
	if p.DatePaid != "" {
		if paid, err := parseWooTime(p.DatePaid); err == nil {
			order.DataPagamento = &paid
		}
	}
	return order
}

// parseWooTime accepts the storefront's timestamp flavors: RFC3339 and the
// zone-less "2006-01-02T15:04:05" WooCommerce emits for local times.
func parseWooTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
