package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	dispatchQueueSize  = 64
	sendAttempts       = 3
	sendBackoffStep    = 500 * time.Millisecond
	dispatchSendWindow = 30 * time.Second
)

// SendResult is the outcome of one message delivery attempt chain.
type SendResult struct {
	ChatID string `json:"chat_id"`
	Error  string `json:"error,omitempty"`
}

// DispatchResult summarizes one order's notification fan-out.
type DispatchResult struct {
	Success bool         `json:"success"`
	SentTo  []string     `json:"sent_to"`
	Results []SendResult `json:"results"`
}

// INotificationDispatcher queues order notifications after the triggering
// insert commits. Dispatch never escalates past this boundary: partial and
// total failures are logged, not returned to the webhook caller.

type INotificationDispatcher interface {
	Enqueue(order entities.Order) bool
}

// NotificationDispatcher resolves recipients and pushes one formatted
// message per target through the bot API.
//
// Recipient strategies, mutually exclusive per order:
//  1. storeChannels maps the order's store to a single channel; everyone
//     subscribed to the store channel gets the one message.
//  2. chatIDs is a static recipient list; one message each.
//  3. neither configured: active couriers of the order's store holding a
//     registered chat id are looked up and messaged individually.
//
// A single worker drains the queue; each send gets a bounded number of
// attempts with linear backoff, and terminal failures land in a dead-letter
// log entry.
type NotificationDispatcher struct {
	assocs   interfaces.IAssociationRepository
	users    interfaces.IUserRepository
	notifier interfaces.INotifier

	chatIDs       []string
	storeChannels map[string]string

	queue chan entities.Order
	done  chan struct{}
}

var _ INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(
	assocs interfaces.IAssociationRepository,
	users interfaces.IUserRepository,
	notifier interfaces.INotifier,
	chatIDs []string,
	storeChannels map[string]string,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		assocs:        assocs,
		users:         users,
		notifier:      notifier,
		chatIDs:       chatIDs,
		storeChannels: storeChannels,
		queue:         make(chan entities.Order, dispatchQueueSize),
		done:          make(chan struct{}),
	}
}

// Start launches the worker goroutine. The context cancels in-flight work
// on shutdown; queued orders not yet picked up are dropped with a log.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	go func() {
		defer close(d.done)
		for {
			select {
			case <-ctx.Done():
				return
			case order, ok := <-d.queue:
				if !ok {
					return
				}
				sendCtx, cancel := context.WithTimeout(ctx, dispatchSendWindow)
				result := d.Dispatch(sendCtx, order)
				cancel()
				log.WithFields(log.Fields{
					"order_id": order.ID,
					"id_loja":  order.IDLoja,
					"success":  result.Success,
					"sent_to":  result.SentTo,
				}).Info("notification dispatch finished")
			}
		}
	}()
}

// Enqueue hands an order to the worker without blocking the caller. A full
// queue drops the notification with a dead-letter entry; the ingest
// response was already decided by then.
func (d *NotificationDispatcher) Enqueue(order entities.Order) bool {
	select {
	case d.queue <- order:
		return true
	default:
		log.WithFields(log.Fields{"order_id": order.ID, "id_loja": order.IDLoja}).
			Error("notification dead-letter: dispatch queue full")
		return false
	}
}

// Close stops accepting work and waits for the worker to drain.
func (d *NotificationDispatcher) Close() {
	close(d.queue)
	<-d.done
}

// Dispatch resolves the recipients for one order and sends the formatted
// message to each. Exposed for synchronous use in tests.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, order entities.Order) DispatchResult {
	targets, err := d.resolveTargets(ctx, order)
	if err != nil {
		log.WithError(err).WithField("order_id", order.ID).Error("notification dead-letter: resolving recipients")
		return DispatchResult{}
	}
	if len(targets) == 0 {
		log.WithFields(log.Fields{"order_id": order.ID, "id_loja": order.IDLoja}).
			Warn("no notification recipients for store")
		return DispatchResult{Success: true}
	}

	text := FormatOrderMessage(order)
	result := DispatchResult{Success: true}
	for _, chatID := range targets {
		if err := d.sendWithRetry(ctx, chatID, text); err != nil {
			result.Success = false
			result.Results = append(result.Results, SendResult{ChatID: chatID, Error: err.Error()})
			log.WithError(err).WithFields(log.Fields{"order_id": order.ID, "chat_id": chatID}).
				Error("notification dead-letter: send failed after retries")
			continue
		}
		result.SentTo = append(result.SentTo, chatID)
		result.Results = append(result.Results, SendResult{ChatID: chatID})
	}
	return result
}

func (d *NotificationDispatcher) resolveTargets(ctx context.Context, order entities.Order) ([]string, error) {
	if channel, ok := d.storeChannels[order.IDLoja]; ok && channel != "" {
		return []string{channel}, nil
	}
	if len(d.chatIDs) > 0 {
		return d.chatIDs, nil
	}

	assocs, err := d.assocs.ListActiveByStore(ctx, order.IDLoja, entities.StoreRoleEntregador)
	if err != nil {
		return nil, err
	}
	targets := make([]string, 0, len(assocs))
	for _, a := range assocs {
		user, err := d.users.GetByUID(ctx, a.UIDUsuario)
		if err != nil {
			return nil, err
		}
		if user.TelegramChatID != "" {
			targets = append(targets, user.TelegramChatID)
		}
	}
	return targets, nil
}

func (d *NotificationDispatcher) sendWithRetry(ctx context.Context, chatID, text string) error {
	var lastErr error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if lastErr = d.notifier.Send(ctx, chatID, text); lastErr == nil {
			return nil
		}
		if attempt < sendAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * sendBackoffStep):
			}
		}
	}
	return lastErr
}

// FormatOrderMessage renders the fixed notification template.
func FormatOrderMessage(order entities.Order) string {
	telefone := order.TelefoneCliente
	if telefone == "" {
		telefone = "Não informado"
	}
	endereco := order.EnderecoEntrega
	if endereco == "" {
		endereco = "Não informado"
	}
	produto := order.Produto
	if produto == "" {
		produto = "Produtos não especificados"
	}
	obs := order.ObservacaoPedido
	if obs == "" {
		obs = "Nenhuma observação"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚚 *NOVO PEDIDO - %s*\n\n", order.LojaNome)
	fmt.Fprintf(&b, "📦 *Pedido:* #%s\n", order.IDLojaWoo)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", order.NomeCliente)
	fmt.Fprintf(&b, "📞 *Telefone:* %s\n", telefone)
	fmt.Fprintf(&b, "🚚 *Endereço:* %s\n\n", endereco)
	fmt.Fprintf(&b, "💰 *Total:* R$ %.2f\n", order.Total)
	fmt.Fprintf(&b, "📦 *Produtos:*\n%s\n", produto)
	fmt.Fprintf(&b, "📝 *Observação:* %s\n\n", obs)
	b.WriteString("⏰ *Ação:* Aceite pelo app!\n")
	b.WriteString("🔄 *Status:* Aguardando aceite")
	return b.String()
}
