package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/repository"
	"github.com/bellapacxx/squares-backend/utils/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

const gameUpdatesExchange = "squares.game-updates"

// Notifier tells subscribers a game changed. It must not block the mutation
// path for long and never fails the mutation.
type Notifier interface {
	Notify(ctx context.Context, g game.State)
}

// LocalNotifier pushes straight to this instance's hub.
type LocalNotifier struct {
	hub *Hub
}

func NewLocalNotifier(hub *Hub) *LocalNotifier {
	return &LocalNotifier{hub: hub}
}

func (n *LocalNotifier) Notify(_ context.Context, g game.State) {
	n.hub.Publish(g)
}

// AMQPNotifier relays change notices through a fanout exchange so every
// server instance pushes to its own subscribers. Only the game id travels;
// each instance reloads the document from the shared store.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	hub  *Hub
	repo repository.Repository
}

func NewAMQPNotifier(url string, hub *Hub, repo repository.Repository) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		gameUpdatesExchange, // name
		"fanout",            // kind
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", gameUpdatesExchange, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("consume: %w", err)
	}

	n := &AMQPNotifier{conn: conn, ch: ch, hub: hub, repo: repo}
	go n.consume(deliveries)
	return n, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, g game.State) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := n.ch.PublishWithContext(ctx,
		gameUpdatesExchange, // exchange
		"",                  // routing key
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        []byte(g.ID),
		})
	if err != nil {
		logger.Errorf("[Game %s] failed to publish update, pushing locally: %v", g.ID, err)
		n.hub.Publish(g)
	}
}

func (n *AMQPNotifier) consume(deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		gameID := string(d.Body)
		if n.hub.Subscribers(gameID) == 0 {
			continue
		}
		g, err := n.repo.Load(context.Background(), gameID)
		if err != nil {
			logger.Errorf("[Game %s] failed to load after update notice: %v", gameID, err)
			continue
		}
		n.hub.Publish(g)
	}
	logger.Info("[AMQP] update consumer stopped")
}

func (n *AMQPNotifier) Close() error {
	if err := n.ch.Close(); err != nil {
		n.conn.Close()
		return err
	}
	return n.conn.Close()
}
