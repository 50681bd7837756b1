package events

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const queueSize = 256

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher hands events to a small worker pool that writes them to Kafka.
// Publish never blocks the caller on the broker: a full queue drops the
// event with a log line.
type Publisher struct {
	writer Writer
	queue  chan Event
	wg     sync.WaitGroup
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return newPublisher(writer, 4)
}

func newPublisher(writer Writer, workers int) *Publisher {
	p := &Publisher{
		writer: writer,
		queue:  make(chan Event, queueSize),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Publisher) worker() {
	defer p.wg.Done()
	for event := range p.queue {
		value, err := json.Marshal(event)
		if err != nil {
			zap.L().Error("failed to marshal ledger event", zap.Error(err))
			continue
		}
		msg := kafka.Message{
			Key:   []byte(strconv.Itoa(event.MemberID)),
			Value: value,
		}
		if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
			zap.L().Error("failed to write ledger event", zap.String("type", event.Type), zap.Error(err))
		}
	}
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.queue <- event:
		return nil
	default:
		zap.L().Warn("ledger event queue full, dropping event", zap.String("type", event.Type))
		return nil
	}
}

func (p *Publisher) Close() error {
	close(p.queue)
	p.wg.Wait()
	return p.writer.Close()
}
