package kafka

import (
	"Inkwell/internal/api/config"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ViewProducer 浏览事件生产者
type ViewProducer interface {
	SendViewEvent(event *ViewEvent) error
	Close() error
}

type ViewProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewViewProducer(cfg *config.Config) (ViewProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}
	return &ViewProducerImpl{
		producer: producer,
		topic:    cfg.KafkaViewConsumer.Topic,
	}, nil
}

func (p *ViewProducerImpl) SendViewEvent(event *ViewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(StrFromUint64(event.PostID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		log.Error("send view event failed", "postID", event.PostID, "err", err)
		return err
	}
	log.Debug("view event sent", "postID", event.PostID, "partition", partition, "offset", offset)
	return nil
}

func (p *ViewProducerImpl) Close() error {
	return p.producer.Close()
}
