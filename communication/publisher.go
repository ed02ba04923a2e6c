package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
)

const publishTimeout = 5 * time.Second

// ReportPublisher sends reports outside the explorer
type ReportPublisher interface {
	Publish(response *queryresponse.QueryResponse) error
	Close() error
}

// RabbitPublisher publishes each report as JSON in a topic exchange with routing key prefix.city.reportType
type RabbitPublisher struct {
	rabbitMQ         *RabbitMQ
	exchange         ExchangeDeclarationConfig
	routingKeyPrefix string
	contentType      string
}

// NewRabbitPublisher connects to RabbitMQ and declares the exchange
func NewRabbitPublisher(rabbitUrl string, exchange ExchangeDeclarationConfig, routingKeyPrefix string, contentType string) (*RabbitPublisher, error) {
	rabbitMQ, err := NewRabbitMQ(rabbitUrl)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	err = rabbitMQ.DeclareExchanges([]ExchangeDeclarationConfig{exchange})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	log.Infof("[component: publisher][exchange: %s][status: OK] exchange declared correctly!", exchange.Name)
	return &RabbitPublisher{
		rabbitMQ:         rabbitMQ,
		exchange:         exchange,
		routingKeyPrefix: routingKeyPrefix,
		contentType:      contentType,
	}, nil
}

func (rp *RabbitPublisher) Publish(response *queryresponse.QueryResponse) error {
	body, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshalling %s report: %w", response.GetMetadata().GetType(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	routingKey := response.GetRoutingKey(rp.routingKeyPrefix)
	err = rp.rabbitMQ.PublishMessageInExchange(ctx, rp.exchange.Name, routingKey, body, rp.contentType)
	if err != nil {
		return fmt.Errorf("error publishing report with routing key %s: %w", routingKey, err)
	}

	log.Debug(getPublishLogMessage(response, routingKey))
	return nil
}

func getPublishLogMessage(response *queryresponse.QueryResponse, routingKey string) string {
	metadata := response.GetMetadata()
	return fmt.Sprintf(
		"[component: publisher][queryID: %s][stage: %s][routingKey: %s][status: OK] report published (%s)",
		response.GetQueryID(),
		metadata.GetStage(),
		routingKey,
		metadata.GetMessage(),
	)
}

func (rp *RabbitPublisher) Close() error {
	return rp.rabbitMQ.KillBadBunny()
}

// NoopPublisher is used when publishing is disabled
type NoopPublisher struct{}

func (NoopPublisher) Publish(*queryresponse.QueryResponse) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
