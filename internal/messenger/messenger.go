package messenger

import (
	"fmt"
	"strings"
	"time"

	"github.com/DuckMart/marketplace-engine/internal/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"go.uber.org/zap"
)

type MessageService interface {
	SendMessage(item Item, body []byte) error
	PollMessages(item Item, messages chan *sqs.Message)
	DeleteMessage(item Item, msg *sqs.Message) error
	GetQueueSize(item Item) (*int, error)
}

type Messenger struct {
	sqs *sqs.SQS
}

type Item string

var (
	ActionPersist Item = "action.persist"
)

func (i Item) queue() string {
	name := strings.ReplaceAll(string(i), ".", "_")
	return fmt.Sprintf("%s_%s_%s", config.Get().Network, config.Get().Index, name)
}

func NewMessenger(sqsClient *sqs.SQS) MessageService {
	return &Messenger{sqs: sqsClient}
}

func (m Messenger) SendMessage(item Item, body []byte) error {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.SendMessage(&sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    queueUrl,
	})
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to send message")
		return err
	}

	zap.L().With(zap.String("queue", item.queue())).Debug("[Queue] Published message")

	return nil
}

func (m Messenger) PollMessages(item Item, messages chan *sqs.Message) {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to get queue url")
		return
	}

	for {
		output, err := m.sqs.ReceiveMessage(&sqs.ReceiveMessageInput{
			QueueUrl:            queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(15),
		})
		if err != nil {
			zap.L().With(zap.Error(err), zap.String("queue", item.queue())).Error("[Queue] Failed to fetch messages")
			time.Sleep(5 * time.Second)
			continue
		}

		for _, message := range output.Messages {
			messages <- message
		}
	}
}

func (m Messenger) DeleteMessage(item Item, msg *sqs.Message) error {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		return err
	}

	_, err = m.sqs.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      queueUrl,
		ReceiptHandle: msg.ReceiptHandle,
	})

	return err
}

func (m Messenger) GetQueueSize(item Item) (*int, error) {
	queueUrl, err := m.getQueueUrl(item)
	if err != nil {
		return nil, err
	}

	attributes, err := m.sqs.GetQueueAttributes(&sqs.GetQueueAttributesInput{
		QueueUrl:       queueUrl,
		AttributeNames: []*string{aws.String(sqs.QueueAttributeNameApproximateNumberOfMessages)},
	})
	if err != nil {
		return nil, err
	}

	sizeAttr, ok := attributes.Attributes[sqs.QueueAttributeNameApproximateNumberOfMessages]
	if !ok {
		return nil, fmt.Errorf("queue %s has no size attribute", item.queue())
	}

	var size int
	if _, err := fmt.Sscanf(*sizeAttr, "%d", &size); err != nil {
		return nil, err
	}

	return &size, nil
}

// getQueueUrl resolves the queue by name, unless a fixed url is configured
// (localstack and cross-account queues).
func (m Messenger) getQueueUrl(item Item) (*string, error) {
	if queueUrl := config.Get().Aws.QueueUrl; queueUrl != "" {
		return aws.String(queueUrl), nil
	}

	result, err := m.sqs.GetQueueUrl(&sqs.GetQueueUrlInput{
		QueueName: aws.String(item.queue()),
	})
	if err != nil {
		return nil, err
	}

	return result.QueueUrl, nil
}
