package slack

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/pkg/slices"
)

//go:embed templates/*
var defaultTemplates embed.FS

type webhookClient interface {
	PostJSON(ctx context.Context, body []byte) error
}

type Config struct {
	Messages domain.NotificationMessages
}

type payload struct {
	Text   string `json:"text"`
	Mrkdwn bool   `json:"mrkdwn"`
}

// Notifier posts notifications to a slack incoming webhook.
type Notifier struct {
	Messages            domain.NotificationMessages
	webhook             webhookClient
	defaultMessageFiles embed.FS
	logger              log.Logger
}

func NewNotifier(config *Config, webhook webhookClient, logger log.Logger) *Notifier {
	return &Notifier{
		Messages:            config.Messages,
		webhook:             webhook,
		defaultMessageFiles: defaultTemplates,
		logger:              logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, items []domain.Notification) []error {
	errs := make([]error, 0)
	for _, item := range items {
		labels := labelSlice(item.Labels)
		n.logger.Debug(ctx, "sending slack notification", "user", item.User, "type", item.Message.Type, "labels", labels)

		variables := map[string]interface{}{"recipient": item.User}
		for k, v := range item.Message.Variables {
			variables[k] = v
		}
		item.Message.Variables = variables

		msg, err := ParseMessage(item.Message, n.Messages, n.defaultMessageFiles)
		if err != nil {
			errs = append(errs, fmt.Errorf("%v | error parsing message : %w", labels, err))
			continue
		}

		body, err := json.Marshal(payload{Text: msg, Mrkdwn: true})
		if err != nil {
			errs = append(errs, fmt.Errorf("%v | error encoding message : %w", labels, err))
			continue
		}

		if err := n.webhook.PostJSON(ctx, body); err != nil {
			errs = append(errs, fmt.Errorf("%v | error sending message to user:%s | %w", labels, item.User, err))
			continue
		}
	}

	return errs
}

func getDefaultTemplate(messageType string, defaultTemplateFiles embed.FS) (string, error) {
	content, err := defaultTemplateFiles.ReadFile(fmt.Sprintf("templates/%s.md", messageType))
	if err != nil {
		return "", fmt.Errorf("error finding default template for message type %s - %s", messageType, err)
	}
	return string(content), nil
}

// ParseMessage renders message with its configured template, falling back
// to the embedded default of its type.
func ParseMessage(message domain.NotificationMessage, templates domain.NotificationMessages, defaultTemplateFiles embed.FS) (string, error) {
	messageTypeTemplateMap := map[string]string{
		domain.NotificationTypeCommentMention: templates.CommentMention,
		domain.NotificationTypeCommentReply:   templates.CommentReply,
	}

	messageBlock, ok := messageTypeTemplateMap[message.Type]
	if !ok {
		return "", fmt.Errorf("template not found for message type %s", message.Type)
	}

	if messageBlock == "" {
		defaultMsgBlock, err := getDefaultTemplate(message.Type, defaultTemplateFiles)
		if err != nil {
			return "", err
		}
		messageBlock = defaultMsgBlock
	}
	t, err := template.New("notification_messages").Parse(messageBlock)
	if err != nil {
		return "", err
	}

	var buff bytes.Buffer
	if err := t.Execute(&buff, message.Variables); err != nil {
		return "", err
	}

	return strings.TrimSpace(buff.String()), nil
}

func labelSlice(labels map[string]string) []string {
	result := make([]string, 0, len(labels))
	for _, k := range slices.GenericsSortedKeys(labels) {
		result = append(result, fmt.Sprintf("%s=%s", k, labels[k]))
	}
	return result
}
