package notifiers

import (
	"context"
	"errors"

	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/pkg/http"
	"github.com/goto/engagement/pkg/log"
	"github.com/goto/engagement/plugins/notifiers/slack"
)

type Client interface {
	Notify(context.Context, []domain.Notification) []error
}

const (
	ProviderTypeSlack = "slack"
)

type Config struct {
	Provider string `mapstructure:"provider" yaml:"provider" validate:"omitempty,oneof=slack"`

	// slack incoming webhook
	Webhook *http.HTTPClientConfig `mapstructure:"webhook" yaml:"webhook,omitempty" validate:"required_if=Provider slack"`

	// custom messages
	Messages domain.NotificationMessages `mapstructure:"messages" yaml:"messages"`
}

func NewClient(config *Config, logger log.Logger) (Client, error) {
	if config.Provider == ProviderTypeSlack {
		if config.Webhook == nil {
			return nil, errors.New("slack webhook is required")
		}
		webhook, err := http.NewHTTPClient(config.Webhook, "SlackWebhook")
		if err != nil {
			return nil, err
		}

		slackConfig := &slack.Config{
			Messages: config.Messages,
		}
		return slack.NewNotifier(slackConfig, webhook, logger), nil
	}

	return nil, errors.New("invalid notifier provider type")
}
