package notify

import (
	"context"

	"flex_billing/internal/usecase/interfaces"

	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	api *slack.Client
}

var _ interfaces.IChatNotifier = (*SlackNotifier)(nil)

// NewSlackNotifier builds a chat client; apiURL overrides the Slack endpoint
// (it must end with a slash) and is empty in production.
func NewSlackNotifier(token, apiURL string) *SlackNotifier {
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &SlackNotifier{api: slack.New(token, opts...)}
}

func (n *SlackNotifier) PostMessage(ctx context.Context, channel, text string) error {
	_, _, err := n.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	return err
}
