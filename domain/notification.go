package domain

const (
	NotificationTypeCommentMention = "comment_mention"
	NotificationTypeCommentReply   = "comment_reply"
)

type NotificationMessages struct {
	CommentMention string `mapstructure:"comment_mention" yaml:"comment_mention"`
	CommentReply   string `mapstructure:"comment_reply" yaml:"comment_reply"`
}

type NotificationMessage struct {
	Type      string
	Variables map[string]interface{}
}

type Notification struct {
	User    string
	Labels  map[string]string
	Message NotificationMessage
}
