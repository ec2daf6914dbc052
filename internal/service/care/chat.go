package care

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	"github.com/gotomicro/ego/core/elog"
)

// PreviewLength 推送里消息预览的最大字符数
const PreviewLength = 50

// ChatService 聊天
type ChatService interface {
	// Send 保存消息后推送给接收者
	Send(ctx context.Context, senderID, receiverID int64, text string) (domain.ChatMessage, error)
}

type chatService struct {
	repo     repository.ChatRepository
	users    repository.UserRepository
	notifier dispatcher.Notifier
	logger   *elog.Component
}

func NewChatService(repo repository.ChatRepository, users repository.UserRepository,
	notifier dispatcher.Notifier) ChatService {
	return &chatService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   elog.DefaultLogger,
	}
}

func (s *chatService) Send(ctx context.Context, senderID, receiverID int64, text string) (domain.ChatMessage, error) {
	if senderID <= 0 || receiverID <= 0 || senderID == receiverID {
		return domain.ChatMessage{}, fmt.Errorf("%w: 发送者或接收者非法", errs.ErrInvalidParameter)
	}
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, fmt.Errorf("%w: 消息内容不能为空", errs.ErrInvalidParameter)
	}

	msg, err := s.repo.Create(ctx, domain.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    text,
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}

	sender, receiver, err := findPair(ctx, s.users, senderID, receiverID)
	if err != nil {
		s.logger.Warn("查询聊天双方失败，不发送通知",
			elog.Int64("messageId", msg.ID),
			elog.FieldErr(err),
		)
		return msg, nil
	}
	s.notifier.Notify(ctx, domain.NewChatMessageEvent(receiver, domain.ChatMessagePayload{
		SenderName: sender.DisplayName(),
		Preview:    Preview(text),
	}))
	return msg, nil
}

// Preview 按字符截断，超出时以 ... 结尾
func Preview(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:PreviewLength]) + "..."
}
