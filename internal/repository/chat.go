package repository

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/dao"
)

type ChatRepository interface {
	Create(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error)
}

type chatRepository struct {
	dao dao.ChatMessageDAO
}

func NewChatRepository(d dao.ChatMessageDAO) ChatRepository {
	return &chatRepository{dao: d}
}

func (r *chatRepository) Create(ctx context.Context, m domain.ChatMessage) (domain.ChatMessage, error) {
	created, err := r.dao.Create(ctx, dao.ChatMessage{
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
	})
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.ChatMessage{
		ID:         created.ID,
		SenderID:   created.SenderID,
		ReceiverID: created.ReceiverID,
		Content:    created.Content,
		Read:       created.Read,
		Ctime:      created.Ctime,
	}, nil
}
