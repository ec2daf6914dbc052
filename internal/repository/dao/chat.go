package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

// ChatMessage 聊天消息表
type ChatMessage struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	SenderID   int64  `gorm:"type:BIGINT;index:idx_sender_receiver,priority:1"`
	ReceiverID int64  `gorm:"type:BIGINT;index:idx_sender_receiver,priority:2;index:idx_receiver_id"`
	Content    string `gorm:"type:TEXT"`
	Read       bool   `gorm:"column:is_read"`
	Ctime      int64
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

type ChatMessageDAO interface {
	Create(ctx context.Context, m ChatMessage) (ChatMessage, error)
}

type chatMessageDAO struct {
	db *egorm.Component
}

func NewChatMessageDAO(db *egorm.Component) ChatMessageDAO {
	return &chatMessageDAO{db: db}
}

func (d *chatMessageDAO) Create(ctx context.Context, m ChatMessage) (ChatMessage, error) {
	m.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&m).Error
	return m, err
}
