package domain

import "strings"

// NotificationPreferences 用户的通知偏好，由用户在个人资料中修改
type NotificationPreferences struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// DefaultPreferences 新用户默认全部开启
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{Email: true, SMS: true, Push: true}
}

// Enabled 渠道是否开启
func (p NotificationPreferences) Enabled(channel Channel) bool {
	switch channel {
	case ChannelEmail:
		return p.Email
	case ChannelSMS:
		return p.SMS
	case ChannelPush:
		return p.Push
	default:
		return false
	}
}

// Recipient 通知接收者，联系方式是从用户实体冗余过来的
type Recipient struct {
	UserID      int64                   `json:"userId"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone"`
	PushID      string                  `json:"pushId"`
	FirstName   string                  `json:"firstName"`
	LastName    string                  `json:"lastName"`
	Preferences NotificationPreferences `json:"preferences"`
}

func (r Recipient) DisplayName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Contact 返回渠道对应的联系方式，为空表示该渠道无法送达
func (r Recipient) Contact(channel Channel) string {
	switch channel {
	case ChannelEmail:
		return strings.TrimSpace(r.Email)
	case ChannelSMS:
		return strings.TrimSpace(r.Phone)
	case ChannelPush:
		if id := strings.TrimSpace(r.PushID); id != "" {
			return id
		}
		// 推送默认按用户ID寻址
		if r.UserID > 0 {
			return formatID(r.UserID)
		}
		return ""
	default:
		return ""
	}
}
