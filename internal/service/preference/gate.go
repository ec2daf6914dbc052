package preference

import (
	"gitee.com/mcaid/notification/internal/domain"
	"github.com/ecodeclub/ekit/set"
	"github.com/ecodeclub/ekit/slice"
)

// SelectChannels 计算实际要尝试的渠道：
// 请求的渠道 ∩ 用户开启的渠道，并且该渠道必须有联系方式（比如短信必须有手机号）。
// 结果保持请求顺序并去重，空结果是合法的。
func SelectChannels(recipient domain.Recipient, requested []domain.Channel) []domain.Channel {
	seen := set.NewMapSet[domain.Channel](len(requested))
	return slice.FilterMap(requested, func(_ int, ch domain.Channel) (domain.Channel, bool) {
		if seen.Exist(ch) {
			return ch, false
		}
		seen.Add(ch)
		return ch, Allowed(recipient, ch)
	})
}

// Allowed 单个渠道是否可用
func Allowed(recipient domain.Recipient, ch domain.Channel) bool {
	return ch.IsValid() &&
		recipient.Preferences.Enabled(ch) &&
		recipient.Contact(ch) != ""
}
