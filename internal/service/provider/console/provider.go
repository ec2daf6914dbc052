// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package console

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// Provider 输出到日志的推送实现。真正的推送服务（OneSignal、FCM）接入前，推送渠道默认使用它
type Provider struct {
	logger *elog.Component
}

func NewProvider() *Provider {
	return &Provider{
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(_ context.Context, notification domain.Notification) (domain.SendResponse, error) {
	p.logger.Info("推送通知",
		elog.String("receiver", notification.Receiver),
		elog.String("title", notification.Push.Title),
		elog.String("body", notification.Push.Body),
		elog.Any("data", notification.Push.Data),
	)
	return domain.SendResponse{
		EventID:  notification.EventID,
		Channel:  notification.Channel,
		Receiver: notification.Receiver,
		Status:   domain.SendStatusSucceeded,
	}, nil
}
