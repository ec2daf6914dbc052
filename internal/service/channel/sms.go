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

package channel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"gitee.com/mcaid/notification/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

type baseChannel struct {
	provider provider.Provider
	validate func(notification domain.Notification) error
	logger   *elog.Component
}

// Send 只发送一次，不重试。供应商未配置时返回 SKIPPED 且不返回错误
func (s *baseChannel) Send(ctx context.Context, notification domain.Notification) (domain.SendResponse, error) {
	if strings.TrimSpace(notification.Receiver) == "" {
		return failed(notification), fmt.Errorf("%w: 接收者不能为空", errs.ErrInvalidParameter)
	}
	if err := s.validate(notification); err != nil {
		return failed(notification), err
	}

	resp, err := s.provider.Send(ctx, notification)
	switch {
	case err == nil:
		return resp, nil
	case errors.Is(err, errs.ErrUnconfigured):
		s.logger.Info("渠道未配置，跳过发送",
			elog.String("channel", notification.Channel.String()),
			elog.String("kind", notification.Kind.String()),
			elog.FieldErr(err),
		)
		return skipped(notification), nil
	case errors.Is(err, errs.ErrTransport):
		return failed(notification), err
	default:
		return failed(notification), fmt.Errorf("%w: %w", errs.ErrTransport, err)
	}
}

type smsChannel struct {
	baseChannel
}

func NewSMSChannel(p provider.Provider) Channel {
	return &smsChannel{
		baseChannel{
			provider: p,
			validate: func(n domain.Notification) error {
				if strings.TrimSpace(n.SMS.Text) == "" {
					return fmt.Errorf("%w: 短信内容不能为空", errs.ErrInvalidParameter)
				}
				return nil
			},
			logger: elog.DefaultLogger,
		},
	}
}

type emailChannel struct {
	baseChannel
}

func NewEmailChannel(p provider.Provider) Channel {
	return &emailChannel{
		baseChannel{
			provider: p,
			validate: func(n domain.Notification) error {
				if strings.TrimSpace(n.Email.Subject) == "" {
					return fmt.Errorf("%w: 邮件主题不能为空", errs.ErrInvalidParameter)
				}
				if n.Email.HTML == "" && n.Email.Text == "" {
					return fmt.Errorf("%w: 邮件正文不能为空", errs.ErrInvalidParameter)
				}
				return nil
			},
			logger: elog.DefaultLogger,
		},
	}
}

type pushChannel struct {
	baseChannel
}

func NewPushChannel(p provider.Provider) Channel {
	return &pushChannel{
		baseChannel{
			provider: p,
			validate: func(n domain.Notification) error {
				if strings.TrimSpace(n.Push.Title) == "" && strings.TrimSpace(n.Push.Body) == "" {
					return fmt.Errorf("%w: 推送内容不能为空", errs.ErrInvalidParameter)
				}
				return nil
			},
			logger: elog.DefaultLogger,
		},
	}
}
