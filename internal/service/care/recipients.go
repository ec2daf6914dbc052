package care

import (
	"context"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository"
	"golang.org/x/sync/errgroup"
)

// findPair 并发查询两个用户的接收者信息
func findPair(ctx context.Context, users repository.UserRepository, first, second int64) (domain.Recipient, domain.Recipient, error) {
	var a, b domain.Recipient
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		a, err = users.FindRecipient(ctx, first)
		return err
	})
	eg.Go(func() error {
		var err error
		b, err = users.FindRecipient(ctx, second)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Recipient{}, domain.Recipient{}, err
	}
	return a, b, nil
}
