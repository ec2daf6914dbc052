//go:build wireinject

package ioc

import (
	"gitee.com/mcaid/notification/internal/ioc"
	"gitee.com/mcaid/notification/internal/repository"
	"gitee.com/mcaid/notification/internal/repository/cache/local"
	rediscache "gitee.com/mcaid/notification/internal/repository/cache/redis"
	"gitee.com/mcaid/notification/internal/repository/dao"
	"gitee.com/mcaid/notification/internal/service/care"
	"gitee.com/mcaid/notification/internal/service/dispatcher"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitIDGenerator,
		ioc.InitRedisClient,
		ioc.InitGoCache,
		ioc.InitTracer,
		wire.Bind(new(redis.Cmdable), new(*redis.Client)),
		wire.Bind(new(redis.UniversalClient), new(*redis.Client)),

		local.NewLocalCache,
		rediscache.NewCache,
	)
	userSet = wire.NewSet(
		ioc.InitUserRepository,
		dao.NewUserDAO,
	)
	dispatcherSet = wire.NewSet(
		ioc.InitSMSConfig,
		ioc.InitSMSClient,
		ioc.InitEmailClient,
		ioc.InitChannel,
		ioc.InitDispatcher,
		wire.Bind(new(dispatcher.Notifier), new(*dispatcher.Dispatcher)),
	)
	careSvcSet = wire.NewSet(
		care.NewAppointmentService,
		repository.NewAppointmentRepository,
		dao.NewAppointmentDAO,

		care.NewMedicationService,
		repository.NewMedicationRepository,
		dao.NewMedicationDAO,

		care.NewOrderService,
		repository.NewOrderRepository,
		dao.NewOrderDAO,

		care.NewChatService,
		repository.NewChatRepository,
		dao.NewChatMessageDAO,

		care.NewHealthAlertService,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 接收者
		userSet,

		// 通知派发
		dispatcherSet,

		// 业务事件
		careSvcSet,

		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
