package ioc

import (
	"time"

	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		// MachineID 为 0 时使用 sonyflake 默认的私有 IP 低 16 位
		MachineID uint16 `yaml:"machineId"`
	}
	var cfg Config
	unmarshalOptional("idGenerator", &cfg)
	settings := sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg.MachineID != 0 {
		settings.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf := sonyflake.NewSonyflake(settings)
	if sf == nil {
		panic("初始化 sonyflake 失败，请配置 idGenerator.machineId")
	}
	return sf
}
