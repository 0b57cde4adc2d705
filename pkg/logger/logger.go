package logger

import (
	"go.uber.org/zap"
)

// InitLogger 初始化全局日志
// mode 为 release 时使用生产配置，其余使用开发配置
// 初始化后业务代码通过 zap.S() 获取全局 SugaredLogger
func InitLogger(mode string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "release" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(l)
	return l, nil
}
