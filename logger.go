package markdownify

import (
	"log"

	"github.com/ocdsext/markdownify-go/internal/logging"
)

// Logger 全局日志记录器
var Logger = logging.Logger()

// SetLogger 设置自定义日志记录器，内部包的日志也随之切换
func SetLogger(logger *log.Logger) {
	Logger = logger
	logging.SetLogger(logger)
}
