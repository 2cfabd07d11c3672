package loggers

import "github.com/sirupsen/logrus"

var Logger *logrus.Logger
var logLevel logrus.Level = logrus.InfoLevel

func Init() {
	Logger = logrus.New()
	Logger.SetLevel(logLevel)
}
