package initializers

import (
	"os"

	"github.com/sirupsen/logrus"
)

func ConfigureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}
}
