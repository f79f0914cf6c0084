package prometheus

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "prometheus")
