package das

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "das")
