package verification

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "verification")
