// Package logs configures the process-wide logrus logger: output format, optional log file and
// credential masking for URLs that end up in log lines.
package logs

import (
	"io"
	"net/url"
	"os"
	"strings"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatFluentd = "fluentd"

	logFilePermissions = 0o600
)

// Formats lists the accepted values of SetFormatter.
var Formats = []string{FormatText, FormatJSON, FormatFluentd}

// SetFormatter installs the formatter named format on the standard logger. Colors are dropped
// from text output when it also goes to a file.
func SetFormatter(format string, toFile bool) error {
	switch format {
	case FormatText:
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = toFile
		logrus.SetFormatter(formatter)
	case FormatFluentd:
		logrus.SetFormatter(joonix.NewFormatter())
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %s", format)
	}
	return nil
}

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}
	addLogWriter(f)
	logrus.Info("File logging initialized")
	return nil
}

// MaskCredentialsLogging masks the url credentials before logging for security purpose
// [scheme:][//[userinfo@]host][/]path[?query][#fragment] -->  [scheme:][//[***]host][/***][#***]
// if the format is not matched nothing is done, string is returned as is.
func MaskCredentialsLogging(currUrl string) string {
	masked := currUrl
	u, err := url.Parse(currUrl)
	if err != nil {
		return currUrl
	}
	if u.User != nil {
		masked = strings.Replace(masked, u.User.String(), "***", 1)
	}
	if len(u.RequestURI()) > 1 {
		masked = strings.Replace(masked, u.RequestURI(), "/***", 1)
	}
	if len(u.Fragment) > 0 {
		masked = strings.Replace(masked, u.RawFragment, "***", 1)
	}
	return masked
}
