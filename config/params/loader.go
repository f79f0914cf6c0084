package params

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// UnmarshalConfig converts hex values into valid param yaml format and unmarshals
// the result on top of a copy of the given base config.
func UnmarshalConfig(yamlFile []byte, base *BeaconChainConfig) (*BeaconChainConfig, error) {
	conf := base.Copy()
	hasConfigName := false
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts, err := ReplaceHexStringWithYAMLFormat(line)
			if err != nil {
				return nil, errors.Wrapf(err, "could not parse config line %d", i+1)
			}
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml")
		}
		log.WithError(err).Error("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	conf.InitializeForkSchedule()
	return conf, nil
}

// LoadChainConfigFile load, convert hex values into valid param yaml format,
// unmarshal, and apply beacon chain config file.
func LoadChainConfigFile(chainConfigFileName string) error {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "failed to read chain config file")
	}
	conf, err := UnmarshalConfig(yamlFile, MainnetConfig())
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
	return nil
}

// ReplaceHexStringWithYAMLFormat will replace hex strings that the yaml parser will understand.
func ReplaceHexStringWithYAMLFormat(line string) ([]string, error) {
	parts := strings.Split(line, "0x")
	decoded, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode hex string")
	}
	var fixed []byte
	switch l := len(decoded); {
	case l == 1:
		fixed, err = yaml.Marshal(decoded[0])
		if err != nil {
			return nil, err
		}
		parts[0] += string(fixed)
		return parts[:1], nil
	case l > 1 && l <= 4:
		var arr [4]byte
		copy(arr[:], decoded)
		fixed, err = yaml.Marshal(arr)
	case l > 4 && l <= 32:
		var arr [32]byte
		copy(arr[:], decoded)
		fixed, err = yaml.Marshal(arr)
	default:
		return nil, errors.Errorf("unsupported hex value length %d", l)
	}
	if err != nil {
		return nil, err
	}
	parts[1] = string(fixed)
	return parts, nil
}
