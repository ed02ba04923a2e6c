package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath    = "./config/config.yaml"
	configFilepathEnvVarName = "BIKESHARE_CONFIG"
	dataDirEnvVarName        = "BIKESHARE_DATA_DIR"
	rabbitUrlEnvVarName      = "RABBIT_URL"
	metricsAddressEnvVarName = "METRICS_ADDRESS"
	defaultPageSize          = 5
)

var defaultTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
}

// CityConfig files of a city, relative to DataDir
// + Trips: csv with the trips, required
// + Stations: csv with Name, Latitude and Longitude of the stations, optional
type CityConfig struct {
	Trips    string `yaml:"trips"`
	Stations string `yaml:"stations"`
}

// RabbitMQConfig where the reports are published when Enabled is true
type RabbitMQConfig struct {
	Enabled          bool                                    `yaml:"enabled"`
	URL              string                                  `yaml:"url"`
	Exchange         communication.ExchangeDeclarationConfig `yaml:"exchange"`
	RoutingKeyPrefix string                                  `yaml:"routing_key_prefix"`
	ContentType      string                                  `yaml:"content_type"`
}

type ExplorerConfig struct {
	DataDir          string                `yaml:"data_dir"`
	Cities           map[string]CityConfig `yaml:"cities"`
	TimestampLayouts []string              `yaml:"timestamp_layouts"`
	PageSize         int                   `yaml:"page_size"`
	MetricsAddress   string                `yaml:"metrics_address"`
	RabbitMQ         RabbitMQConfig        `yaml:"rabbitmq"`
}

// LoadConfig reads the config file pointed by BIKESHARE_CONFIG, or ./config/config.yaml if it is not set
func LoadConfig() (*ExplorerConfig, error) {
	configFilepath := os.Getenv(configFilepathEnvVarName)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadConfigFromFile(configFilepath)
}

// LoadConfigFromFile reads the given config file, applies the env var overrides and fills the defaults
func LoadConfigFromFile(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if value := os.Getenv(dataDirEnvVarName); value != "" {
		explorerConfig.DataDir = value
	}
	if value := os.Getenv(rabbitUrlEnvVarName); value != "" {
		explorerConfig.RabbitMQ.URL = value
	}
	if value := os.Getenv(metricsAddressEnvVarName); value != "" {
		explorerConfig.MetricsAddress = value
	}

	explorerConfig.setDefaults()
	return &explorerConfig, nil
}

func (ec *ExplorerConfig) setDefaults() {
	if len(ec.Cities) == 0 {
		ec.Cities = map[string]CityConfig{
			"chicago":       {Trips: "chicago.csv"},
			"new york city": {Trips: "new_york_city.csv"},
			"washington":    {Trips: "washington.csv"},
		}
	}
	if len(ec.TimestampLayouts) == 0 {
		ec.TimestampLayouts = defaultTimestampLayouts
	}
	if ec.PageSize <= 0 {
		ec.PageSize = defaultPageSize
	}
	if ec.RabbitMQ.Exchange.Type == "" {
		ec.RabbitMQ.Exchange.Type = "topic"
	}
	if ec.RabbitMQ.ContentType == "" {
		ec.RabbitMQ.ContentType = "application/json"
	}
}

// GetCityNames returns the configured cities sorted by name
func (ec *ExplorerConfig) GetCityNames() []string {
	names := make([]string, 0, len(ec.Cities))
	for name := range ec.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTripsFilepath returns the path of the trips file of the city
func (ec *ExplorerConfig) GetTripsFilepath(city string) (string, error) {
	cityConfig, ok := ec.Cities[city]
	if !ok {
		return "", fmt.Errorf("%w: %s", dataErrors.ErrUnknownCity, city)
	}
	return filepath.Join(ec.DataDir, cityConfig.Trips), nil
}

// GetStationsFilepath returns the path of the stations file of the city. The boolean is false if the city has none
func (ec *ExplorerConfig) GetStationsFilepath(city string) (string, bool) {
	cityConfig, ok := ec.Cities[city]
	if !ok || cityConfig.Stations == "" {
		return "", false
	}
	return filepath.Join(ec.DataDir, cityConfig.Stations), true
}
