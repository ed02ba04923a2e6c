package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/loader"
	"bikeshare/metrics"
	"bikeshare/session"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

// newPublisher returns a RabbitPublisher if publishing is enabled, otherwise a NoopPublisher
func newPublisher(explorerConfig *config.ExplorerConfig) (communication.ReportPublisher, error) {
	rabbitConfig := explorerConfig.RabbitMQ
	if !rabbitConfig.Enabled {
		return communication.NoopPublisher{}, nil
	}
	return communication.NewRabbitPublisher(rabbitConfig.URL, rabbitConfig.Exchange, rabbitConfig.RoutingKeyPrefix, rabbitConfig.ContentType)
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local") // Overload forces override of existing values

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
	}

	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err.Error())
	}

	publisher, err := newPublisher(explorerConfig)
	if err != nil {
		log.Fatalf("error creating report publisher: %s", err.Error())
	}

	if explorerConfig.MetricsAddress != "" {
		metricsServer := metrics.Serve(explorerConfig.MetricsAddress)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(ctx)
		}()
	}

	tripsLoader := loader.NewLoader(explorerConfig, explorerConfig.TimestampLayouts)
	explorerSession := session.NewSession(tripsLoader, publisher, explorerConfig.GetCityNames(), explorerConfig.PageSize, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- explorerSession.Run()
	}()

	signalChannel := utils.GetSignalChannel()
	select {
	case err = <-done:
		if err != nil {
			log.Errorf("[component: explorer][status: ERROR] session finished with error: %s", err.Error())
		}
	case sig := <-signalChannel:
		log.Infof("[component: explorer] signal %s received, closing", sig)
	}

	if err := publisher.Close(); err != nil {
		log.Errorf("[component: explorer][status: ERROR] error closing publisher: %s", err.Error())
	}
	log.Debug("Finish main.go")
}
