package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/go-playground/validator/v10"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/customhttp"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/metrics"
)

type ApplicationConfig struct {
	envValues    *envConfig
	bambooClient bamboohr.ClientInterface
	emailClient  *ses.SES
	metrics      metrics.Metrics
}

//Version returns application version
func (cfg *ApplicationConfig) Version() string {
	return cfg.envValues.Version
}

//ServerPort returns the port no to listen for requests
func (cfg *ApplicationConfig) ServerPort() int {
	return cfg.envValues.ServerPort
}

//LogLevel returns the configured logrus level name
func (cfg *ApplicationConfig) LogLevel() string {
	return cfg.envValues.LogLevel
}

//BambooClient returns the BambooHR API client
func (cfg *ApplicationConfig) BambooClient() bamboohr.ClientInterface {
	return cfg.bambooClient
}

//XlsFileLocation returns the file location to read the leave requests
func (cfg *ApplicationConfig) XlsFileLocation() string {
	return cfg.envValues.XlsFileLocation
}

//EmailClient returns the ses client with config
func (cfg *ApplicationConfig) EmailClient() *ses.SES {
	return cfg.emailClient
}

//EmailTo returns the to email address
func (cfg *ApplicationConfig) EmailTo() string {
	return cfg.envValues.EmailTo
}

//EmailFrom returns the From email address
func (cfg *ApplicationConfig) EmailFrom() string {
	return cfg.envValues.EmailFrom
}

//Metrics returns the prometheus metrics of the service
func (cfg *ApplicationConfig) Metrics() metrics.Metrics {
	return cfg.metrics
}

//NewApplicationConfig loads config values from environment and initialises config
func NewApplicationConfig() (*ApplicationConfig, error) {
	envValues := NewEnvironmentConfig()
	if err := validator.New().Struct(envValues); err != nil {
		return nil, fmt.Errorf("invalid environment config: %w", err)
	}

	appMetrics := metrics.New()
	httpCommand := NewHTTPCommand(time.Duration(envValues.HTTPTimeoutSeconds)*time.Second, appMetrics)
	bambooClient := bamboohr.NewClient(envValues.BambooAPIURL, envValues.BambooCompanyURL, envValues.BambooAPIKey, httpCommand)

	sess, err := session.NewSession(aws.NewConfig().WithRegion(envValues.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &ApplicationConfig{
		envValues:    envValues,
		bambooClient: bambooClient,
		emailClient:  ses.New(sess),
		metrics:      appMetrics,
	}, nil
}

// NewHTTPCommand returns the HTTP client
func NewHTTPCommand(timeout time.Duration, m metrics.Metrics) customhttp.HTTPCommand {
	httpCommand := customhttp.New(
		customhttp.WithHTTPClient(&http.Client{Timeout: timeout}),
		customhttp.WithMetrics(m),
		customhttp.WithRequestLogging(),
	).Build()

	return httpCommand
}
