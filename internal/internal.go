package internal

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/service/ses"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/config"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/metrics"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/middlewares"
)

//StatusRoute health check route
func StatusRoute(version string) (route config.Route) {
	route = config.Route{
		Path:    "/health",
		Method:  http.MethodGet,
		Handler: middlewares.RuntimeHealthCheck(version),
	}
	return route
}

type ServerConfig interface {
	Version() string
	BambooClient() bamboohr.ClientInterface
	XlsFileLocation() string
	EmailClient() *ses.SES
	EmailTo() string
	EmailFrom() string
	Metrics() metrics.Metrics
}

func SetupServer(cfg ServerConfig) *config.Server {
	basePath := fmt.Sprintf("/%v", cfg.Version())
	client := cfg.BambooClient()
	service := NewService(client, cfg.XlsFileLocation(), cfg.EmailClient(), cfg.EmailTo(), cfg.EmailFrom())
	server := config.NewServer(config.WithMetrics(cfg.Metrics())).
		WithRoutes(
			"", StatusRoute(cfg.Version()),
		).
		WithRoutes(
			basePath,
			Route(service, cfg.XlsFileLocation()),
			EmployeeRoute(client),
			TimeOffRoute(client),
			WhosOutRoute(client),
		)
	return server
}
