package internal

import (
	"context"
	"net/http"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/config"
)

type LeaveImporter interface {
	ImportLeaves(ctx context.Context) []string
}

func Route(importer LeaveImporter, xlsFileLocation string) (route config.Route) {
	route = config.Route{
		Path:    "/importLeaves",
		Method:  http.MethodPost,
		Handler: Handler(importer, xlsFileLocation),
	}

	return route
}

func EmployeeRoute(client bamboohr.ClientInterface) config.Route {
	return config.Route{
		Path:    "/employees/{id}",
		Method:  http.MethodGet,
		Handler: EmployeeHandler(client),
	}
}

func TimeOffRoute(client bamboohr.ClientInterface) config.Route {
	return config.Route{
		Path:    "/employees/{id}/timeoff",
		Method:  http.MethodPost,
		Handler: TimeOffHandler(client),
	}
}

func WhosOutRoute(client bamboohr.ClientInterface) config.Route {
	return config.Route{
		Path:    "/whosout",
		Method:  http.MethodGet,
		Handler: WhosOutHandler(client),
	}
}
