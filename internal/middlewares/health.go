package middlewares

import (
	"net/http"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/model"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/util"
)

//RuntimeHealthCheck reports the service as up along with its version
func RuntimeHealthCheck(version string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WithBodyAndStatus(model.HealthResponse{Status: "All OK", Version: version}, http.StatusOK, w)
	}
}
