package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/model"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/util"
)

const (
	supportedFileFormat = ".xlsx"
	maxUploadSize       = 32 << 20
)

var validate = validator.New()

//Handler func
func Handler(importer LeaveImporter, xlsFileLocation string) func(res http.ResponseWriter, req *http.Request) {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		if err := req.ParseMultipartForm(maxUploadSize); err != nil {
			contextLogger.WithError(err).Error("Failed to parse request body")
			util.WithError("request must be a multipart upload with a file field", http.StatusBadRequest, res)
			return
		}

		file, fileHeader, err := req.FormFile("file")
		if err != nil {
			contextLogger.WithError(err).Error("Failed to get the file from request")
			util.WithError("missing file field", http.StatusBadRequest, res)
			return
		}
		defer file.Close()

		if filepath.Ext(fileHeader.Filename) != supportedFileFormat {
			contextLogger.Error("Unable to open the uploaded file. Please confirm the file is in .xlsx format.")
			util.WithError("Please confirm the file is in .xlsx format.", http.StatusBadRequest, res)
			return
		}

		if err := saveUpload(file, xlsFileLocation); err != nil {
			contextLogger.WithError(err).Error("Failed to save the uploaded file")
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, res)
			return
		}

		errResult := importer.ImportLeaves(ctx)
		if len(errResult) > 0 {
			contextLogger.Error("There were some errors during processing leaves")
			util.WithBodyAndStatus(errResult, http.StatusInternalServerError, res)
			return
		}
		util.WithBodyAndStatus("", http.StatusOK, res)
	}
}

func saveUpload(file io.Reader, location string) error {
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, file); err != nil {
		return fmt.Errorf("copy file contents to buffer: %w", err)
	}

	excelFile, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		return fmt.Errorf("convert bytes to excel file: %w", err)
	}

	if err := excelFile.Save(location); err != nil {
		return fmt.Errorf("save excel file to disk: %w", err)
	}
	return nil
}

//EmployeeHandler returns a single employee, limited to the requested fields
func EmployeeHandler(client bamboohr.ClientInterface) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		id, ok := employeeID(req)
		if !ok {
			util.WithError("employee id must be a positive number", http.StatusBadRequest, res)
			return
		}

		fields := splitFields(req.URL.Query().Get("fields"))
		if unknown := bamboohr.UnknownFields(fields); len(unknown) > 0 {
			util.WithError("unknown fields: "+strings.Join(unknown, ", "), http.StatusBadRequest, res)
			return
		}

		employee, err := client.GetEmployee(ctx, id, fields...)
		if err != nil {
			log.WithContext(ctx).WithError(err).Errorf("Failed to fetch employee %d", id)
			writeClientError(err, res)
			return
		}
		util.WithBodyAndStatus(employee, http.StatusOK, res)
	}
}

//TimeOffHandler books an approved time off request for the employee
func TimeOffHandler(client bamboohr.ClientInterface) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		contextLogger := log.WithContext(ctx)

		id, ok := employeeID(req)
		if !ok {
			util.WithError("employee id must be a positive number", http.StatusBadRequest, res)
			return
		}

		var body model.TimeOffRequestBody
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			util.WithError("request body must be valid JSON", http.StatusBadRequest, res)
			return
		}
		if err := validate.Struct(body); err != nil {
			util.WithError(err.Error(), http.StatusBadRequest, res)
			return
		}

		// The validator already checked both layouts.
		start, _ := time.Parse(model.DateLayout, body.Start)
		end, _ := time.Parse(model.DateLayout, body.End)

		holidays, err := client.GetHolidays(ctx, start, end)
		if err != nil {
			contextLogger.WithError(err).Error("Failed to fetch holidays from BambooHR")
			writeClientError(err, res)
			return
		}

		requestID, err := client.CreateTimeOffRequest(ctx, bamboohr.TimeOffInput{
			EmployeeID:   id,
			TypeID:       body.TypeID,
			Start:        start,
			End:          end,
			StartHalfDay: body.StartHalfDay,
			EndHalfDay:   body.EndHalfDay,
			Comment:      body.Comment,
			Holidays:     bamboohr.HolidayDates(holidays),
		})
		if err != nil {
			contextLogger.WithError(err).Errorf("Failed to create time off request for employee %d", id)
			writeClientError(err, res)
			return
		}
		util.WithBodyAndStatus(model.CreatedResponse{ID: requestID}, http.StatusCreated, res)
	}
}

//WhosOutHandler lists who is out between the optional start and end dates
func WhosOutHandler(client bamboohr.ClientInterface) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		start, err := optionalDate(req.URL.Query().Get("start"))
		if err != nil {
			util.WithError("start must be formatted as "+model.DateLayout, http.StatusBadRequest, res)
			return
		}
		end, err := optionalDate(req.URL.Query().Get("end"))
		if err != nil {
			util.WithError("end must be formatted as "+model.DateLayout, http.StatusBadRequest, res)
			return
		}

		whosOut, err := client.GetWhosOut(ctx, start, end)
		if err != nil {
			log.WithContext(ctx).WithError(err).Error("Failed to fetch who is out from BambooHR")
			writeClientError(err, res)
			return
		}
		util.WithBodyAndStatus(whosOut, http.StatusOK, res)
	}
}

func employeeID(req *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(req)["id"])
	return id, err == nil && id > 0
}

func splitFields(raw string) []string {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func clientErrorStatus(err error) int {
	switch {
	case errors.Is(err, bamboohr.ErrNotFound), errors.Is(err, bamboohr.ErrUnknownEmployee):
		return http.StatusNotFound
	case errors.Is(err, bamboohr.ErrBadPayload), errors.Is(err, bamboohr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, bamboohr.ErrForbidden), errors.Is(err, bamboohr.ErrNotEditable):
		return http.StatusForbidden
	case errors.Is(err, bamboohr.ErrDuplicateEmail), errors.Is(err, bamboohr.ErrDuplicateValue):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func writeClientError(err error, res http.ResponseWriter) {
	util.WithError(err.Error(), clientErrorStatus(err), res)
}
