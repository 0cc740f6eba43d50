package bamboohr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

func (c *client) GetEmployees(ctx context.Context, onlyCurrent bool) ([]Employee, error) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Info("Fetching the employee directory report, only current: ", onlyCurrent)

	body, err := employeeReportXML()
	if err != nil {
		return nil, err
	}

	r := newRequest(c.buildEmployeeReportEndpoint(), http.MethodPost, JSONMode).withBody(contentTypeXML, body)
	if !onlyCurrent {
		// Ignores effective dates so new employees come back with their department and division.
		r.withQuery("onlyCurrent", "false")
	}

	report, err := call(ctx, c, r, statusPolicy[employeeReport]{
		http.StatusOK: decodeBody[employeeReport](),
	})
	if err != nil {
		return nil, err
	}
	return report.Employees, nil
}

func (c *client) GetEmployee(ctx context.Context, employeeID int, fieldNames ...string) (*Employee, error) {
	r := newRequest(c.buildEmployeeEndpoint(employeeID), http.MethodGet, JSONMode)
	if len(fieldNames) > 0 {
		r.withQuery("fields", strings.Join(fieldNames, ","))
	}

	employee, err := call(ctx, c, r, statusPolicy[Employee]{
		http.StatusOK: decodeBody[Employee](),
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// AddEmployee returns the id of the created employee.
func (c *client) AddEmployee(ctx context.Context, employee Employee) (int, error) {
	path := c.buildEmployeesEndpoint()
	if err := validate.StructPartial(employee, "FirstName", "LastName"); err != nil {
		return 0, invalidInput(path, "first and last name are required to add an employee", err)
	}

	body, err := employeeToXML(employee)
	if err != nil {
		return 0, invalidInput(path, "could not encode employee", err)
	}

	r := newRequest(path, http.MethodPost, XMLMode).withBody(contentTypeXML, body)
	return call(ctx, c, r, statusPolicy[int]{
		http.StatusCreated:  createdID(),
		http.StatusConflict: failWith[int](ErrDuplicateEmail, "an employee with email %q already exists", employee.WorkEmail),
	})
}

func (c *client) UpdateEmployee(ctx context.Context, employee Employee) (bool, error) {
	path := c.buildEmployeeEndpoint(int(employee.ID))
	if err := validate.StructPartial(employee, "ID"); err != nil {
		return false, invalidInput(path, "an id is required to update an employee", err)
	}

	body, err := employeeToXML(employee)
	if err != nil {
		return false, invalidInput(path, "could not encode employee", err)
	}

	r := newRequest(path, http.MethodPost, XMLMode).withBody(contentTypeXML, body)
	return call(ctx, c, r, statusPolicy[bool]{
		http.StatusOK:         acknowledge(),
		http.StatusBadRequest: failWith[bool](ErrBadPayload, "bad XML trying to update employee %d", employee.ID),
		http.StatusForbidden:  failWith[bool](ErrForbidden, "not allowed to update employee %d", employee.ID),
		http.StatusNotFound:   failWith[bool](ErrNotFound, "employee %d not found", employee.ID),
	})
}

func (c *client) GetTabularData(ctx context.Context, employeeID string, table TableType) ([]map[string]string, error) {
	r := newRequest(fmt.Sprintf("/employees/%s/tables/%s/", employeeID, table), http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]map[string]string]{
		http.StatusOK: decodeBody[[]map[string]string](),
	})
}

func (c *client) GetReport(ctx context.Context, reportID int) (*Report, error) {
	r := newRequest("/reports/"+itoa(reportID), http.MethodGet, JSONMode)
	report, err := call(ctx, c, r, statusPolicy[Report]{
		http.StatusOK: decodeBody[Report](),
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *client) buildEmployeesEndpoint() string {
	return "/employees/"
}

func (c *client) buildEmployeeEndpoint(employeeID int) string {
	return "/employees/" + itoa(employeeID)
}

func (c *client) buildEmployeeReportEndpoint() string {
	return "/reports/custom"
}
