package bamboohr

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const timeOffRequestsEndpoint = "/time_off/requests/"

func (c *client) GetTimeOffRequests(ctx context.Context, employeeID int) ([]TimeOffRequest, error) {
	r := newRequest(timeOffRequestsEndpoint, http.MethodGet, JSONMode).withQuery("employeeId", itoa(employeeID))
	return call(ctx, c, r, statusPolicy[[]TimeOffRequest]{
		http.StatusOK: decodeBody[[]TimeOffRequest](),
	})
}

func (c *client) GetTimeOffRequest(ctx context.Context, requestID int) (*TimeOffRequest, error) {
	r := newRequest(timeOffRequestsEndpoint, http.MethodGet, JSONMode).withQuery("id", itoa(requestID))
	requests, err := call(ctx, c, r, statusPolicy[[]TimeOffRequest]{
		http.StatusOK: decodeBody[[]TimeOffRequest](),
	})
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, &Error{
			Kind:       ErrMissingData,
			Path:       r.Path,
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("time off request %d not in response from %s", requestID, r.Path),
		}
	}
	return &requests[0], nil
}

// CreateTimeOffRequest creates an approved request and returns its id. A
// request starting before today also gets a history entry. A failure to write
// it is reported as ErrHistoryEntry together with the id of the request, which
// exists regardless.
func (c *client) CreateTimeOffRequest(ctx context.Context, input TimeOffInput) (int, error) {
	contextLogger := log.WithContext(ctx)
	path := fmt.Sprintf("/employees/%d/time_off/request", input.EmployeeID)

	start, end := truncateDay(input.Start), truncateDay(input.End)
	if start.After(end) {
		return 0, invalidInput(path, fmt.Sprintf("time off start %s is after end %s", start.Format(dateFormat), end.Format(dateFormat)), nil)
	}

	r := newRequest(path, http.MethodPut, XMLMode).withBody(contentTypeXML, timeOffRequestXML(input))
	id, err := call(ctx, c, r, statusPolicy[int]{
		http.StatusCreated:  createdID(),
		http.StatusNotFound: failWith[int](ErrNotFound, "can't create time off request, employee %d not found", input.EmployeeID),
	})
	if err != nil {
		return 0, err
	}
	contextLogger.Infof("Created time off request %d for employee %d", id, input.EmployeeID)

	if start.Before(truncateDay(c.now())) {
		if err := c.addTimeOffHistoryEntry(ctx, input.EmployeeID, id, input.Start); err != nil {
			contextLogger.WithError(err).Errorf("history entry for time off request %d failed", id)
			return id, &Error{
				Kind:    ErrHistoryEntry,
				Path:    r.Path,
				Message: fmt.Sprintf("time off request %d was created but its history entry failed", id),
				Err:     err,
			}
		}
	}
	return id, nil
}

func (c *client) addTimeOffHistoryEntry(ctx context.Context, employeeID int, requestID int, date time.Time) error {
	path := fmt.Sprintf("/employees/%d/time_off/history/", employeeID)
	r := newRequest(path, http.MethodPut, XMLMode).withBody(contentTypeXML, historyEntryXML(date, requestID))
	_, err := call(ctx, c, r, statusPolicy[bool]{
		http.StatusCreated: acknowledge(),
	})
	return err
}

func (c *client) CancelTimeOffRequest(ctx context.Context, requestID int, reason string) (bool, error) {
	path := fmt.Sprintf("/time_off/requests/%d/status/", requestID)
	r := newRequest(path, http.MethodPut, XMLMode).withBody(contentTypeXML, cancelRequestXML(reason))
	return call(ctx, c, r, statusPolicy[bool]{
		http.StatusOK: acknowledge(),
	})
}

func (c *client) GetAssignedTimeOffPolicies(ctx context.Context, employeeID int) ([]AssignedTimeOffPolicy, error) {
	r := newRequest(fmt.Sprintf("/employees/%d/time_off/policies/", employeeID), http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]AssignedTimeOffPolicy]{
		http.StatusOK: decodeBody[[]AssignedTimeOffPolicy](),
	})
}

func (c *client) GetFutureTimeOffBalanceEstimates(ctx context.Context, employeeID int, end *time.Time) ([]Estimate, error) {
	r := newRequest(fmt.Sprintf("/employees/%d/time_off/calculator/", employeeID), http.MethodGet, JSONMode)
	if end != nil {
		r.withQuery("end", end.Format(dateFormat))
	}
	return call(ctx, c, r, statusPolicy[[]Estimate]{
		http.StatusOK: decodeBody[[]Estimate](),
	})
}

func (c *client) GetWhosOut(ctx context.Context, start *time.Time, end *time.Time) ([]WhosOutInfo, error) {
	r := newRequest("/time_off/whos_out/", http.MethodGet, JSONMode)
	if start != nil {
		r.withQuery("start", start.Format(dateFormat))
	}
	if end != nil {
		r.withQuery("end", end.Format(dateFormat))
	}
	return call(ctx, c, r, statusPolicy[[]WhosOutInfo]{
		http.StatusOK: decodeBody[[]WhosOutInfo](),
	})
}

func (c *client) GetHolidays(ctx context.Context, start time.Time, end time.Time) ([]Holiday, error) {
	r := newRequest("/time_off/holidays/", http.MethodGet, JSONMode).
		withQuery("start", start.Format(dateFormat)).
		withQuery("end", end.Format(dateFormat))
	return call(ctx, c, r, statusPolicy[[]Holiday]{
		http.StatusOK: decodeBody[[]Holiday](),
	})
}

// HolidayDates expands each holiday into the calendar days it covers.
func HolidayDates(holidays []Holiday) []time.Time {
	var dates []time.Time
	for _, h := range holidays {
		if h.Start == nil {
			continue
		}
		last := h.Start.Time
		if h.End != nil && !h.End.IsZero() {
			last = h.End.Time
		}
		for d := truncateDay(h.Start.Time); !d.After(truncateDay(last)); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	}
	return dates
}
