package bamboohr

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"
)

func (c *client) GetFields(ctx context.Context) ([]Field, error) {
	r := newRequest("/meta/fields/", http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]Field]{
		http.StatusOK: decodeBody[[]Field](),
	})
}

func (c *client) GetTabularFields(ctx context.Context) ([]Table, error) {
	r := newRequest("/meta/tables/", http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]Table]{
		http.StatusOK: decodeBody[[]Table](),
	})
}

func (c *client) GetListFieldDetails(ctx context.Context) ([]ListField, error) {
	r := newRequest("/meta/lists/", http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]ListField]{
		http.StatusOK: decodeBody[[]ListField](),
	})
}

// AddOrUpdateListValues adds options without an id and renames or archives
// the ones with an id. The remote answers with the whole list as XML.
func (c *client) AddOrUpdateListValues(ctx context.Context, listID int, values []ListFieldOption) (*ListField, error) {
	path := fmt.Sprintf("/meta/lists/%d", listID)
	body, err := listOptionsXML(values)
	if err != nil {
		return nil, invalidInput(path, "could not encode list options", err)
	}

	r := newRequest(path, http.MethodPut, XMLMode).withBody(contentTypeXML, body)
	list, err := call(ctx, c, r, statusPolicy[ListField]{
		http.StatusOK:         decodeBody[ListField](),
		http.StatusBadRequest: failWith[ListField](ErrBadPayload, "bad XML trying to add or update values of list %d", listID),
		http.StatusForbidden:  failWith[ListField](ErrNotEditable, "list %d is not editable", listID),
		http.StatusNotFound:   failWith[ListField](ErrNotFound, "list %d or one of its options not found", listID),
		http.StatusConflict:   failWith[ListField](ErrDuplicateValue, "can't create a duplicate value in list %d", listID),
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTimeOffTypes lists the time off types. Mode "request" limits the result
// to the types the API user can request.
func (c *client) GetTimeOffTypes(ctx context.Context, mode string) (*TimeOffTypeInfo, error) {
	r := newRequest("/meta/time_off/types/", http.MethodGet, JSONMode)
	if mode != "" {
		r.withQuery("mode", mode)
	}
	info, err := call(ctx, c, r, statusPolicy[TimeOffTypeInfo]{
		http.StatusOK: decodeBody[TimeOffTypeInfo](),
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *client) GetTimeOffPolicies(ctx context.Context) ([]TimeOffPolicy, error) {
	r := newRequest("/meta/time_off/policies/", http.MethodGet, JSONMode)
	return call(ctx, c, r, statusPolicy[[]TimeOffPolicy]{
		http.StatusOK: decodeBody[[]TimeOffPolicy](),
	})
}

// GetUsers returns the users ordered by id.
func (c *client) GetUsers(ctx context.Context) ([]User, error) {
	r := newRequest("/meta/users/", http.MethodGet, JSONMode)
	byID, err := call(ctx, c, r, statusPolicy[map[string]User]{
		http.StatusOK: decodeBody[map[string]User](),
	})
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(byID))
	for _, u := range byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (c *client) GetLastChangedInfo(ctx context.Context, since time.Time, changeType string) (*EmployeeChanges, error) {
	r := newRequest("/employees/changed/", http.MethodGet, JSONMode).withQuery("since", since.Format(time.RFC3339))
	if changeType != "" {
		r.withQuery("type", changeType)
	}
	changes, err := call(ctx, c, r, statusPolicy[EmployeeChanges]{
		http.StatusOK: decodeBody[EmployeeChanges](),
	})
	if err != nil {
		return nil, err
	}
	return &changes, nil
}
