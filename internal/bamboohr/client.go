package bamboohr

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/customhttp"
)

// The API key is the basic auth user name; the password is ignored.
const basicAuthPassword = "x"

var validate = validator.New()

type ClientInterface interface {
	GetEmployees(ctx context.Context, onlyCurrent bool) ([]Employee, error)
	GetEmployee(ctx context.Context, employeeID int, fieldNames ...string) (*Employee, error)
	AddEmployee(ctx context.Context, employee Employee) (int, error)
	UpdateEmployee(ctx context.Context, employee Employee) (bool, error)
	GetTabularData(ctx context.Context, employeeID string, table TableType) ([]map[string]string, error)

	GetEmployeePhoto(ctx context.Context, employeeID int, size string) ([]byte, error)
	PhotoURL(email string) string
	UploadEmployeePhoto(ctx context.Context, employeeID int, data []byte, fileName string) (bool, error)

	GetTimeOffRequests(ctx context.Context, employeeID int) ([]TimeOffRequest, error)
	GetTimeOffRequest(ctx context.Context, requestID int) (*TimeOffRequest, error)
	CreateTimeOffRequest(ctx context.Context, input TimeOffInput) (int, error)
	CancelTimeOffRequest(ctx context.Context, requestID int, reason string) (bool, error)
	GetAssignedTimeOffPolicies(ctx context.Context, employeeID int) ([]AssignedTimeOffPolicy, error)
	GetFutureTimeOffBalanceEstimates(ctx context.Context, employeeID int, end *time.Time) ([]Estimate, error)
	GetWhosOut(ctx context.Context, start *time.Time, end *time.Time) ([]WhosOutInfo, error)
	GetHolidays(ctx context.Context, start time.Time, end time.Time) ([]Holiday, error)

	GetFields(ctx context.Context) ([]Field, error)
	GetTabularFields(ctx context.Context) ([]Table, error)
	GetListFieldDetails(ctx context.Context) ([]ListField, error)
	AddOrUpdateListValues(ctx context.Context, listID int, values []ListFieldOption) (*ListField, error)
	GetTimeOffTypes(ctx context.Context, mode string) (*TimeOffTypeInfo, error)
	GetTimeOffPolicies(ctx context.Context) ([]TimeOffPolicy, error)
	GetUsers(ctx context.Context) ([]User, error)

	GetLastChangedInfo(ctx context.Context, since time.Time, changeType string) (*EmployeeChanges, error)
	GetReport(ctx context.Context, reportID int) (*Report, error)

	GetWebhook(ctx context.Context, webhookID int) (*Webhook, error)
	GetWebhooks(ctx context.Context) ([]Webhook, error)
	AddWebhook(ctx context.Context, webhook Webhook) (*Webhook, error)
	UpdateWebhook(ctx context.Context, webhook Webhook) (*Webhook, error)
	DeleteWebhook(ctx context.Context, webhookID int) (bool, error)
	GetWebhookMonitorFields(ctx context.Context) ([]WebhookMonitorField, error)
}

func NewClient(endpoint string, companyURL string, apiKey string, c customhttp.HTTPCommand) *client {
	return &client{
		URL:         strings.TrimRight(endpoint, "/"),
		CompanyURL:  strings.TrimRight(companyURL, "/"),
		APIKey:      apiKey,
		HTTPCommand: c,
		now:         time.Now,
	}
}

type client struct {
	URL         string
	CompanyURL  string
	APIKey      string
	HTTPCommand customhttp.HTTPCommand

	now func() time.Time
}

func invalidInput(path string, message string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidInput,
		Path:    path,
		Message: message,
		Err:     err,
	}
}
