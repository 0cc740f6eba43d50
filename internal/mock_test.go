package internal

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/stretchr/testify/mock"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
)

type MockBambooClient struct {
	mock.Mock
}

type MockSES struct {
	sesiface.SESAPI
	mock.Mock
}

func (m *MockSES) SendRawEmailWithContext(ctx aws.Context, input *ses.SendRawEmailInput, _ ...request.Option) (*ses.SendRawEmailOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(*ses.SendRawEmailOutput), args.Error(1)
}

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) ImportLeaves(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockBambooClient) GetEmployees(ctx context.Context, onlyCurrent bool) ([]bamboohr.Employee, error) {
	args := m.Called(ctx, onlyCurrent)
	return args.Get(0).([]bamboohr.Employee), args.Error(1)
}

func (m *MockBambooClient) GetEmployee(ctx context.Context, employeeID int, fieldNames ...string) (*bamboohr.Employee, error) {
	args := m.Called(ctx, employeeID, fieldNames)
	return args.Get(0).(*bamboohr.Employee), args.Error(1)
}

func (m *MockBambooClient) AddEmployee(ctx context.Context, employee bamboohr.Employee) (int, error) {
	args := m.Called(ctx, employee)
	return args.Int(0), args.Error(1)
}

func (m *MockBambooClient) UpdateEmployee(ctx context.Context, employee bamboohr.Employee) (bool, error) {
	args := m.Called(ctx, employee)
	return args.Bool(0), args.Error(1)
}

func (m *MockBambooClient) GetTabularData(ctx context.Context, employeeID string, table bamboohr.TableType) ([]map[string]string, error) {
	args := m.Called(ctx, employeeID, table)
	return args.Get(0).([]map[string]string), args.Error(1)
}

func (m *MockBambooClient) GetEmployeePhoto(ctx context.Context, employeeID int, size string) ([]byte, error) {
	args := m.Called(ctx, employeeID, size)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBambooClient) PhotoURL(email string) string {
	return m.Called(email).String(0)
}

func (m *MockBambooClient) UploadEmployeePhoto(ctx context.Context, employeeID int, data []byte, fileName string) (bool, error) {
	args := m.Called(ctx, employeeID, data, fileName)
	return args.Bool(0), args.Error(1)
}

func (m *MockBambooClient) GetTimeOffRequests(ctx context.Context, employeeID int) ([]bamboohr.TimeOffRequest, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]bamboohr.TimeOffRequest), args.Error(1)
}

func (m *MockBambooClient) GetTimeOffRequest(ctx context.Context, requestID int) (*bamboohr.TimeOffRequest, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(*bamboohr.TimeOffRequest), args.Error(1)
}

func (m *MockBambooClient) CreateTimeOffRequest(ctx context.Context, input bamboohr.TimeOffInput) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

func (m *MockBambooClient) CancelTimeOffRequest(ctx context.Context, requestID int, reason string) (bool, error) {
	args := m.Called(ctx, requestID, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockBambooClient) GetAssignedTimeOffPolicies(ctx context.Context, employeeID int) ([]bamboohr.AssignedTimeOffPolicy, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]bamboohr.AssignedTimeOffPolicy), args.Error(1)
}

func (m *MockBambooClient) GetFutureTimeOffBalanceEstimates(ctx context.Context, employeeID int, end *time.Time) ([]bamboohr.Estimate, error) {
	args := m.Called(ctx, employeeID, end)
	return args.Get(0).([]bamboohr.Estimate), args.Error(1)
}

func (m *MockBambooClient) GetWhosOut(ctx context.Context, start *time.Time, end *time.Time) ([]bamboohr.WhosOutInfo, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]bamboohr.WhosOutInfo), args.Error(1)
}

func (m *MockBambooClient) GetHolidays(ctx context.Context, start time.Time, end time.Time) ([]bamboohr.Holiday, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]bamboohr.Holiday), args.Error(1)
}

func (m *MockBambooClient) GetFields(ctx context.Context) ([]bamboohr.Field, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.Field), args.Error(1)
}

func (m *MockBambooClient) GetTabularFields(ctx context.Context) ([]bamboohr.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.Table), args.Error(1)
}

func (m *MockBambooClient) GetListFieldDetails(ctx context.Context) ([]bamboohr.ListField, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.ListField), args.Error(1)
}

func (m *MockBambooClient) AddOrUpdateListValues(ctx context.Context, listID int, values []bamboohr.ListFieldOption) (*bamboohr.ListField, error) {
	args := m.Called(ctx, listID, values)
	return args.Get(0).(*bamboohr.ListField), args.Error(1)
}

func (m *MockBambooClient) GetTimeOffTypes(ctx context.Context, mode string) (*bamboohr.TimeOffTypeInfo, error) {
	args := m.Called(ctx, mode)
	return args.Get(0).(*bamboohr.TimeOffTypeInfo), args.Error(1)
}

func (m *MockBambooClient) GetTimeOffPolicies(ctx context.Context) ([]bamboohr.TimeOffPolicy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.TimeOffPolicy), args.Error(1)
}

func (m *MockBambooClient) GetUsers(ctx context.Context) ([]bamboohr.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.User), args.Error(1)
}

func (m *MockBambooClient) GetLastChangedInfo(ctx context.Context, since time.Time, changeType string) (*bamboohr.EmployeeChanges, error) {
	args := m.Called(ctx, since, changeType)
	return args.Get(0).(*bamboohr.EmployeeChanges), args.Error(1)
}

func (m *MockBambooClient) GetReport(ctx context.Context, reportID int) (*bamboohr.Report, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(*bamboohr.Report), args.Error(1)
}

func (m *MockBambooClient) GetWebhook(ctx context.Context, webhookID int) (*bamboohr.Webhook, error) {
	args := m.Called(ctx, webhookID)
	return args.Get(0).(*bamboohr.Webhook), args.Error(1)
}

func (m *MockBambooClient) GetWebhooks(ctx context.Context) ([]bamboohr.Webhook, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.Webhook), args.Error(1)
}

func (m *MockBambooClient) AddWebhook(ctx context.Context, webhook bamboohr.Webhook) (*bamboohr.Webhook, error) {
	args := m.Called(ctx, webhook)
	return args.Get(0).(*bamboohr.Webhook), args.Error(1)
}

func (m *MockBambooClient) UpdateWebhook(ctx context.Context, webhook bamboohr.Webhook) (*bamboohr.Webhook, error) {
	args := m.Called(ctx, webhook)
	return args.Get(0).(*bamboohr.Webhook), args.Error(1)
}

func (m *MockBambooClient) DeleteWebhook(ctx context.Context, webhookID int) (bool, error) {
	args := m.Called(ctx, webhookID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBambooClient) GetWebhookMonitorFields(ctx context.Context) ([]bamboohr.WebhookMonitorField, error) {
	args := m.Called(ctx)
	return args.Get(0).([]bamboohr.WebhookMonitorField), args.Error(1)
}
