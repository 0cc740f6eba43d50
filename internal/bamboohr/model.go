package bamboohr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateFormat = "2006-01-02"

	// zeroDateText is how the remote writes an unset date.
	zeroDateText = "0000-00-00"
)

// Date is a calendar date as the API writes it (yyyy-MM-dd).
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: truncateDay(t)}
}

func (d Date) String() string {
	return d.Format(dateFormat)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Date) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == zeroDateText {
		return nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// FlexInt accepts identifiers written either as JSON numbers or as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexInt(v)
	return nil
}

func (f *FlexInt) UnmarshalText(b []byte) error {
	return f.UnmarshalJSON(b)
}

// FlexString accepts a JSON string or number and keeps its text.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

type Employee struct {
	ID          FlexInt    `json:"id,omitempty" validate:"gt=0"`
	LastChanged *time.Time `json:"lastChanged,omitempty"`
	Status      string     `json:"status,omitempty"`

	FirstName     string `json:"firstName,omitempty" validate:"required"`
	MiddleName    string `json:"middleName,omitempty"`
	LastName      string `json:"lastName,omitempty" validate:"required"`
	Nickname      string `json:"nickname,omitempty"`
	PreferredName string `json:"preferredName,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   *Date  `json:"dateOfBirth,omitempty"`
	Age           string `json:"age,omitempty"`

	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`

	HomeEmail   string `json:"homeEmail,omitempty"`
	HomePhone   string `json:"homePhone,omitempty"`
	MobilePhone string `json:"mobilePhone,omitempty"`

	WorkEmail              string `json:"workEmail,omitempty"`
	WorkPhone              string `json:"workPhone,omitempty"`
	WorkPhoneExtension     string `json:"workPhoneExtension,omitempty"`
	WorkPhonePlusExtension string `json:"workPhonePlusExtension,omitempty"`

	JobTitle   string `json:"jobTitle,omitempty"`
	Department string `json:"department,omitempty"`
	Location   string `json:"location,omitempty"`
	Division   string `json:"division,omitempty"`

	HireDate        *Date `json:"hireDate,omitempty"`
	TerminationDate *Date `json:"terminationDate,omitempty"`

	Supervisor      string `json:"supervisor,omitempty"`
	SupervisorID    string `json:"supervisorId,omitempty"`
	SupervisorEID   string `json:"supervisorEid,omitempty"`
	SupervisorEmail string `json:"supervisorEmail,omitempty"`

	PayRate      string `json:"payRate,omitempty"`
	PayType      string `json:"payType,omitempty"`
	PaidPer      string `json:"paidPer,omitempty"`
	PaySchedule  string `json:"paySchedule,omitempty"`
	PayFrequency string `json:"payFrequency,omitempty"`
}

// FirstLast prefers the nickname over the first name.
func (e Employee) FirstLast() string {
	if strings.TrimSpace(e.Nickname) != "" {
		return e.Nickname + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}

func (e Employee) LastFirst() string {
	if strings.TrimSpace(e.Nickname) != "" {
		return e.LastName + ", " + e.Nickname
	}
	return e.LastName + ", " + e.FirstName
}

type Field struct {
	ID    FlexString `json:"id"`
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Alias string     `json:"alias,omitempty"`
}

type Table struct {
	Alias  string  `json:"alias"`
	Fields []Field `json:"fields"`
}

type TableType string

const (
	JobInfo           TableType = "jobInfo"
	EmploymentStatus  TableType = "employmentStatus"
	Compensation      TableType = "compensation"
	EmergencyContacts TableType = "emergencyContacts"
	Dependents        TableType = "dependents"
)

// Report is a saved company report. Rows are keyed by field id.
type Report struct {
	Title     string                   `json:"title"`
	Fields    []Field                  `json:"fields"`
	Employees []map[string]interface{} `json:"employees"`
}

type employeeReport struct {
	Title     string     `json:"title"`
	Fields    []Field    `json:"fields"`
	Employees []Employee `json:"employees"`
}

type ListField struct {
	FieldID    int               `json:"fieldId" xml:"fieldId,attr"`
	Alias      string            `json:"alias" xml:"alias,attr"`
	Manageable string            `json:"manageable" xml:"manageable,attr"`
	Multiple   string            `json:"multiple" xml:"multiple,attr"`
	Name       string            `json:"name" xml:"name"`
	Options    []ListFieldOption `json:"options" xml:"options>option"`
}

type ListFieldOption struct {
	ID           int    `json:"id" xml:"id,attr"`
	Archived     string `json:"archived" xml:"archived,attr"`
	Value        string `json:"name" xml:",chardata"`
	CreatedDate  string `json:"createdDate,omitempty" xml:"createdDate,attr"`
	ArchivedDate string `json:"archivedDate,omitempty" xml:"archivedDate,attr"`
}

type User struct {
	ID         FlexInt `json:"id"`
	EmployeeID FlexInt `json:"employeeId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Status     string  `json:"status"`
	LastLogin  string  `json:"lastLogin"`
}

func (u User) FirstLast() string {
	return u.FirstName + " " + u.LastName
}

func (u User) LastFirst() string {
	return u.LastName + ", " + u.FirstName
}

type EmployeeChanges struct {
	Latest    string                    `json:"latest"`
	Employees map[string]EmployeeChange `json:"employees"`
}

type EmployeeChange struct {
	ID          FlexInt `json:"id"`
	Action      string  `json:"action"`
	LastChanged string  `json:"lastChanged"`
}

type TimeOffRequest struct {
	ID         FlexInt                    `json:"id"`
	EmployeeID FlexInt                    `json:"employeeId"`
	Name       string                     `json:"name"`
	Status     TimeOffStatus              `json:"status"`
	Start      *Date                      `json:"start"`
	End        *Date                      `json:"end"`
	Created    *Date                      `json:"created"`
	Type       TimeOffType                `json:"type"`
	Amount     TimeOffAmount              `json:"amount"`
	Actions    map[string]bool            `json:"actions"`
	Dates      map[string]decimal.Decimal `json:"dates"`
	Notes      Notes                      `json:"notes"`
}

// Notes maps the author role ("employee", "manager") to the note text. The
// remote writes an empty set as [] instead of {}.
type Notes map[string]string

func (n *Notes) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		if len(list) > 0 {
			return fmt.Errorf("notes: expected an object, got an array of %d elements", len(list))
		}
		*n = Notes{}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	*n = m
	return nil
}

type TimeOffStatus struct {
	LastChanged         string  `json:"lastChanged"`
	LastChangedByUserID FlexInt `json:"lastChangedByUserId"`
	Status              string  `json:"status"`
}

type TimeOffAmount struct {
	Unit   string          `json:"unit"`
	Amount decimal.Decimal `json:"amount"`
}

type TimeOffType struct {
	ID    FlexInt `json:"id"`
	Name  string  `json:"name"`
	Units string  `json:"units,omitempty"`
	Color string  `json:"color,omitempty"`
	Icon  string  `json:"icon,omitempty"`
}

type TimeOffTypeInfo struct {
	TimeOffTypes []TimeOffType `json:"timeOffTypes"`
	DefaultHours []DefaultHour `json:"defaultHours"`
}

type DefaultHour struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type TimeOffPolicy struct {
	ID            FlexInt `json:"id"`
	TimeOffTypeID FlexInt `json:"timeOffTypeId"`
	Name          string  `json:"name"`
	EffectiveDate string  `json:"effectiveDate"`
	Type          string  `json:"type"`
}

type AssignedTimeOffPolicy struct {
	TimeOffPolicyID  FlexInt `json:"timeOffPolicyId"`
	TimeOffTypeID    FlexInt `json:"timeOffTypeId"`
	AccrualStartDate string  `json:"accrualStartDate"`
}

type Estimate struct {
	TimeOffType    FlexInt         `json:"timeOffType"`
	Name           string          `json:"name"`
	Units          string          `json:"units"`
	Balance        decimal.Decimal `json:"balance"`
	End            *Date           `json:"end"`
	PolicyType     string          `json:"policyType"`
	UsedYearToDate decimal.Decimal `json:"usedYearToDate"`
}

type WhosOutInfo struct {
	ID         FlexInt `json:"id"`
	Type       string  `json:"type"`
	EmployeeID FlexInt `json:"employeeId,omitempty"`
	Name       string  `json:"name"`
	Start      *Date   `json:"start"`
	End        *Date   `json:"end"`
}

type Holiday struct {
	ID    FlexInt `json:"id"`
	Name  string  `json:"name"`
	Start *Date   `json:"start"`
	End   *Date   `json:"end"`
}

// TimeOffInput describes an approved time off request to create.
type TimeOffInput struct {
	EmployeeID   int
	TypeID       int
	Start        time.Time
	End          time.Time
	StartHalfDay bool
	EndHalfDay   bool
	Comment      string
	Holidays     []time.Time
	// PreviousRequestID, when set, makes the new request supersede it.
	PreviousRequestID *int
}

// Webhook is a single record for every stage of a webhook's life. ID,
// Created and LastSent are filled by the remote once it exists; PrivateKey
// is only returned when the webhook is created.
type Webhook struct {
	ID                   int               `json:"id,omitempty"`
	Name                 string            `json:"name"`
	MonitorFields        []string          `json:"monitorFields"`
	PostFields           map[string]string `json:"postFields"`
	URL                  string            `json:"url"`
	Format               string            `json:"format"`
	Frequency            *WebhookFrequency `json:"frequency,omitempty"`
	Limit                *WebhookLimit     `json:"limit,omitempty"`
	IncludeCompanyDomain bool              `json:"includeCompanyDomain"`
	Created              string            `json:"created,omitempty"`
	LastSent             *string           `json:"lastSent,omitempty"`
	PrivateKey           string            `json:"privateKey,omitempty"`
}

type WebhookFrequency struct {
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
	Day    *int `json:"day,omitempty"`
	Month  *int `json:"month,omitempty"`
}

type WebhookLimit struct {
	Times   int `json:"times"`
	Seconds int `json:"seconds"`
}

type webhookList struct {
	Webhooks []Webhook `json:"webhooks"`
}

type WebhookMonitorField struct {
	ID    FlexString `json:"id"`
	Name  string     `json:"name"`
	Alias string     `json:"alias"`
}

type webhookMonitorFieldList struct {
	Fields []WebhookMonitorField `json:"fields"`
}
