package model

import "time"

const DateLayout = "2006-01-02"

// LeaveImportRow is one validated line of the uploaded leave sheet.
type LeaveImportRow struct {
	Row          int
	EmpName      string
	Start        time.Time
	End          time.Time
	LeaveType    string
	StartHalfDay bool
	EndHalfDay   bool
	Comment      string
}

// ImportedLeave is a request that was created in BambooHR.
type ImportedLeave struct {
	EmpName   string
	LeaveType string
	Start     time.Time
	End       time.Time
	Hours     int
	RequestID int
}

// TimeOffRequestBody is the payload of POST /employees/{id}/timeoff.
type TimeOffRequestBody struct {
	TypeID       int    `json:"typeId" validate:"required,gt=0"`
	Start        string `json:"start" validate:"required,datetime=2006-01-02"`
	End          string `json:"end" validate:"required,datetime=2006-01-02"`
	StartHalfDay bool   `json:"startHalfDay"`
	EndHalfDay   bool   `json:"endHalfDay"`
	Comment      string `json:"comment" validate:"max=1000"`
}

type CreatedResponse struct {
	ID int `json:"id"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
