package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"

	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/bamboohr"
	appctx "github.com/syrilster/migrate-leaves-to-bamboohr/internal/context"
	"github.com/syrilster/migrate-leaves-to-bamboohr/internal/model"
)

const (
	timeOffTypeMode    = "request"
	reportSheet        = "Sheet1"
	reportFileName     = "report.xlsx"
	reportSubject      = "Report: Leave Migration to BambooHR"
	noErrorsReportBody = "No errors found during processing leaves. Please check attached report for audit trail."
)

// Column order of the uploaded sheet.
const (
	colEmployee = iota
	colStart
	colEnd
	colLeaveType
	colHalfDay
	colComment
)

type Service struct {
	client          bamboohr.ClientInterface
	xlsFileLocation string
	emailClient     sesiface.SESAPI
	emailTo         string
	emailFrom       string

	// reports tracks status e-mails still being sent.
	reports sync.WaitGroup
}

func NewService(c bamboohr.ClientInterface, xlsLocation string, ec sesiface.SESAPI, emailTo string, emailFrom string) *Service {
	return &Service{
		client:          c,
		xlsFileLocation: xlsLocation,
		emailClient:     ec,
		emailTo:         emailTo,
		emailFrom:       emailFrom,
	}
}

//ImportLeaves creates a time off request in BambooHR for every row of the uploaded sheet
func (service *Service) ImportLeaves(ctx context.Context) []string {
	var imported []model.ImportedLeave

	ctxLogger := log.WithContext(ctx)
	ctxLogger.Infof("Executing ImportLeaves service")

	rows, errResult := service.extractLeaveRequests(ctx)
	if len(errResult) > 0 {
		ctxLogger.Infof("There were %v errors during extracting excel data", len(errResult))
	}
	ctxLogger.Info("Leave Requests length: ", len(rows))

	if len(rows) == 0 {
		service.sendStatusReport(ctx, errResult, imported)
		return errResult
	}

	employees, err := service.client.GetEmployees(ctx, true)
	if err != nil {
		ctxLogger.WithError(err).Error("Failed to fetch employees from BambooHR")
		errResult = append(errResult, fmt.Sprintf("Failed to fetch employees from BambooHR: %v. Please try again later or contact admin. ", err))
		service.sendStatusReport(ctx, errResult, imported)
		return errResult
	}
	employeesByName := indexEmployees(employees)

	typeInfo, err := service.client.GetTimeOffTypes(ctx, timeOffTypeMode)
	if err != nil {
		ctxLogger.WithError(err).Error("Failed to fetch time off types from BambooHR")
		errResult = append(errResult, fmt.Sprintf("Failed to fetch time off types from BambooHR: %v. Please try again later or contact admin. ", err))
		service.sendStatusReport(ctx, errResult, imported)
		return errResult
	}
	typeIDs := indexTimeOffTypes(typeInfo)

	first, last := dateRange(rows)
	holidays, err := service.client.GetHolidays(ctx, first, last)
	if err != nil {
		ctxLogger.WithError(err).Error("Failed to fetch holidays from BambooHR")
		errResult = append(errResult, fmt.Sprintf("Failed to fetch holidays from BambooHR: %v. Please try again later or contact admin. ", err))
		service.sendStatusReport(ctx, errResult, imported)
		return errResult
	}
	holidayDates := bamboohr.HolidayDates(holidays)

	for _, row := range rows {
		leave, errStr := service.importRow(ctx, row, employeesByName, typeIDs, holidayDates)
		if errStr != "" {
			errResult = append(errResult, errStr)
		}
		if leave.RequestID != 0 {
			imported = append(imported, leave)
		}
	}

	service.sendStatusReport(ctx, errResult, imported)
	if len(errResult) > 0 {
		return errResult
	}
	return nil
}

func (service *Service) importRow(ctx context.Context, row model.LeaveImportRow, employeesByName map[string]bamboohr.Employee,
	typeIDs map[string]int, holidays []time.Time) (model.ImportedLeave, string) {
	ctxLogger := log.WithContext(ctx)

	emp, ok := employeesByName[strings.ToLower(row.EmpName)]
	if !ok {
		errStr := fmt.Sprintf("Employee not found in BambooHR. Employee: %v ", row.EmpName)
		ctxLogger.Info(errStr)
		return model.ImportedLeave{}, errStr
	}

	typeID, ok := typeIDs[strings.ToLower(row.LeaveType)]
	if !ok {
		errStr := fmt.Sprintf("Leave type %v not found/configured in BambooHR for Employee: %v ", row.LeaveType, row.EmpName)
		ctxLogger.Info(errStr)
		return model.ImportedLeave{}, errStr
	}

	ctxLogger.Infof("Applying leave request for Employee: %v", row.EmpName)
	requestID, err := service.client.CreateTimeOffRequest(ctx, bamboohr.TimeOffInput{
		EmployeeID:   int(emp.ID),
		TypeID:       typeID,
		Start:        row.Start,
		End:          row.End,
		StartHalfDay: row.StartHalfDay,
		EndHalfDay:   row.EndHalfDay,
		Comment:      row.Comment,
		Holidays:     holidays,
	})
	if err != nil && !(errors.Is(err, bamboohr.ErrHistoryEntry) && requestID != 0) {
		ctxLogger.WithError(err).Errorf("Failed to create time off request in BambooHR for Employee: %v", row.EmpName)
		return model.ImportedLeave{}, fmt.Sprintf("Error: Failed to create time off request in BambooHR for Employee: %v. Cause: %v ", row.EmpName, err)
	}

	hours := 0
	for _, day := range bamboohr.AllocateDays(row.Start, row.End, row.StartHalfDay, row.EndHalfDay, holidays) {
		hours += day.Hours
	}
	leave := model.ImportedLeave{
		EmpName:   row.EmpName,
		LeaveType: row.LeaveType,
		Start:     row.Start,
		End:       row.End,
		Hours:     hours,
		RequestID: requestID,
	}

	// The request exists, so a re-import of this row would duplicate it.
	if err != nil {
		ctxLogger.WithError(err).Warnf("Time off request %d for Employee: %v has no history entry", requestID, row.EmpName)
		return leave, fmt.Sprintf("Warning: Time off request %d was created in BambooHR for Employee: %v but its history entry failed. Do not import this row again. Cause: %v ",
			requestID, row.EmpName, err)
	}
	return leave, ""
}

func indexEmployees(employees []bamboohr.Employee) map[string]bamboohr.Employee {
	byName := make(map[string]bamboohr.Employee, len(employees)*2)
	for _, emp := range employees {
		if emp.DisplayName != "" {
			byName[strings.ToLower(emp.DisplayName)] = emp
		}
		byName[strings.ToLower(emp.FirstLast())] = emp
	}
	return byName
}

func indexTimeOffTypes(info *bamboohr.TimeOffTypeInfo) map[string]int {
	ids := make(map[string]int)
	if info == nil {
		return ids
	}
	for _, t := range info.TimeOffTypes {
		ids[strings.ToLower(strings.TrimSpace(t.Name))] = int(t.ID)
	}
	return ids
}

func dateRange(rows []model.LeaveImportRow) (time.Time, time.Time) {
	first, last := rows[0].Start, rows[0].End
	for _, row := range rows[1:] {
		if row.Start.Before(first) {
			first = row.Start
		}
		if row.End.After(last) {
			last = row.End
		}
	}
	return first, last
}

func (service *Service) extractLeaveRequests(ctx context.Context) ([]model.LeaveImportRow, []string) {
	var leaveRequests []model.LeaveImportRow
	var errResult []string
	ctxLogger := log.WithContext(ctx)

	f, err := excelize.OpenFile(service.xlsFileLocation)
	if err != nil {
		errStr := "Unable to open the uploaded file. Please confirm the file is in xlsx format. "
		ctxLogger.WithError(err).Error(errStr)
		return nil, append(errResult, errStr)
	}
	defer func() {
		if err := f.Close(); err != nil {
			ctxLogger.WithError(err).Warn("failed to close the uploaded file")
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	ctxLogger.Info("SheetName: ", sheet)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		errStr := "Unable to read rows from the uploaded file. "
		ctxLogger.WithError(err).Error(errStr)
		return nil, append(errResult, errStr)
	}

	for index, row := range rows {
		// This is to skip the header row of the excel sheet
		if index == 0 || isBlankRow(row) {
			continue
		}

		leaveReq, errStr := parseLeaveRow(index+1, row)
		if errStr != "" {
			ctxLogger.Info(errStr)
			errResult = append(errResult, errStr)
			continue
		}
		leaveRequests = append(leaveRequests, leaveReq)
	}
	return leaveRequests, errResult
}

func parseLeaveRow(rowNum int, row []string) (model.LeaveImportRow, string) {
	empName := cell(row, colEmployee)
	if empName == "" {
		return model.LeaveImportRow{}, fmt.Sprintf("Row %d: missing employee name", rowNum)
	}

	start, ok := parseExcelDate(cell(row, colStart))
	if !ok {
		return model.LeaveImportRow{}, fmt.Sprintf("Invalid entry for Leave Start Date: %v. Valid Format DD/MM/YYYY (Ex: 01/06/2020)", cell(row, colStart))
	}

	end := start
	if rawEnd := cell(row, colEnd); rawEnd != "" {
		if end, ok = parseExcelDate(rawEnd); !ok {
			return model.LeaveImportRow{}, fmt.Sprintf("Invalid entry for Leave End Date: %v. Valid Format DD/MM/YYYY (Ex: 01/06/2020)", rawEnd)
		}
	}
	if end.Before(start) {
		return model.LeaveImportRow{}, fmt.Sprintf("Row %d: leave end date %v is before start date %v for Employee: %v",
			rowNum, end.Format(model.DateLayout), start.Format(model.DateLayout), empName)
	}

	leaveType := cell(row, colLeaveType)
	if leaveType == "" {
		return model.LeaveImportRow{}, fmt.Sprintf("Row %d: missing leave type for Employee: %v", rowNum, empName)
	}

	leaveReq := model.LeaveImportRow{
		Row:       rowNum,
		EmpName:   empName,
		Start:     start,
		End:       end,
		LeaveType: leaveType,
		Comment:   cell(row, colComment),
	}
	switch halfDay := strings.ToLower(cell(row, colHalfDay)); halfDay {
	case "":
	case "start":
		leaveReq.StartHalfDay = true
	case "end":
		leaveReq.EndHalfDay = true
	case "both":
		leaveReq.StartHalfDay, leaveReq.EndHalfDay = true, true
	default:
		return model.LeaveImportRow{}, fmt.Sprintf("Invalid entry for Half Day: %v. Valid values are start, end or both", cell(row, colHalfDay))
	}
	return leaveReq, ""
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlankRow(row []string) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}

func parseExcelDate(raw string) (time.Time, bool) {
	if raw == "" || dateContainsSpecialChars(raw) {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// dateContainsSpecialChars is a func to check if the leave date contains any special chars
// The raw date from the Excel is supposed to be of the format 43949 for date 28/04/2020. If the
// date is not in this format it will be in either 28/04/2020 or 28-04-2020 which is then considered invalid
func dateContainsSpecialChars(date string) bool {
	return strings.Contains(date, "/") || strings.Contains(date, "-")
}

func (service *Service) sendStatusReport(ctx context.Context, errResult []string, imported []model.ImportedLeave) {
	if service.emailClient == nil || service.emailTo == "" || service.emailFrom == "" {
		log.WithContext(ctx).Info("Status report e-mail is not configured, skipping")
		return
	}

	errorsString := strings.Join(errResult, "\n")
	if errorsString == "" {
		errorsString = noErrorsReportBody
	}

	service.reports.Add(1)
	go func() {
		defer service.reports.Done()
		service.sesSendEmail(appctx.Detach(ctx), imported, errorsString)
	}()
}

func (service *Service) sesSendEmail(ctx context.Context, imported []model.ImportedLeave, data string) {
	contextLogger := log.WithContext(ctx)
	contextLogger.Infof("Inside sesSendEmail func")

	attachment, err := writeReportToExcel(imported)
	if err != nil {
		contextLogger.WithError(err).Error("Error when building the report attachment")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", service.emailFrom)
	msg.SetHeader("To", service.emailTo)
	msg.SetHeader("Subject", reportSubject)
	msg.SetBody("text/plain", data)
	msg.Attach(reportFileName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	var emailRaw bytes.Buffer
	if _, err := msg.WriteTo(&emailRaw); err != nil {
		contextLogger.WithError(err).Error("Error when writing email data")
		return
	}

	emailParams := ses.SendRawEmailInput{
		Source:     aws.String(service.emailFrom),
		RawMessage: &ses.RawMessage{Data: emailRaw.Bytes()},
	}
	emailParams.SetDestinations(populateEmailRecipients(service.emailTo))

	if _, err := service.emailClient.SendRawEmailWithContext(ctx, &emailParams); err != nil {
		contextLogger.WithError(err).Error("Error when sending email")
		return
	}
	contextLogger.Infof("Finished sesSendEmail func")
}

func populateEmailRecipients(emailTo string) []*string {
	var emailRecipients []*string
	for _, recipient := range strings.Split(emailTo, ",") {
		if recipient = strings.TrimSpace(recipient); recipient != "" {
			emailRecipients = append(emailRecipients, aws.String(recipient))
		}
	}
	return emailRecipients
}

var reportHeader = []interface{}{"Employee", "Leave Type", "Start Date", "End Date", "Hours", "Request ID"}

func writeReportToExcel(imported []model.ImportedLeave) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index := f.NewSheet(reportSheet)
	if err := f.SetColWidth(reportSheet, "A", "B", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reportSheet, "C", "F", 15); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return nil, err
	}

	for i, leave := range imported {
		row := []interface{}{
			leave.EmpName,
			leave.LeaveType,
			leave.Start.Format(model.DateLayout),
			leave.End.Format(model.DateLayout),
			leave.Hours,
			leave.RequestID,
		}
		if err := f.SetSheetRow(reportSheet, "A"+strconv.Itoa(i+2), &row); err != nil {
			return nil, err
		}
	}

	// Set active sheet of the workbook.
	f.SetActiveSheet(index)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
