package bamboohr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

const (
	createRequestFormat = `<request>
    <timeOffTypeId>%d</timeOffTypeId>
    <start>%s</start>
    <end>%s</end>
    <dates>%s</dates>
    <status>approved</status>
    <notes>
        <note from="employee">%s</note>
    </notes>
</request>`

	replaceRequestFormat = `<request>
    <timeOffTypeId>%d</timeOffTypeId>
    <start>%s</start>
    <end>%s</end>
    <dates>%s</dates>
    <status>approved</status>
    <notes>
        <note from="employee">%s</note>
    </notes>
    <previousRequest>%d</previousRequest>
</request>`

	cancelRequestFormat = `<request>
    <status>cancelled</status>
    <note>%s</note>
</request>`

	historyEntryFormat = `<history>
    <date>%s</date>
    <eventType>used</eventType>
    <timeOffRequestId>%d</timeOffRequestId>
    <note>%s</note>
</history>`

	defaultCancelReason = "Request cancelled via API."
	historyEntryNote    = "Automatically created because the request is in the past."
)

func xmlEscape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func timeOffRequestXML(in TimeOffInput) []byte {
	dates := DatesXML(AllocateDays(in.Start, in.End, in.StartHalfDay, in.EndHalfDay, in.Holidays))
	start, end := in.Start.Format(dateFormat), in.End.Format(dateFormat)

	if in.PreviousRequestID != nil {
		return []byte(fmt.Sprintf(replaceRequestFormat, in.TypeID, start, end, dates, xmlEscape(in.Comment), *in.PreviousRequestID))
	}
	return []byte(fmt.Sprintf(createRequestFormat, in.TypeID, start, end, dates, xmlEscape(in.Comment)))
}

func cancelRequestXML(reason string) []byte {
	if reason == "" {
		reason = defaultCancelReason
	}
	return []byte(fmt.Sprintf(cancelRequestFormat, xmlEscape(reason)))
}

func historyEntryXML(date time.Time, requestID int) []byte {
	return []byte(fmt.Sprintf(historyEntryFormat, date.Format(dateFormat), requestID, xmlEscape(historyEntryNote)))
}

type fieldXML struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type employeeXML struct {
	XMLName xml.Name   `xml:"employee"`
	Fields  []fieldXML `xml:"field"`
}

// employeeToXML writes the editable employee fields that carry a value.
func employeeToXML(e Employee) ([]byte, error) {
	doc := employeeXML{}
	add := func(id string, value string) {
		if value != "" {
			doc.Fields = append(doc.Fields, fieldXML{ID: id, Value: value})
		}
	}
	addDate := func(id string, value *Date) {
		if value != nil && !value.IsZero() {
			add(id, value.String())
		}
	}

	add("status", e.Status)
	add("firstName", e.FirstName)
	add("middleName", e.MiddleName)
	add("lastName", e.LastName)
	add("nickname", e.Nickname)
	add("preferredName", e.PreferredName)
	add("displayName", e.DisplayName)
	add("gender", e.Gender)
	addDate("dateOfBirth", e.DateOfBirth)

	add("address1", e.Address1)
	add("address2", e.Address2)
	add("city", e.City)
	add("state", e.State)
	add("country", e.Country)
	add("zipCode", e.ZipCode)

	add("homeEmail", e.HomeEmail)
	add("homePhone", e.HomePhone)
	add("mobilePhone", e.MobilePhone)

	add("workEmail", e.WorkEmail)
	add("workPhone", e.WorkPhone)
	add("workPhoneExtension", e.WorkPhoneExtension)

	add("jobTitle", e.JobTitle)
	add("department", e.Department)
	add("location", e.Location)
	add("division", e.Division)

	addDate("hireDate", e.HireDate)
	addDate("terminationDate", e.TerminationDate)

	add("supervisor", e.Supervisor)
	add("supervisorId", e.SupervisorID)
	add("supervisorEid", e.SupervisorEID)
	add("supervisorEmail", e.SupervisorEmail)

	return xml.Marshal(doc)
}

type optionXML struct {
	ID       int    `xml:"id,attr,omitempty"`
	Archived string `xml:"archived,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type optionsXML struct {
	XMLName xml.Name    `xml:"options"`
	Options []optionXML `xml:"option"`
}

// listOptionsXML skips options without a value. Ids are only sent for
// existing options.
func listOptionsXML(values []ListFieldOption) ([]byte, error) {
	doc := optionsXML{}
	for _, v := range values {
		if v.Value == "" {
			continue
		}
		opt := optionXML{Value: v.Value, Archived: v.Archived}
		if v.ID > 0 {
			opt.ID = v.ID
		}
		doc.Options = append(doc.Options, opt)
	}
	return xml.Marshal(doc)
}

type reportFieldXML struct {
	ID string `xml:"id,attr"`
}

type reportRequestXML struct {
	XMLName xml.Name         `xml:"report"`
	Title   string           `xml:"title"`
	Fields  []reportFieldXML `xml:"fields>field"`
}

func employeeReportXML() ([]byte, error) {
	doc := reportRequestXML{}
	for _, id := range reportFields {
		doc.Fields = append(doc.Fields, reportFieldXML{ID: id})
	}
	return xml.Marshal(doc)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
