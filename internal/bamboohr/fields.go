package bamboohr

import "sort"

// EmployeeFieldNames lists the standard employee field names the remote
// accepts in a fields filter.
var EmployeeFieldNames = []string{
	"acaStatusCategory", "address1", "address2", "age", "bestEmail", "birthday",
	"bonusAmount", "bonusComment", "bonusDate", "bonusReason", "city",
	"commissionAmount", "commissionComment", "commissionDate", "commisionDate",
	"country", "createdByUserId", "dateOfBirth", "department", "division", "eeo",
	"employeeNumber", "employmentHistoryStatus", "ethnicity", "exempt", "firstName",
	"fullName1", "fullName2", "fullName3", "fullName4", "fullName5", "displayName",
	"gender", "hireDate", "originalHireDate", "homeEmail", "homePhone", "id",
	"includeInPayroll", "isPhotoUploaded", "jobTitle", "lastChanged", "lastName",
	"location", "maritalStatus", "middleName", "mobilePhone", "nationalId",
	"nationality", "nin", "paidPer", "payChangeReason", "payGroup", "payGroupId",
	"payRate", "payRateEffectiveDate", "payType", "paySchedule", "payScheduleId",
	"payFrequency", "preferredName", "ssn", "sin", "standardHoursPerWeek", "state",
	"stateCode", "status", "supervisor", "supervisorId", "supervisorEId",
	"supervisorEmail", "terminationDate", "timeTrackingEnabled", "workEmail",
	"workPhone", "workPhonePlusExtension", "workPhoneExtension", "zipcode",
}

var knownFields = func() map[string]bool {
	m := make(map[string]bool, len(EmployeeFieldNames))
	for _, name := range EmployeeFieldNames {
		m[name] = true
	}
	return m
}()

func IsKnownField(name string) bool {
	return knownFields[name]
}

// UnknownFields returns the names not in the catalog, sorted.
func UnknownFields(names []string) []string {
	var unknown []string
	for _, name := range names {
		if !IsKnownField(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// reportFields are requested for every employee in the directory report.
var reportFields = []string{
	"id", "lastChanged", "status",
	"firstName", "middleName", "lastName", "nickname", "displayName", "gender", "dateOfBirth", "age",
	"address1", "address2", "city", "state", "country", "zipCode",
	"homeEmail", "homePhone", "mobilePhone",
	"workEmail", "workPhone", "workPhoneExtension", "workPhonePlusExtension",
	"jobTitle", "department", "division", "location",
	"hireDate", "terminationDate",
	"supervisorId", "supervisorEid",
}
