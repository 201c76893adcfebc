package leaveimport

// TemplateColumns are the column headers of the downloadable import template,
// in sheet order.
var TemplateColumns = []string{
	"Employee ID",
	"Leave Type",
	"Start Date",
	"End Date",
	"Reason",
	"Status",
	"Half Day",
	"Paid Leave",
	"Review Notes",
	"Reviewed At",
}

// sampleRow is the illustrative fixture shipped in the template. It shows
// users the expected shape of a row; it is not a runtime contract.
var sampleRow = []string{
	"EMP001",
	"Casual",
	"2026-02-11",
	"2026-02-11",
	"Family event",
	"Pending",
	"No",
	"Yes",
	"",
	"",
}
