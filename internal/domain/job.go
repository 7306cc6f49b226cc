package domain

// NA is substituted for every field the upstream document does not carry.
const NA = "N/A"

// JobSummary is one flattened row of a search response.
type JobSummary struct {
	Title      string
	Company    string
	Location   string
	PostalCode string
	Street     string
	Region     string
	Country    string
	Latitude   string
	Longitude  string
	RefNr      string
	Modified   string // upstream modifikationsTimestamp, unparsed
	URL        string
}

// JobDetail is the flattened per-job detail document.
type JobDetail struct {
	Title          string
	Company        string
	Locations      string // comma-joined city names
	Branch         string
	EmploymentType string
	Contract       string
	Salary         string
	PublishedOn    string
	ModifiedOn     string
	Description    string
	RefNr          string
	URL            string
}

// SummaryColumns is the full export column set, in CSV order.
var SummaryColumns = []string{
	"Job Title",
	"Company",
	"Location",
	"Postal Code",
	"Street",
	"Region",
	"Country",
	"Latitude",
	"Longitude",
	"Job Reference Number",
	"Modification Timestamp",
	"Job URL",
}

// DisplayColumns is the subset printed to the console.
var DisplayColumns = []string{
	"Job Title",
	"Company",
	"Location",
	"Region",
	"Country",
	"Modification Timestamp",
	"Job URL",
}

// Row returns the record's values keyed by column name.
func (j JobSummary) Row() map[string]string {
	return map[string]string{
		"Job Title":              j.Title,
		"Company":                j.Company,
		"Location":               j.Location,
		"Postal Code":            j.PostalCode,
		"Street":                 j.Street,
		"Region":                 j.Region,
		"Country":                j.Country,
		"Latitude":               j.Latitude,
		"Longitude":              j.Longitude,
		"Job Reference Number":   j.RefNr,
		"Modification Timestamp": j.Modified,
		"Job URL":                j.URL,
	}
}

// Values returns the record's values in the given column order.
// Unknown columns yield NA.
func (j JobSummary) Values(cols []string) []string {
	row := j.Row()
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		v, ok := row[c]
		if !ok {
			v = NA
		}
		out = append(out, v)
	}
	return out
}

// Field is one label/value pair of a detail view.
type Field struct {
	Name  string
	Value string
}

// Fields lists the detail document in display order.
func (d JobDetail) Fields() []Field {
	return []Field{
		{"Job Title", d.Title},
		{"Company", d.Company},
		{"Location", d.Locations},
		{"Branch", d.Branch},
		{"Employment Type", d.EmploymentType},
		{"Contract", d.Contract},
		{"Salary", d.Salary},
		{"Published On", d.PublishedOn},
		{"Modified On", d.ModifiedOn},
		{"Job Description", d.Description},
		{"Reference Number", d.RefNr},
		{"Job URL", d.URL},
	}
}
