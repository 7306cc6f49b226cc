package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_ColumnOrder(t *testing.T) {
	j := JobSummary{Title: "Koch", Company: "Gasthaus Alt", RefNr: "10000-1", URL: "u"}

	assert.Equal(t, []string{"u", "Koch", "10000-1"}, j.Values([]string{"Job URL", "Job Title", "Job Reference Number"}))
	assert.Equal(t, []string{NA}, j.Values([]string{"Salary"}))
	assert.Len(t, j.Values(SummaryColumns), len(SummaryColumns))
}

func TestDisplayColumnsAreExported(t *testing.T) {
	row := JobSummary{}.Row()
	for _, c := range DisplayColumns {
		assert.Contains(t, row, c)
	}
	assert.Len(t, row, len(SummaryColumns))
}

func TestFields_Order(t *testing.T) {
	fs := JobDetail{Title: "Koch", URL: "u"}.Fields()
	assert.Len(t, fs, 12)
	assert.Equal(t, Field{"Job Title", "Koch"}, fs[0])
	assert.Equal(t, Field{"Job URL", "u"}, fs[len(fs)-1])
}
