package attendant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditToPicture(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		picture string
		number  string
		result  string
	}){
		{"9,999", "1234", "1,234"},
		{"9,999", "12", "0,012"},
		{"#,###", "12", "   12"},
		{"#,###", "1234", "1,234"},
		{"-###", "-5", "-  5"},
		{"-###", "5", "   5"},
		{"+999", "5", "+005"},
		{"±999", "-5", "-005"},
		{"999", "-5", "-005"},
		{"99", "12345", "12345"},
		{"9.99", "314", "3.14"},
		{"9.99", "5", "0.05"},
		{"$#,##9.99", "123456", "$1,234.56"},
		{"$#,##9.99", "42", "$    0.42"},
	}

	for _, entry := range table {
		assert.Equal(entry.result, EditToPicture(entry.picture, entry.number), "%v %v", entry.picture, entry.number)
	}
}

func TestReport(t *testing.T) {
	assert := assert.New(t)

	var rp Report
	rp.Number("1")
	rp.Number("2")
	rp.Annotate("total: ")
	rp.Number("3")
	rp.NewLine()
	rp.Number("4")
	assert.Equal("1\n2total: \n3\n4", rp.String())

	rp.Reset()
	rp.WriteInRows = true
	rp.Number("1")
	rp.Number("2")
	rp.Annotate("\n")
	rp.Number("3")
	assert.Equal("1 2\n3", rp.String())

	rp.Reset()
	assert.False(rp.WriteInRows)
	rp.Picture = "9,999"
	rp.Number("1234")
	assert.Equal("1,234", rp.String())
}
