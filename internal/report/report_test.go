package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "leadcli/internal/errors"
	"leadcli/internal/sample"
)

var referenceSamples = []sample.Sample{
	{Level: 2, District: "Appoquinimink", School: "Alfred G Waters Middle School", Location: "Kitchen Faucet"},
	{Level: 2, District: "Appoquinimink", School: "Alfred G Waters Middle School", Location: "Water Bottle Filler Cafeteria"},
	{Level: 160, District: "Sussex Vo-Tech", School: "Sussex Tech", Location: "Water Spigot In the Field"},
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(referenceSamples)))

	assert.Equal(t,
		"Appoquinimink: 2.0\n"+
			"Sussex Vo-Tech: 160.0\n"+
			"Max lead is Sussex Vo-Tech: 160.0\n",
		buf.String())
}

func TestWriteText_NoDistricts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(nil)))
	assert.Empty(t, buf.String())
}

func TestWriteText_FractionalAverage(t *testing.T) {
	samples := []sample.Sample{
		{Level: 1, District: "Capital"},
		{Level: 2, District: "Capital"},
		{Level: 2, District: "Capital"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(samples)))
	assert.Equal(t, "Capital: 1.6666666666666667\nMax lead is Capital: 1.6666666666666667\n", buf.String())
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{2, "2.0"},
		{160, "160.0"},
		{164.0 / 3, "54.666666666666664"},
		{0.5, "0.5"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1234567, "1234567.0"},
		{1e16, "1e+16"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAverage(tt.in))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Build(referenceSamples)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"District", "Samples", "Total", "Average", "Max"},
		{"Appoquinimink", "2", "4", "2", "2"},
		{"Sussex Vo-Tech", "1", "160", "160", "160"},
	}, records)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Build(referenceSamples)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DistrictsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(DistrictsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, CSVHeaders, rows[0])
	assert.Equal(t, "Appoquinimink", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "Sussex Vo-Tech", rows[2][0])
	assert.Equal(t, "160", rows[2][2])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Samples", "3"}, summary[0])
	assert.Equal(t, []string{"Max district", "Sussex Vo-Tech"}, summary[3])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(referenceSamples)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "ppb", decoded["unit"])
	assert.EqualValues(t, 3, decoded["samples"])
	assert.EqualValues(t, 164, decoded["total_ppb"])
	assert.Len(t, decoded["districts"], 2)

	best, ok := decoded["max_district"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sussex Vo-Tech", best["district"])
}

func TestWriteJSON_EmptyOmitsMax(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build([]sample.Sample{})))
	assert.NotContains(t, buf.String(), "max_district")
	assert.Contains(t, buf.String(), `"districts": []`)
}

func TestWrite(t *testing.T) {
	r := Build(referenceSamples)

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, r))
			assert.NotZero(t, buf.Len())
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, "TEXT", r))
		assert.Contains(t, buf.String(), "Max lead is")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, "pdf", r)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
		assert.Zero(t, buf.Len())
	})
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", ContentType("csv"))
	assert.Equal(t, "application/json", ContentType("json"))
	assert.Contains(t, ContentType("xlsx"), "spreadsheetml")
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("text"))
}
