package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRendersPositionalRows(t *testing.T) {
	exporter := NewCSVExporter()
	out, err := exporter.Render(Table{
		Headers: []string{"Mã học viên", "Họ tên", "Lớp"},
		Rows: [][]string{
			{"MCS20261001", "Nguyễn Văn A", "CH-CNTT-K1"},
			{"PHD20261002", "Trần Thị B"},
		},
	})
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Mã học viên,Họ tên,Lớp")
	assert.Contains(t, text, "MCS20261001,Nguyễn Văn A,CH-CNTT-K1")
	// The short row is padded out to the header width.
	assert.Contains(t, text, "PHD20261002,Trần Thị B,\n")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Table{Rows: [][]string{{"a"}}})
	require.Error(t, err)
}

func TestPDFExporterRendersTable(t *testing.T) {
	exporter := NewPDFExporter()
	out, err := exporter.Render(Table{
		Headers: []string{"Khoản thu", "Số tiền"},
		Rows:    [][]string{{"Học phí kỳ 1", "15000000"}},
	}, "Sổ theo dõi học phí")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
