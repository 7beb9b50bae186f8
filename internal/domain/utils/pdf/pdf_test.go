package pdf

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(rows int) *Table {
	t := &Table{
		Title:       "Reporte de Membresías",
		GeneratedAt: time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC),
		Total:       "Total de membresías: " + strconv.Itoa(rows),
		Head:        []string{"ID", "Usuario", "Club", "Nivel", "Estado"},
	}
	for i := 1; i <= rows; i++ {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i), "Socio " + strconv.Itoa(i), "Club Centro", "Oro", "ACTIVA",
		})
	}
	return t
}

func TestRenderEmptyTable(t *testing.T) {
	data, err := sampleTable(0).Render()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "zero rows still yields a valid document")
}

func TestRenderWithFilter(t *testing.T) {
	table := sampleTable(3)
	table.Filter = "Club: Club Centro"

	data, err := table.Render()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestComposeSinglePage(t *testing.T) {
	doc := sampleTable(10).compose()
	assert.Equal(t, 1, doc.PageNo())
}

func TestComposeBreaksPages(t *testing.T) {
	doc := sampleTable(80).compose()
	assert.Greater(t, doc.PageNo(), 1, "long tables spill onto extra pages")
}

func TestFooterStampedOnEveryPage(t *testing.T) {
	doc := sampleTable(80).compose()
	doc.SetCompression(false)
	pages := doc.PageNo()
	require.Greater(t, pages, 1)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	// The cp1252 text encoding rewrites the accented byte; match the prefix.
	stamps := strings.Count(buf.String(), "Herbalife Clubes - Sistema de Gesti")
	assert.Equal(t, pages, stamps, "each physical page carries the stamp once")
}

func TestRenderShortRowsPadded(t *testing.T) {
	table := sampleTable(1)
	table.Rows[0] = []string{"1", "Socio 1"}

	data, err := table.Render()

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "N/A", OrNA("   "))
	assert.Equal(t, "Oro", OrNA("Oro"))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "corto", clip("corto", 36.4))

	long := strings.Repeat("a", 60)
	clipped := clip(long, 36.4)
	assert.Less(t, len([]rune(clipped)), 60)
	assert.True(t, strings.HasSuffix(clipped, "…"))

	assert.Equal(t, long, clip(long, 5), "tiny columns are left unclipped")
}
