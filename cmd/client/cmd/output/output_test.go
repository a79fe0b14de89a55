package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"sensorlist/internal/domain/record"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var recs = []record.Record{
	{ID: 1, Attributes: record.Attributes{"name": "temp-sensor", "location": "lab"}},
	{ID: 2, Attributes: record.Attributes{"name": "hum-sensor", "location": "roof"}},
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "json").Records(recs))

	var got []record.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, recs, got)
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "yaml").Record(recs[0]))

	assert.Equal(t, "id: 1\nlocation: lab\nname: temp-sensor\n", buf.String())

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got["id"])
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "table").Records(recs))

	out := buf.String()
	assert.Contains(t, out, "ID  LOCATION  NAME")
	assert.Contains(t, out, "2   roof      hum-sensor")
	assert.Contains(t, out, "Всего записей: 2")
}

func TestPrinter_Text(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, New(&buf, "text").Record(recs[0]))
	assert.Equal(t, "#1 location=\"lab\" name=\"temp-sensor\"\n", buf.String())

	buf.Reset()
	require.NoError(t, New(&buf, "text").Records(nil))
	assert.Equal(t, "Записи не найдены\n", buf.String())
}
