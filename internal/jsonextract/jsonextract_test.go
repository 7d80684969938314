package jsonextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_PlainJSON(t *testing.T) {
	raw, ok := Object(`{"questions": ["a", "b"]}`)
	require.True(t, ok)
	assert.JSONEq(t, `{"questions": ["a", "b"]}`, string(raw))
}

func TestObject_SurroundedByProse(t *testing.T) {
	reply := "Here is the analysis you asked for:\n\n" +
		"```json\n{\"detected_categories\": [\"SAĞLIK DURUMU\"]}\n```\n" +
		"Let me know if you need anything else."

	raw, ok := Object(reply)
	require.True(t, ok)
	assert.JSONEq(t, `{"detected_categories": ["SAĞLIK DURUMU"]}`, string(raw))
}

func TestObject_NestedObjects(t *testing.T) {
	reply := `prefix {"rationale": {"question_count": 8, "focus_areas": ["a"]}} suffix`

	raw, ok := Object(reply)
	require.True(t, ok)
	assert.JSONEq(t, `{"rationale": {"question_count": 8, "focus_areas": ["a"]}}`, string(raw))
}

func TestObject_BracesInsideStrings(t *testing.T) {
	reply := `{"note": "uses { and } inside", "n": 1}`

	raw, ok := Object(reply)
	require.True(t, ok)
	assert.JSONEq(t, reply, string(raw))
}

func TestObject_NoObject(t *testing.T) {
	for _, text := range []string{"", "no json here", "{broken", "{'single': 'quotes'}"} {
		_, ok := Object(text)
		assert.False(t, ok, "input %q", text)
	}
}

func TestObject_SkipsInvalidFindsLater(t *testing.T) {
	reply := `{not json} but later {"valid": true}`

	raw, ok := Object(reply)
	require.True(t, ok)
	assert.JSONEq(t, `{"valid": true}`, string(raw))
}

func TestUnmarshal(t *testing.T) {
	var out struct {
		Questions []string `json:"questions"`
	}

	ok := Unmarshal(`noise {"questions": ["q1", "q2"]} noise`, &out)
	require.True(t, ok)
	assert.Equal(t, []string{"q1", "q2"}, out.Questions)

	assert.False(t, Unmarshal("nothing", &out))
}
