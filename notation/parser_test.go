package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fsm/model"
)

func TestParse(t *testing.T) {
	machine, err := Parse([]byte(`
# the round-trip machine
machine binary

state a start
state b final

a -> b : 1
a -> a : 0
b -> b : 1, x   # trailing comment
b -> a : *
`))
	assert.NoError(t, err)
	assert.Equal(t, "binary", machine.Name)
	assert.NoError(t, machine.Validate())

	assert.Len(t, machine.States, 2)
	assert.True(t, machine.State("a").Start)
	assert.True(t, machine.State("b").Final)

	assert.Len(t, machine.Transitions, 4)
	assert.Equal(t, "a", machine.Transitions[0].From)
	assert.Equal(t, "b", machine.Transitions[0].To)
	assert.Equal(t, "1", machine.Transitions[0].When.Equals)
	assert.Equal(t, model.WhenOneOf("1", "x"), machine.Transitions[2].When)
	assert.Equal(t, model.WhenAny(), machine.Transitions[3].When)
}

func TestParseStateFlags(t *testing.T) {
	machine, err := Parse([]byte("state s start final"))
	assert.NoError(t, err)
	state := machine.State("s")
	assert.True(t, state.Start)
	assert.True(t, state.Final)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		description string
		input       string
	}{
		{description: "unknown state flag", input: "state a begin"},
		{description: "missing arrow", input: "a b : 1"},
		{description: "missing target", input: "a -> : 1"},
		{description: "missing colon", input: "a -> b 1"},
		{description: "missing symbols", input: "a -> b :"},
		{description: "trailing text after star", input: "a -> b : * 1"},
		{description: "missing machine name", input: "machine"},
	}
	for _, testCase := range testCases {
		_, err := Parse([]byte(testCase.input))
		assert.Error(t, err, testCase.description)
	}
}

func TestParseEmpty(t *testing.T) {
	machine, err := Parse([]byte("\n# only comments\n"))
	assert.NoError(t, err)
	assert.Empty(t, machine.States)
	assert.Empty(t, machine.Transitions)
	_ = machine.Validate() // validation of an empty machine is the caller's call
}
