package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgrammaticMachineCreation(t *testing.T) {
	machine := NewMachine("binary")
	machine.NewState("a").WithStart()
	machine.NewState("b").WithFinal()
	machine.WithTransition("a", "b", WhenEquals("1"))
	machine.WithTransition("a", "a", WhenEquals("0"))
	machine.WithTransition("b", "b", WhenEquals("1"))
	machine.WithTransition("b", "a", WhenEquals("0"))

	assert.NoError(t, machine.Validate())
	assert.Equal(t, "binary", machine.Name)
	assert.Len(t, machine.States, 2)
	assert.Len(t, machine.Transitions, 4)
	assert.Equal(t, "a", machine.StartState().ID)
	assert.True(t, machine.State("b").Final)
	assert.Nil(t, machine.State("c"))
}

func TestMachineValidate(t *testing.T) {
	testCases := []struct {
		description string
		machine     func() *Machine
		expectErr   func(t *testing.T, err error)
	}{
		{
			description: "duplicate state id",
			machine: func() *Machine {
				m := NewMachine("dup")
				m.NewState("a").WithStart()
				m.NewState("a").WithFinal()
				return m
			},
			expectErr: func(t *testing.T, err error) {
				var duplicate *DuplicateStateError
				assert.True(t, errors.As(err, &duplicate))
				assert.Equal(t, "a", duplicate.ID)
			},
		},
		{
			description: "no start state",
			machine: func() *Machine {
				m := NewMachine("nostart")
				m.NewState("a")
				m.NewState("b").WithFinal()
				return m
			},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrNoStartState))
			},
		},
		{
			description: "multiple start states",
			machine: func() *Machine {
				m := NewMachine("twostarts")
				m.NewState("a").WithStart()
				m.NewState("b").WithStart().WithFinal()
				return m
			},
			expectErr: func(t *testing.T, err error) {
				var multiple *MultipleStartStatesError
				assert.True(t, errors.As(err, &multiple))
				assert.Equal(t, []string{"a", "b"}, multiple.IDs)
			},
		},
		{
			description: "no final state",
			machine: func() *Machine {
				m := NewMachine("nofinal")
				m.NewState("a").WithStart()
				m.NewState("b")
				return m
			},
			expectErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrNoFinalState))
			},
		},
		{
			description: "unknown transition source",
			machine: func() *Machine {
				m := NewMachine("unknownsource")
				m.NewState("a").WithStart().WithFinal()
				m.WithTransition("x", "a", WhenAny())
				return m
			},
			expectErr: func(t *testing.T, err error) {
				var unknown *UnknownStateError
				assert.True(t, errors.As(err, &unknown))
				assert.Equal(t, "x", unknown.StateID)
				assert.Equal(t, "source", unknown.Side)
			},
		},
		{
			description: "unknown transition target",
			machine: func() *Machine {
				m := NewMachine("unknowntarget")
				m.NewState("a").WithStart().WithFinal()
				m.WithTransition("a", "y", WhenAny())
				return m
			},
			expectErr: func(t *testing.T, err error) {
				var unknown *UnknownStateError
				assert.True(t, errors.As(err, &unknown))
				assert.Equal(t, "y", unknown.StateID)
				assert.Equal(t, "target", unknown.Side)
			},
		},
	}

	for _, testCase := range testCases {
		err := testCase.machine().Validate()
		if !assert.Error(t, err, testCase.description) {
			continue
		}
		testCase.expectErr(t, err)
	}
}

func TestMachineValidateIsIdempotent(t *testing.T) {
	machine := NewMachine("idempotent")
	machine.NewState("a").WithStart().WithFinal()
	machine.WithTransition("a", "a", WhenAny())
	assert.NoError(t, machine.Validate())
	assert.NoError(t, machine.Validate())
}
