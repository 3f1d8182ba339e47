package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/source"
)

func TestFromMachine(t *testing.T) {
	machine := model.NewMachine("binary")
	machine.NewState("a").WithStart()
	machine.NewState("b").WithFinal()
	machine.WithTransition("a", "a", model.WhenEquals("0"))
	machine.WithTransition("a", "b", model.WhenEquals("1"))
	machine.WithTransition("b", "b", model.WhenEquals("1"))
	machine.WithTransition("b", "a", model.WhenEquals("0"))

	e, err := FromMachine(machine)
	assert.NoError(t, err)
	assert.Equal(t, "binary", e.Name())

	accepted, err := e.Run(context.Background(), source.NewText("011"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1"}, accepted)
}

func TestFromMachineValidates(t *testing.T) {
	machine := model.NewMachine("broken")
	machine.NewState("a")
	_, err := FromMachine(machine)
	assert.True(t, errors.Is(err, model.ErrNoStartState))
}

func TestFromMachineRejectsEmptyMatch(t *testing.T) {
	machine := model.NewMachine("nomatch")
	machine.NewState("a").WithStart()
	machine.NewState("b").WithFinal()
	machine.WithTransition("a", "b", nil)
	_, err := FromMachine(machine)
	assert.Error(t, err)
}

func TestFromMachineNil(t *testing.T) {
	_, err := FromMachine(nil)
	assert.Error(t, err)
}
