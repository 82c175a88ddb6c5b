package rebuild

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecTriggerAcceptsAndCompletes(t *testing.T) {
	var wg sync.WaitGroup
	trigger := NewExecTrigger("sh -c 'exit 0'", t.TempDir(), &wg)

	require.NoError(t, trigger.Start())
	wg.Wait()
	assert.NoError(t, trigger.Wait())
}

func TestExecTriggerRejectsMissingBinary(t *testing.T) {
	trigger := NewExecTrigger("definitely-not-a-binary-4242", "", nil)
	assert.Error(t, trigger.Start())
}

func TestExecTriggerRejectsEmptyCommand(t *testing.T) {
	trigger := NewExecTrigger("", "", nil)
	assert.Error(t, trigger.Start())
}

func TestExecTriggerAcceptsEvenWhenBuildFails(t *testing.T) {
	trigger := NewExecTrigger("sh -c 'exit 3'", "", nil)

	// acceptance is synchronous, the failing exit is only seen by Wait
	require.NoError(t, trigger.Start())
	assert.Error(t, trigger.Wait())
}

func TestExecTriggerRejectsUnparsableCommand(t *testing.T) {
	trigger := NewExecTrigger(`sh -c 'unterminated`, "", nil)
	assert.Error(t, trigger.Start())
}
