package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slnclean/slnclean/errors"
	"github.com/slnclean/slnclean/solution"
)

func TestFailureErrorNamesFailedProjects(t *testing.T) {
	report := &solution.Report{Total: 5, Cleaned: 3, Failed: 2}

	err := failureError(report)
	require.Error(t, err)
	assert.Equal(t, "2 of 5 projects failed", err.Error())
}

func TestFailureErrorNamesRebuildStartFailure(t *testing.T) {
	report := &solution.Report{
		Total:        3,
		Cleaned:      3,
		RebuildAsked: true,
		RebuildError: "build manager unavailable",
	}
	require.False(t, report.Success())

	err := failureError(report)
	require.Error(t, err)
	assert.Equal(t, "rebuild could not be started: build manager unavailable", err.Error())

	codeErr, ok := err.(*errors.ErrorWithCode)
	require.True(t, ok)
	assert.Equal(t, 1, codeErr.Code)
}
