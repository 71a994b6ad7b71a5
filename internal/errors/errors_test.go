package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	base := stderrors.New("boom")
	err := Wrap(base, "loading table")
	assert.Equal(t, "loading table: boom", err.Error())
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.True(t, stderrors.Is(err, base))

	coded := Wrapf(ConfigInvalid("bad format"), "config %s", "load")
	assert.Equal(t, CodeConfigInvalid, GetCode(coded))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("nope"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.True(t, IsAppError(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestFromLoadError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "missing file",
			err:      fmt.Errorf("failed to open CSV file: %w", &fs.PathError{Op: "open", Path: "x.csv", Err: fs.ErrNotExist}),
			expected: CodeFileNotFound,
		},
		{
			name:     "bad number",
			err:      fmt.Errorf("x.csv row 1 column 1: %w", &strconv.NumError{Func: "ParseFloat", Num: "x", Err: strconv.ErrSyntax}),
			expected: CodeParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromLoadError("x.csv", tt.err)
			assert.Equal(t, tt.expected, GetCode(err))
			assert.True(t, stderrors.Is(err, tt.err))
		})
	}

	assert.Nil(t, FromLoadError("x.csv", nil))
}

func TestWithCode_Message(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("patients must be positive"))
	assert.Equal(t, "patients must be positive", err.Error())
}
