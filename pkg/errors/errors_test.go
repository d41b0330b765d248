package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

var (
	errInner     = errors.New("inner")
	errRootCause = errors.New("root cause")
	errPlain     = errors.New("plain error")
	errPlainCode = errors.New("plain")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, shardErr.ExitSuccess},
		{"threshold invalid", shardErr.ErrThresholdInvalid, shardErr.ExitInput},
		{"shares insufficient", shardErr.ErrSharesInsufficient, shardErr.ExitInput},
		{"too few shares", shardErr.ErrTooFewShares, shardErr.ExitInput},
		{"not found", shardErr.ErrInputNotFound, shardErr.ExitNotFound},
		{"field inverse of zero", shardErr.ErrFieldInverseOfZero, shardErr.ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code := shardErr.ExitCode(tt.err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestExitCodeWrappedError(t *testing.T) {
	t.Parallel()
	wrapped := shardErr.Wrap(shardErr.ErrInputNotFound, "datafile.bin")
	code := shardErr.ExitCode(wrapped)
	assert.Equal(t, shardErr.ExitNotFound, code)
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	// Verify that wrapping preserves error identity
	wrapped := shardErr.Wrap(shardErr.ErrThresholdInvalid, "wrapped")
	require.ErrorIs(t, wrapped, shardErr.ErrThresholdInvalid)

	wrapped = shardErr.Wrap(shardErr.ErrSharesInsufficient, "wrapped")
	require.ErrorIs(t, wrapped, shardErr.ErrSharesInsufficient)

	wrapped = shardErr.Wrap(shardErr.ErrInputNotFound, "wrapped")
	require.ErrorIs(t, wrapped, shardErr.ErrInputNotFound)

	wrapped = shardErr.Wrap(shardErr.ErrDuplicateEvaluationPoint, "wrapped")
	require.ErrorIs(t, wrapped, shardErr.ErrDuplicateEvaluationPoint)

	wrapped = shardErr.Wrap(shardErr.ErrUnknownConfigKey, "wrapped")
	require.ErrorIs(t, wrapped, shardErr.ErrUnknownConfigKey)
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		expected string
	}{
		{shardErr.ErrThresholdInvalid, "THRESHOLD_INVALID"},
		{shardErr.ErrSharesInsufficient, "SHARES_INSUFFICIENT"},
		{shardErr.ErrSharesExceedMax, "SHARES_EXCEED_MAX"},
		{shardErr.ErrTooFewShares, "TOO_FEW_SHARES"},
		{shardErr.ErrInputNotFound, "INPUT_NOT_FOUND"},
		{shardErr.ErrHeaderTruncated, "HEADER_TRUNCATED"},
		{shardErr.ErrHeaderMismatch, "HEADER_MISMATCH"},
		{shardErr.ErrDuplicateEvaluationPoint, "DUPLICATE_EVALUATION_POINT"},
		{shardErr.ErrFieldInverseOfZero, "FIELD_INVERSE_OF_ZERO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			var se *shardErr.ShardError
			require.ErrorAs(t, tt.err, &se)
			assert.Equal(t, tt.expected, se.Code)
		})
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()
	details := map[string]string{
		"have": "2",
		"need": "3",
	}

	err := shardErr.WithDetails(shardErr.ErrTooFewShares, details)

	var se *shardErr.ShardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()
	suggestion := "supply at least min_shares distinct share paths"
	err := shardErr.WithSuggestion(shardErr.ErrTooFewShares, suggestion)

	var se *shardErr.ShardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWithDetailsAndSuggestion(t *testing.T) {
	t.Parallel()
	details := map[string]string{"key": "value"}
	suggestion := "Try this instead"

	err := shardErr.WithDetails(shardErr.ErrHeaderMismatch, details)
	err = shardErr.WithSuggestion(err, suggestion)

	var se *shardErr.ShardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWrap(t *testing.T) {
	t.Parallel()
	wrapped := shardErr.Wrap(shardErr.ErrInputNotFound, "datafile %s", "main.bin")
	assert.Contains(t, wrapped.Error(), "datafile main.bin")
	assert.ErrorIs(t, wrapped, shardErr.ErrInputNotFound)
}

func TestNew(t *testing.T) {
	t.Parallel()
	err := shardErr.New("CUSTOM_ERROR", "custom error message")
	assert.Equal(t, "custom error message", err.Error())

	var se *shardErr.ShardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "CUSTOM_ERROR", se.Code)
}

func TestShardError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{Code: "TEST", Message: "something failed"}
		assert.Equal(t, "something failed", err.Error())
	})

	t.Run("with details sorted", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{
			Code:    "TEST",
			Message: "failed",
			Details: map[string]string{"beta": "2", "alpha": "1"},
		}
		assert.Equal(t, "failed (alpha: 1) (beta: 2)", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{
			Code:    "TEST",
			Message: "outer",
			Cause:   errInner,
		}
		assert.Equal(t, "outer: inner", err.Error())
	})

	t.Run("with details and cause", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{
			Code:    "TEST",
			Message: "outer",
			Details: map[string]string{"key": "val"},
			Cause:   errInner,
		}
		assert.Equal(t, "outer (key: val): inner", err.Error())
	})
}

func TestShardError_Error_deterministic(t *testing.T) {
	t.Parallel()
	err := &shardErr.ShardError{
		Code:    "TEST",
		Message: "msg",
		Details: map[string]string{
			"charlie": "3",
			"alpha":   "1",
			"bravo":   "2",
			"delta":   "4",
		},
	}
	first := err.Error()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, err.Error(), "Error() output must be deterministic (iteration %d)", i)
	}
}

func TestShardError_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{Code: "TEST", Message: "wrapper", Cause: errRootCause}
		assert.Equal(t, errRootCause, err.Unwrap())
	})

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()
		err := &shardErr.ShardError{Code: "TEST", Message: "no cause"}
		assert.NoError(t, err.Unwrap())
	})
}

func TestShardError_Is(t *testing.T) {
	t.Parallel()

	t.Run("matching code", func(t *testing.T) {
		t.Parallel()
		a := &shardErr.ShardError{Code: "SAME_CODE", Message: "a"}
		b := &shardErr.ShardError{Code: "SAME_CODE", Message: "b"}
		assert.True(t, a.Is(b))
	})

	t.Run("different code", func(t *testing.T) {
		t.Parallel()
		a := &shardErr.ShardError{Code: "CODE_A", Message: "a"}
		b := &shardErr.ShardError{Code: "CODE_B", Message: "b"}
		assert.False(t, a.Is(b))
	})

	t.Run("non-ShardError target", func(t *testing.T) {
		t.Parallel()
		a := &shardErr.ShardError{Code: "TEST", Message: "a"}
		assert.False(t, a.Is(errPlain))
	})
}

func TestAs(t *testing.T) {
	t.Parallel()

	t.Run("ShardError target", func(t *testing.T) {
		t.Parallel()
		err := shardErr.Wrap(shardErr.ErrInputNotFound, "wrapped")
		var se *shardErr.ShardError
		assert.True(t, shardErr.As(err, &se))
		assert.Equal(t, "INPUT_NOT_FOUND", se.Code)
	})

	t.Run("non-ShardError", func(t *testing.T) {
		t.Parallel()
		var se *shardErr.ShardError
		assert.False(t, shardErr.As(errPlain, &se))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	t.Run("matching sentinel", func(t *testing.T) {
		t.Parallel()
		wrapped := shardErr.Wrap(shardErr.ErrInputNotFound, "context")
		assert.True(t, shardErr.Is(wrapped, shardErr.ErrInputNotFound))
	})

	t.Run("non-matching", func(t *testing.T) {
		t.Parallel()
		wrapped := shardErr.Wrap(shardErr.ErrInputNotFound, "context")
		assert.False(t, shardErr.Is(wrapped, shardErr.ErrTooFewShares))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, shardErr.Is(nil, shardErr.ErrThresholdInvalid))
	})
}

func TestCode_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("ShardError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "INPUT_NOT_FOUND", shardErr.Code(shardErr.ErrInputNotFound))
	})

	t.Run("non-ShardError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", shardErr.Code(errPlainCode))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", shardErr.Code(nil))
	})
}

func TestWrap_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shardErr.Wrap(nil, "context"))
	})

	t.Run("non-ShardError", func(t *testing.T) {
		t.Parallel()
		wrapped := shardErr.Wrap(errPlain, "context")
		var se *shardErr.ShardError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "context", se.Message)
		assert.Equal(t, errPlain, se.Cause)
	})

	t.Run("format args", func(t *testing.T) {
		t.Parallel()
		wrapped := shardErr.Wrap(shardErr.ErrInputNotFound, "share %s index %d", "main", 0)
		assert.Contains(t, wrapped.Error(), "share main index 0")
	})

	t.Run("field preservation", func(t *testing.T) {
		t.Parallel()
		original := shardErr.WithDetails(shardErr.ErrInputNotFound, map[string]string{"key": "val"})
		original = shardErr.WithSuggestion(original, "try this")
		wrapped := shardErr.Wrap(original, "context")

		var se *shardErr.ShardError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "INPUT_NOT_FOUND", se.Code)
		assert.Equal(t, map[string]string{"key": "val"}, se.Details)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, shardErr.ExitNotFound, se.ExitCode)
	})
}

func TestWithDetails_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shardErr.WithDetails(nil, map[string]string{"k": "v"}))
	})

	t.Run("non-ShardError input", func(t *testing.T) {
		t.Parallel()
		result := shardErr.WithDetails(errPlain, map[string]string{"k": "v"})
		var se *shardErr.ShardError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, map[string]string{"k": "v"}, se.Details)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestWithSuggestion_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shardErr.WithSuggestion(nil, "suggestion"))
	})

	t.Run("non-ShardError input", func(t *testing.T) {
		t.Parallel()
		result := shardErr.WithSuggestion(errPlain, "try this")
		var se *shardErr.ShardError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestExitCode_nonShardError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, shardErr.ExitGeneral, shardErr.ExitCode(errPlain))
}
