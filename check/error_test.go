package check

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsErrorThroughWrapping(t *testing.T) {
	require := require.New(t)

	r := Sync2(divideNumbers, 1, 0)
	wrapped := fmt.Errorf("computing ratio: %w", r.Err)

	e, ok := AsError(wrapped)
	require.True(ok)
	require.Same(r.Err, e)

	_, ok = AsError(errTest)
	require.False(ok)
}

func TestFuncName(t *testing.T) {
	require := require.New(t)

	require.Contains(funcName(parseJSON), "check.parseJSON")
	require.Empty(funcName(nil))
	require.Empty(funcName(42))

	var f func()
	require.Empty(funcName(f))
}
