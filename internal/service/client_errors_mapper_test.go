package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("http %d", int(e)) }
func (e statusErr) StatusCode() int { return int(e) }

func TestMapExecuteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", statusErr(400), ErrRejectedRequest},
		{"not found wrapped", fmt.Errorf("put: %w", statusErr(404)), ErrRejectedRequest},
		{"unprocessable", statusErr(422), ErrRejectedRequest},
		{"internal", statusErr(500), ErrTransportFailure},
		{"unavailable", statusErr(503), ErrTransportFailure},
		{"network", errors.New("connection refused"), ErrTransportFailure},
		{"timeout", context.DeadlineExceeded, ErrTransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapExecuteError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapExecuteError(nil))
}
