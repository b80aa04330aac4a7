package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Callbacks(t *testing.T) {
	tests := []struct {
		name           string
		res            Result[int]
		wantSuccessHit bool
		wantErrorHit   bool
	}{
		{name: "success", res: Success(42), wantSuccessHit: true},
		{name: "error", res: Error[int]("boom", nil), wantErrorHit: true},
		{name: "loading", res: Loading[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var successHit, errorHit bool

			out := tt.res.
				OnSuccess(func(int) { successHit = true }).
				OnError(func(string) { errorHit = true })

			assert.Equal(t, tt.wantSuccessHit, successHit)
			assert.Equal(t, tt.wantErrorHit, errorHit)
			assert.False(t, successHit && errorHit)
			assert.Equal(t, tt.res, out)
		})
	}
}

func TestResult_Predicates(t *testing.T) {
	s := Success("ok")
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsError())
	assert.False(t, s.IsLoading())
	assert.Equal(t, KindSuccess, s.Kind())

	e := Error[string]("fail", nil)
	assert.True(t, e.IsError())
	assert.False(t, e.IsSuccess())
	assert.Equal(t, "fail", e.Message())

	var zero Result[string]
	assert.True(t, zero.IsLoading())
}

func TestResult_Data(t *testing.T) {
	v, ok := Success([]int{1, 2}).Data()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	v, ok = Error[[]int]("fail", nil).Data()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestResult_Match(t *testing.T) {
	var got []string
	record := func(r Result[int]) {
		r.Match(
			func(int) { got = append(got, "success") },
			func(string, error) { got = append(got, "error") },
			func() { got = append(got, "loading") },
		)
	}

	record(Success(1))
	record(Error[int]("x", nil))
	record(Loading[int]())

	assert.Equal(t, []string{"success", "error", "loading"}, got)
}

func TestResult_Err(t *testing.T) {
	cause := errors.New("connection refused")
	r := Error[int]("Error en el servidor", cause)

	err := r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error en el servidor: connection refused", err.Error())

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "Error en el servidor", f.Message)

	assert.NoError(t, Success(1).Err())
	assert.NoError(t, Loading[int]().Err())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Success(7)", Success(7).String())
	assert.Equal(t, "Error(nope)", Error[int]("nope", nil).String())
	assert.Equal(t, "Loading", Loading[int]().String())
}
