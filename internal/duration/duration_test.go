package duration

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "5m", want: 5 * time.Minute},
		{in: "30", want: 30 * time.Second},
		{in: "30s", want: 30 * time.Second},
		{in: "2h", want: 2 * time.Hour},
		{in: "0", want: 0},
		{in: " 10m\n", want: 10 * time.Minute},
		{in: "5x", wantErr: true},
		{in: "", wantErr: true},
		{in: "m", wantErr: true},
		{in: "-5s", wantErr: true},
		{in: "1.5m", wantErr: true},
		{in: "5ms", wantErr: true},
		{in: "5 m", wantErr: true},
		{in: "99999999999999999999h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_FiveMinutesIsThreeHundredSeconds(t *testing.T) {
	got, err := Parse("5m")
	require.NoError(t, err)
	assert.Equal(t, float64(300), got.Seconds())
}

func TestValue_Flag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := NewValue("5m")
	fs.Var(v, "requeue-time", "requeue interval")

	assert.Equal(t, 5*time.Minute, v.Duration())
	assert.Equal(t, "5m", v.String())

	require.NoError(t, fs.Parse([]string{"--requeue-time=90"}))
	assert.Equal(t, 90*time.Second, v.Duration())

	err := fs.Parse([]string{"--requeue-time=5x"})
	assert.Error(t, err)
	assert.Equal(t, 90*time.Second, v.Duration(), "a rejected value must not replace the previous one")
}

func TestNewValue_PanicsOnInvalidDefault(t *testing.T) {
	assert.Panics(t, func() { NewValue("soon") })
}
