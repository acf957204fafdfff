package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_NextRun(t *testing.T) {
	s := NewScheduler(nil, 3)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before today's run fires today",
			now:  time.Date(2025, time.March, 10, 0, 30, 0, 0, time.Local),
			want: time.Date(2025, time.March, 10, 1, 0, 0, 0, time.Local),
		},
		{
			name: "after today's run fires tomorrow",
			now:  time.Date(2025, time.March, 10, 14, 0, 0, 0, time.Local),
			want: time.Date(2025, time.March, 11, 1, 0, 0, 0, time.Local),
		},
		{
			name: "exactly at run time fires tomorrow",
			now:  time.Date(2025, time.March, 10, 1, 0, 0, 0, time.Local),
			want: time.Date(2025, time.March, 11, 1, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.nextRun(tt.now))
		})
	}
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The generator must not fire during the test; the first run is a day away.
	gen := NewMockAlertGenerator(ctrl)

	s := NewScheduler(gen, 3)
	defer s.Stop()

	assert.True(t, s.Start(context.Background()))
	assert.False(t, s.Start(context.Background()))
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s := NewScheduler(nil, 3)
	s.Stop() // must not panic or block
}

func TestScheduler_StartAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := NewMockAlertGenerator(ctrl)

	s := NewScheduler(gen, 3)
	assert.True(t, s.Start(context.Background()))
	s.Stop()
	assert.True(t, s.Start(context.Background()))
	s.Stop()
}
