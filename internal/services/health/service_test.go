package health

import (
	"testing"
	"time"
)

type fakeStore struct {
	rows     int
	source   string
	loadedAt time.Time
}

func (f fakeStore) Len() int            { return f.rows }
func (f fakeStore) Source() string      { return f.source }
func (f fakeStore) LoadedAt() time.Time { return f.loadedAt }

func TestStatusReportsStore(t *testing.T) {
	loaded := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc := NewService(fakeStore{rows: 42, source: "file:data/risk.csv", loadedAt: loaded})

	got := svc.Status()
	if !got.OK || got.Rows != 42 {
		t.Fatalf("unexpected status: %+v", got)
	}
	if got.Source != "file:data/risk.csv" || !got.LoadedAt.Equal(loaded) {
		t.Fatalf("unexpected store details: %+v", got)
	}
}

func TestStatusWithoutStore(t *testing.T) {
	if NewService(nil).Status().OK {
		t.Fatalf("expected not ok without a store")
	}
}
