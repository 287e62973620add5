package health

import "time"

// StoreInfo is the slice of the risk store the health check reports on.
type StoreInfo interface {
	Len() int
	Source() string
	LoadedAt() time.Time
}

// Status is the health payload.
type Status struct {
	OK       bool      `json:"ok"`
	Rows     int       `json:"rows"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Service encapsulates health-related checks.
type Service struct {
	store StoreInfo
}

// NewService constructs a new health service.
func NewService(store StoreInfo) *Service {
	return &Service{store: store}
}

// Status reports whether the risk store holds data.
func (s *Service) Status() Status {
	if s == nil || s.store == nil {
		return Status{OK: false}
	}
	return Status{
		OK:       s.store.Len() > 0,
		Rows:     s.store.Len(),
		Source:   s.store.Source(),
		LoadedAt: s.store.LoadedAt(),
	}
}
