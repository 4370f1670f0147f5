package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
	Store    string `json:"store"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB        Pinger
	StoreType string
	Timeout   time.Duration
}

// NewService constructs a new health service. db may be nil when the
// in-memory repository is in use.
func NewService(db Pinger, storeType string) *Service {
	return &Service{DB: db, StoreType: storeType, Timeout: 2 * time.Second}
}

// Status reports whether the process can serve analyses.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Database: "memory", Store: s.StoreType}
	if st.Store == "" {
		st.Store = "none"
	}
	if s.DB == nil {
		return st
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		st.OK = false
		st.Database = "unavailable"
		return st
	}
	st.Database = "postgres"
	return st
}
