package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// MultiHealthChecker reports healthy only when every child does.
type MultiHealthChecker struct {
	checkers []HealthChecker
}

func NewMultiHealthChecker(checkers ...HealthChecker) *MultiHealthChecker {
	return &MultiHealthChecker{checkers: checkers}
}

func (hc *MultiHealthChecker) Healthy(ctx context.Context) bool {
	for _, c := range hc.checkers {
		if !c.Healthy(ctx) {
			return false
		}
	}
	return true
}
