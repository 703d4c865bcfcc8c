package browser

import (
	"context"
	"fmt"
	"sync"
)

// VPNPhase is the purchase/installation phase of the VPN subscription.
type VPNPhase string

const (
	VPNNotPurchased VPNPhase = "not-purchased"
	VPNPurchased    VPNPhase = "purchased"
	VPNExpired      VPNPhase = "expired"
	VPNInstalled    VPNPhase = "installed"
)

// VPNState is a point-in-time read of the VPN subsystem.
// Connected is only meaningful when Phase is VPNInstalled.
type VPNState struct {
	Phase     VPNPhase `json:"phase"`
	Connected bool     `json:"connected"`
}

// ParseVPNPhase converts a raw config value into a VPNPhase.
func ParseVPNPhase(s string) (VPNPhase, error) {
	switch VPNPhase(s) {
	case VPNNotPurchased, VPNPurchased, VPNExpired, VPNInstalled:
		return VPNPhase(s), nil
	}
	return "", fmt.Errorf("unknown vpn phase: %q", s)
}

// StubVPN is an in-memory VPN state holder. The daemon has no real tunnel
// to drive, so Reconnect simply flips the connected flag when the
// subscription is installed.
type StubVPN struct {
	mu    sync.RWMutex
	state VPNState
}

// NewStubVPN creates a stub in the given state.
func NewStubVPN(state VPNState) *StubVPN {
	return &StubVPN{state: state}
}

// State returns the current VPN state.
func (v *StubVPN) State() VPNState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.state
}

// Reconnect re-establishes the connection for an installed subscription.
func (v *StubVPN) Reconnect(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.Phase != VPNInstalled {
		return fmt.Errorf("cannot reconnect: vpn not installed (phase=%s)", v.state.Phase)
	}
	v.state.Connected = true
	return nil
}

// SetState replaces the state (test and admin use).
func (v *StubVPN) SetState(state VPNState) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = state
}
