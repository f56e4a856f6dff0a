package session

// Decision is the rendering outcome for a guarded view.
type Decision int

const (
	// DecisionLoading: the initial restore has not finished; render a neutral
	// loading indicator.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin: no authenticated session; send the visitor to
	// the login entry point.
	DecisionRedirectLogin
	// DecisionAllow: render the guarded content.
	DecisionAllow
)

// Guard maps the manager's state to a rendering decision. It is a pure
// function of that state, holds nothing of its own, and is re-evaluated on
// every call.
func Guard(m *Manager) Decision {
	switch m.State() {
	case StateRestoring:
		return DecisionLoading
	case StateAuthenticated:
		return DecisionAllow
	default:
		return DecisionRedirectLogin
	}
}
