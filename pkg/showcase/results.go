package showcase

import "github.com/zyxo/showcase/pkg/showcase/config"

// PagerAction is why the pager returned.
type PagerAction int

const (
	PagerActionQuit     PagerAction = iota // Window closed or Escape pressed
	PagerActionReloaded                    // Content or window settings changed and the pager must be rebuilt
)

func (a PagerAction) String() string {
	switch a {
	case PagerActionQuit:
		return "quit"
	case PagerActionReloaded:
		return "reloaded"
	default:
		return "unknown"
	}
}

// PagerResult is returned by Pager. ActiveIndex lets a rebuilt pager resume where it left off.
type PagerResult struct {
	Action      PagerAction
	ActiveIndex int
	Config      config.Config // The settings that caused a reload; zero for PagerActionQuit
}

// FallbackAction is the visitor's choice on the fallback screen.
type FallbackAction int

const (
	FallbackActionRetry FallbackAction = iota // Return to the pager
	FallbackActionQuit
)

func (a FallbackAction) String() string {
	switch a {
	case FallbackActionRetry:
		return "retry"
	case FallbackActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// FallbackResult is returned by Fallback.
type FallbackResult struct {
	Action FallbackAction
}
