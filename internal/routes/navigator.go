package routes

import (
	"context"

	"github.com/golang/glog"
	"github.com/stellarburgers/storefront/internal/session"
)

// Navigator ties route resolution and guarding to live session state. It
// triggers the startup re-validation the first time it is consulted; the
// guard itself stays pure.
type Navigator struct {
	resolver *Resolver
	svc      session.Service
}

func NewNavigator(resolver *Resolver, svc session.Service) *Navigator {
	return &Navigator{
		resolver: resolver,
		svc:      svc,
	}
}

// Visit resolves a path and produces the guard's decision for it. from is
// the origin carried in navigation state, empty when there is none.
func (n *Navigator) Visit(
	ctx context.Context,
	path string,
	from string,
) (Match, Decision, error) {
	if !n.svc.Snapshot().Checked {
		// A failed re-validation still concludes the check; it is not a
		// navigation failure.
		if err := n.svc.Revalidate(ctx); err != nil {
			glog.V(1).Infof("session re-validation failed: %s", err)
		}
	}
	match, err := n.resolver.Resolve(path)
	if err != nil {
		return match, Decision{}, err
	}
	decision := Decide(
		match.Route,
		n.svc.Snapshot(),
		n.svc.Revalidating(),
		Location{Path: path, From: from},
	)
	return match, decision, nil
}
