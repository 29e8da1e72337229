package router

import (
	"context"

	"growling-tummy/internal/metrics"
)

// Route answers req. It never fails: missing parameters, empty results and
// internal errors all become user-facing text, and unknown intents get the
// fallback reply.
func (r *QueryRouter) Route(ctx context.Context, req Request) (reply Reply) {
	outcome := metrics.OutcomeStatic
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: recovered from panic on %s: %v", LogPrefixRoute, req.Intent, rec)
			reply = Reply{Intent: req.Intent, Lines: []string{MsgTrouble}}
			outcome = metrics.OutcomeError
		}
		metrics.IntentsRouted.WithLabelValues(string(reply.Intent), outcome).Inc()
	}()

	r.l.Debugf(ctx, "%s: intent=%s params=%+v", LogPrefixRoute, req.Intent, req.Params)

	switch req.Intent {
	case IntentWelcome:
		reply = r.welcome()
	case IntentHelp:
		reply = r.help()
	case IntentGoodbye:
		reply = r.goodbye()
	case IntentFindByTime:
		reply, outcome = r.findByTime(ctx, req.Params)
	case IntentFindByRatingLocation:
		reply, outcome = r.findByRatingLocation(ctx, req.Params)
	case IntentFindByDiningOptions:
		reply, outcome = r.findByDiningOptions(ctx, req.Params)
	default:
		reply = r.fallback()
	}

	r.l.Infof(ctx, "%s: %s answered with %d line(s) (%s)", LogPrefixRoute, reply.Intent, len(reply.Lines), outcome)
	return reply
}

func (r *QueryRouter) welcome() Reply {
	return Reply{Intent: IntentWelcome, Lines: []string{MsgWelcome}}
}

func (r *QueryRouter) fallback() Reply {
	return Reply{Intent: IntentFallback, Lines: []string{MsgNotUnderstood, MsgTryAgain}}
}

func (r *QueryRouter) help() Reply {
	return Reply{Intent: IntentHelp, Lines: []string{MsgHelp}}
}

func (r *QueryRouter) goodbye() Reply {
	return Reply{Intent: IntentGoodbye, Lines: []string{MsgGoodbye}, EndSession: true}
}

func (r *QueryRouter) findByTime(ctx context.Context, p Params) (Reply, string) {
	out, err := r.uc.FindByTime(ctx, p.toFindByTimeInput())
	if err != nil {
		return r.mapFindByTimeError(ctx, p, out, err)
	}
	return Reply{Intent: IntentFindByTime, Lines: []string{presentOpenCarts(p.Cuisine, out)}}, metrics.OutcomeMatched
}

func (r *QueryRouter) findByRatingLocation(ctx context.Context, p Params) (Reply, string) {
	out, err := r.uc.FindByRatingLocation(ctx, p.toFindByRatingLocationInput())
	if err != nil {
		return r.mapFindByRatingLocationError(ctx, p, err)
	}
	return Reply{Intent: IntentFindByRatingLocation, Lines: []string{presentRatedCarts(out.Carts)}}, metrics.OutcomeMatched
}

func (r *QueryRouter) findByDiningOptions(ctx context.Context, p Params) (Reply, string) {
	out, err := r.uc.FindByDiningOptions(ctx, p.toFindByDiningOptionsInput())
	if err != nil {
		return r.mapFindByDiningOptionsError(ctx, p, err)
	}
	return Reply{Intent: IntentFindByDiningOptions, Lines: []string{presentCartDetails(out.Carts)}}, metrics.OutcomeMatched
}
