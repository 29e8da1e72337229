package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"growling-tummy/internal/foodcart"
	"growling-tummy/internal/metrics"
)

func (r *QueryRouter) mapFindByTimeError(ctx context.Context, p Params, out foodcart.FindByTimeOutput, err error) (Reply, string) {
	var text, outcome string
	switch {
	case errors.Is(err, foodcart.ErrMissingCuisineOrTime):
		text, outcome = MsgProvideCuisineAndTime, metrics.OutcomePrompted
	case errors.Is(err, foodcart.ErrCuisineNotFound):
		text, outcome = fmt.Sprintf(FmtCuisineNotFound, p.Cuisine), metrics.OutcomeNotFound
	case errors.Is(err, foodcart.ErrInvalidTime):
		text, outcome = MsgInvalidTime, metrics.OutcomePrompted
	case errors.Is(err, foodcart.ErrNoOpenCarts):
		text, outcome = fmt.Sprintf(FmtNoOpenCarts, p.Cuisine, out.QueryTime), metrics.OutcomeNotFound
	default:
		r.l.Errorf(ctx, "%s: uc.FindByTime: %v", LogPrefixRoute, err)
		text, outcome = MsgTrouble, metrics.OutcomeError
	}
	return Reply{Intent: IntentFindByTime, Lines: []string{text}}, outcome
}

func (r *QueryRouter) mapFindByRatingLocationError(ctx context.Context, p Params, err error) (Reply, string) {
	switch {
	case errors.Is(err, foodcart.ErrMissingRatingOrLocation):
		return Reply{Intent: IntentFindByRatingLocation, Lines: []string{MsgProvideRatingOrLocation}}, metrics.OutcomePrompted
	case errors.Is(err, foodcart.ErrNoMatch):
		var b strings.Builder
		b.WriteString(MsgNotFoundPrefix)
		if in := p.toFindByRatingLocationInput(); in.HasRating() {
			fmt.Fprintf(&b, FmtRatedAbove, formatRating(*in.Rating))
		}
		if p.Location != "" {
			fmt.Fprintf(&b, FmtNear, p.Location)
		}
		b.WriteString(".")
		return Reply{Intent: IntentFindByRatingLocation, Lines: []string{b.String()}}, metrics.OutcomeNotFound
	default:
		r.l.Errorf(ctx, "%s: uc.FindByRatingLocation: %v", LogPrefixRoute, err)
		return Reply{Intent: IntentFindByRatingLocation, Lines: []string{MsgTrouble}}, metrics.OutcomeError
	}
}

func (r *QueryRouter) mapFindByDiningOptionsError(ctx context.Context, p Params, err error) (Reply, string) {
	if !errors.Is(err, foodcart.ErrNoMatch) {
		r.l.Errorf(ctx, "%s: uc.FindByDiningOptions: %v", LogPrefixRoute, err)
		return Reply{Intent: IntentFindByDiningOptions, Lines: []string{MsgTrouble}}, metrics.OutcomeError
	}

	var b strings.Builder
	b.WriteString(MsgNotFoundPrefix)
	if p.Cuisine != "" {
		fmt.Fprintf(&b, FmtServing, p.Cuisine)
	}
	if p.DiningOption != "" {
		fmt.Fprintf(&b, FmtWithOption, p.DiningOption)
	}
	if p.DietaryPreference != "" {
		fmt.Fprintf(&b, FmtOffering, p.DietaryPreference)
	}
	b.WriteString(".")
	return Reply{Intent: IntentFindByDiningOptions, Lines: []string{b.String()}}, metrics.OutcomeNotFound
}
