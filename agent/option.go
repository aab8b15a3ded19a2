package agent

import (
	"github.com/tripweave/tripweave/budget"
	"github.com/tripweave/tripweave/callback"
	"github.com/tripweave/tripweave/llm"
	"github.com/tripweave/tripweave/provider/flights"
	"github.com/tripweave/tripweave/provider/weather"
)

type Option func(opt *Options)

const (
	_defaultFlightLimit       = 5
	_defaultFlightOfferBudget = 10
)

type Options struct {
	LLM      llm.LLM
	Callback callback.Handler

	Reconciler    *budget.Reconciler
	WeatherClient *weather.Client
	FlightClient  *flights.Client

	// FlightLimit caps how many normalized offers a flight search returns;
	// FlightOfferBudget caps how many raw offers are considered before
	// normalization.
	FlightLimit       int
	FlightOfferBudget int
}

func defaultOptions() *Options {
	return &Options{
		FlightLimit:       _defaultFlightLimit,
		FlightOfferBudget: _defaultFlightOfferBudget,
	}
}

func WithLLM(LLM llm.LLM) Option {
	return func(opt *Options) {
		opt.LLM = LLM
	}
}

func WithCallback(handler callback.Handler) Option {
	return func(opt *Options) {
		opt.Callback = handler
	}
}

func WithReconciler(reconciler *budget.Reconciler) Option {
	return func(opt *Options) {
		opt.Reconciler = reconciler
	}
}

func WithWeatherClient(client *weather.Client) Option {
	return func(opt *Options) {
		opt.WeatherClient = client
	}
}

func WithFlightClient(client *flights.Client) Option {
	return func(opt *Options) {
		opt.FlightClient = client
	}
}

func WithFlightLimit(limit int) Option {
	return func(opt *Options) {
		opt.FlightLimit = limit
	}
}
