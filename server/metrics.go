package server

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	"code.cloudfoundry.org/cryo"
)

var (
	attempts = stats.Int64(
		"cryo/checkpoint_attempts",
		"Number of checkpoint attempts",
		stats.UnitDimensionless,
	)

	attemptDuration = stats.Float64(
		"cryo/checkpoint_duration",
		"Duration of checkpoint attempts",
		stats.UnitMilliseconds,
	)

	resultKey = tag.MustNewKey("result")
)

// Views aggregate checkpoint attempts by result tag. They are registered
// when the server starts; an exporter is the operator's choice.
var Views = []*view.View{
	{
		Name:        "cryo/checkpoint_attempts",
		Description: "Number of checkpoint attempts",
		Measure:     attempts,
		TagKeys:     []tag.Key{resultKey},
		Aggregation: view.Count(),
	},
	{
		Name:        "cryo/checkpoint_duration",
		Description: "Duration of checkpoint attempts",
		Measure:     attemptDuration,
		TagKeys:     []tag.Key{resultKey},
		Aggregation: view.Distribution(10, 100, 1000, 10000, 60000),
	},
}

func registerViews() error {
	return view.Register(Views...)
}

func recordAttempt(resultType cryo.ResultType, duration time.Duration) {
	ctx, err := tag.New(context.Background(), tag.Upsert(resultKey, resultType.String()))
	if err != nil {
		return
	}

	stats.Record(ctx,
		attempts.M(1),
		attemptDuration.M(float64(duration)/float64(time.Millisecond)),
	)
}
