package metrics

const (
	MetricFollowers = "Followers"
	MetricFollowing = "Following"
	MetricTweets    = "Tweets"
)

type ChartRecord struct {
	Metric string
	Value  int64
}

// Records derives the chart rows from r in the fixed order Followers,
// Following, Tweets. A nil result, a missing data object or a missing
// public_metrics object give an empty list; an individual absent counter
// is skipped.
func Records(r *Result) []ChartRecord {
	if r == nil || r.Data == nil || r.Data.PublicMetrics == nil {
		return nil
	}
	pm := r.Data.PublicMetrics

	out := make([]ChartRecord, 0, 3)
	for _, f := range []struct {
		name  string
		value *int64
	}{
		{MetricFollowers, pm.FollowersCount},
		{MetricFollowing, pm.FollowingCount},
		{MetricTweets, pm.TweetCount},
	} {
		if f.value != nil {
			out = append(out, ChartRecord{Metric: f.name, Value: *f.value})
		}
	}
	return out
}
