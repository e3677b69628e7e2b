package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLLMRequest(t *testing.T) {
	before := testutil.ToFloat64(LLMRequests.WithLabelValues("ok"))

	ObserveLLMRequest("ok", time.Now().Add(-time.Second))

	assert.Equal(t, before+1, testutil.ToFloat64(LLMRequests.WithLabelValues("ok")))
}

func TestFeedbackCounterByVerdict(t *testing.T) {
	before := testutil.ToFloat64(FeedbackRecorded.WithLabelValues("REJECT"))

	FeedbackRecorded.WithLabelValues("REJECT").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(FeedbackRecorded.WithLabelValues("REJECT")))
}
