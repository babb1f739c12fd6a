package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
)

func TestJobStampsTraceMessages(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true

	job := New(cfg)
	require.NotEmpty(t, job.ID)

	msgs := job.Messages()
	require.NotEmpty(t, msgs, "debug mode must record one trace line per stage")
	for i, msg := range msgs {
		assert.Equal(t, job.ID, msg.Data.JobID)
		assert.Equal(t, i, msg.Data.Seq, "sequence numbers must be contiguous from zero")
	}
}

func TestDistinctJobsGetDistinctIDs(t *testing.T) {
	a := New(config.Default())
	b := New(config.Default())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRunIsRepeatable(t *testing.T) {
	job := New(config.Default())
	m := jsast.Module{Stmts: []jsast.Stmt{
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.ENumber{Value: 1}}}},
	}}
	once := job.Run(m)
	twice := job.Run(once)
	assert.Equal(t, once, twice)
}
