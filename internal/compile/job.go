// Package compile ties one compile job together: an immutable Config, a
// generated job identifier, a Log whose messages all carry that identifier,
// and the pipeline composed once at job construction (§5 lifecycle). The
// core itself is single-threaded; the identifier exists so a host running
// many jobs can correlate interleaved diagnostics afterward.
package compile

import (
	"github.com/google/uuid"

	"github.com/tscore/tscore/internal/compose"
	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
)

type Job struct {
	ID     string
	Config config.Config
	Log    logger.Log

	pipeline compose.Rewriter
}

// New composes the pipeline for cfg and returns the job ready to run.
// Generating the uuid here is the only piece of the core that touches
// anything resembling global state, and it happens once per job, outside
// the pure Compose/TypeOf calls.
func New(cfg config.Config) *Job {
	id := uuid.NewString()
	log := logger.NewLog().ForJob(id)
	return &Job{
		ID:       id,
		Config:   cfg,
		Log:      log,
		pipeline: compose.Compose(cfg, log),
	}
}

// Run applies the composed pipeline to m. It may be called more than once;
// the pipeline is stateless between runs.
func (j *Job) Run(m jsast.Module) jsast.Module {
	return j.pipeline.Apply(m)
}

// Messages returns every diagnostic and trace line recorded so far, in
// insertion order, each stamped with the job's ID.
func (j *Job) Messages() []logger.Msg {
	return j.Log.Done()
}
