package batch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, job *Job) error

type Middleware func(Handler) Handler

func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

func Logging(logger *logrus.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, job *Job) error {
			entry := logger.WithFields(logrus.Fields{
				"job":    job.ID.String(),
				"source": job.Source.Name,
			})
			entry.Debug("processing source")
			start := time.Now()

			err := next(ctx, job)

			entry = entry.WithFields(logrus.Fields{
				"boards":        len(job.Results),
				"invalid":       job.Invalid(),
				"duration (ms)": int64(time.Since(start) / time.Millisecond),
			})
			if err != nil {
				entry.WithError(err).Error("unable to process source")
				return err
			}
			entry.Info("processed source")
			return nil
		}
	}
}

// Recover turns a panic inside a job into a job error so one bad source
// does not take the whole run down.
func Recover(logger *logrus.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, job *Job) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.WithField("job", job.ID.String()).Errorf("panic: %v", r)
					err = &PanicError{Value: r}
				}
			}()
			return next(ctx, job)
		}
	}
}
